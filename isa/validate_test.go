package isa_test

import (
	"strings"
	"testing"

	"asm68k/ast"
	"asm68k/isa"
	"asm68k/token"
)

func dataReg(index uint8) ast.Operand {
	return &ast.DataRegisterDirect{
		Pos:      token.None,
		Register: ast.Register{Kind: ast.DataRegister, Index: index},
	}
}

func TestLookup(t *testing.T) {
	if _, ok := isa.Lookup("NOT"); !ok {
		t.Fatal("NOT must be in the table")
	}
	if _, ok := isa.Lookup("not"); !ok {
		t.Fatal("lookup must be case-insensitive")
	}
	if _, ok := isa.Lookup("XYZZY"); ok {
		t.Fatal("XYZZY must not be in the table")
	}
}

func TestValidateAccepts(t *testing.T) {
	not, _ := isa.Lookup("NOT")
	if err := not.Validate(ast.SizeWord, []ast.Operand{dataReg(3)}); err != nil {
		t.Errorf("NOT.W D3 must validate: %v", err)
	}
	// No explicit size defaults to word.
	if err := not.Validate(ast.SizeUnsized, []ast.Operand{dataReg(3)}); err != nil {
		t.Errorf("NOT D3 must validate: %v", err)
	}
}

func TestValidateSizeMismatch(t *testing.T) {
	lea, _ := isa.Lookup("LEA")
	err := lea.Validate(ast.SizeByte, []ast.Operand{
		&ast.AddressIndirect{Pos: token.None, Register: ast.Register{Kind: ast.AddressRegister}},
		&ast.AddressRegisterDirect{Pos: token.None, Register: ast.Register{Kind: ast.AddressRegister, Index: 1}},
	})
	if err == nil {
		t.Fatal("LEA.B must fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "does not support size B") {
		t.Errorf("diagnostic must name the requested size: %s", msg)
	}
	if !strings.Contains(msg, "L") {
		t.Errorf("diagnostic must list the supported sizes: %s", msg)
	}
}

func TestValidateOperandMismatch(t *testing.T) {
	not, _ := isa.Lookup("NOT")

	// Wrong arity.
	err := not.Validate(ast.SizeByte, []ast.Operand{
		&ast.AddressPostIncrement{Pos: token.None, Register: ast.Register{Kind: ast.AddressRegister, Index: 2}},
		dataReg(0),
	})
	if err == nil {
		t.Fatal("NOT with two operands must fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "post-increment indirect, data register") {
		t.Errorf("diagnostic must list the supplied operand types: %s", msg)
	}
	if !strings.Contains(msg, "legal combinations") {
		t.Errorf("diagnostic must list the legal combinations: %s", msg)
	}

	// Wrong type: address registers are not data-alterable.
	err = not.Validate(ast.SizeWord, []ast.Operand{
		&ast.AddressRegisterDirect{Pos: token.None, Register: ast.Register{Kind: ast.AddressRegister, Index: 4}},
	})
	if err == nil {
		t.Fatal("NOT.W A4 must fail")
	}
	if !strings.Contains(err.Error(), "address register") {
		t.Errorf("diagnostic must name the supplied type: %v", err)
	}
}

func TestValidateNeverMutates(t *testing.T) {
	not, _ := isa.Lookup("NOT")
	operands := []ast.Operand{dataReg(5)}
	_ = not.Validate(ast.SizeLong, operands)
	if operands[0].(*ast.DataRegisterDirect).Register.Index != 5 {
		t.Error("validation must not mutate operands")
	}
}

// An ambiguous table is a bug in the static data and must panic, not report.
func TestAmbiguousTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an ambiguous configuration table")
		}
	}()
	op := &isa.Operation{
		Code: "BOGUS",
		Configs: []isa.Configuration{
			{Sizes: []ast.Size{ast.SizeWord}, Operands: [][]ast.OperandType{{ast.TypeDataRegister}}},
			{Sizes: []ast.Size{ast.SizeWord}, Operands: [][]ast.OperandType{{ast.TypeDataRegister}}},
		},
	}
	_ = op.Validate(ast.SizeWord, []ast.Operand{dataReg(0)})
}
