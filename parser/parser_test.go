package parser_test

import (
	"strings"
	"testing"

	"asm68k/ast"
	"asm68k/lexer"
	"asm68k/parser"
	"asm68k/report"
)

func parseSource(t *testing.T, src string) (*ast.Program, *report.Collector) {
	t.Helper()
	var rep report.Collector
	toks := lexer.Scan(src, &rep)
	prog := parser.New(&rep).Parse(toks)
	return prog, &rep
}

func parseClean(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, rep := parseSource(t, src)
	if rep.HasErrors() {
		t.Fatalf("unexpected errors for %q: %v", src, rep.Errors()[0])
	}
	return prog
}

func singleOperation(t *testing.T, src string) *ast.Operation {
	t.Helper()
	prog := parseClean(t, src)
	if len(prog.Statements) != 1 {
		t.Fatalf("%q: expected 1 statement, got %d", src, len(prog.Statements))
	}
	op, ok := prog.Statements[0].(*ast.Operation)
	if !ok {
		t.Fatalf("%q: expected an operation, got %T", src, prog.Statements[0])
	}
	return op
}

// Every addressing-mode shape, round-tripped: parse, render the canonical
// form, re-parse, and expect the same rendering and operand types.
func TestOperandShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
		ops  []ast.OperandType
	}{
		{"\tNOT.W D3", "NOT.W D3", []ast.OperandType{ast.TypeDataRegister}},
		{"\tMOVEA.W A2,A3", "MOVEA.W A2,A3",
			[]ast.OperandType{ast.TypeAddressRegister, ast.TypeAddressRegister}},
		{"\tTST.W (A2)", "TST.W (A2)", []ast.OperandType{ast.TypeAddressIndirect}},
		{"\tCLR.B (A0)+", "CLR.B (A0)+", []ast.OperandType{ast.TypePostIncrement}},
		{"\tNEG.W -(A1)", "NEG.W -(A1)", []ast.OperandType{ast.TypePreDecrement}},
		{"\tMOVE.W -8(A1),D0", "MOVE.W -8(A1),D0",
			[]ast.OperandType{ast.TypeDisplacement, ast.TypeDataRegister}},
		{"\tMOVE.W (-8,A1),D0", "MOVE.W -8(A1),D0",
			[]ast.OperandType{ast.TypeDisplacement, ast.TypeDataRegister}},
		{"\tNOT.W -5(A3,D2.W)", "NOT.W -5(A3,D2.W)", []ast.OperandType{ast.TypeIndex}},
		{"\tJMP (5).W", "JMP (5).W", []ast.OperandType{ast.TypeAbsoluteWord}},
		{"\tMOVE.L (70000).L,D0", "MOVE.L (70000).L,D0",
			[]ast.OperandType{ast.TypeAbsoluteLong, ast.TypeDataRegister}},
		{"\tMOVE.W 2(PC),D5", "MOVE.W 2(PC),D5",
			[]ast.OperandType{ast.TypePCDisplacement, ast.TypeDataRegister}},
		{"\tMOVE.W (2,PC),D5", "MOVE.W 2(PC),D5",
			[]ast.OperandType{ast.TypePCDisplacement, ast.TypeDataRegister}},
		{"\tMOVE.W 4(PC,D2.L),D5", "MOVE.W 4(PC,D2.L),D5",
			[]ast.OperandType{ast.TypePCIndex, ast.TypeDataRegister}},
		{"\tMOVE.W #10,D0", "MOVE.W #10,D0",
			[]ast.OperandType{ast.TypeImmediate, ast.TypeDataRegister}},
		{"\tMOVE.W D0,CCR", "MOVE.W D0,CCR",
			[]ast.OperandType{ast.TypeDataRegister, ast.TypeConditionCode}},
		{"\tMOVE.W SR,D2", "MOVE.W SR,D2",
			[]ast.OperandType{ast.TypeStatus, ast.TypeDataRegister}},
		{"\tMOVE USP,A1", "MOVE USP,A1",
			[]ast.OperandType{ast.TypeUserStack, ast.TypeAddressRegister}},
	}
	for _, tc := range tests {
		op := singleOperation(t, tc.src)
		if got := op.String(); got != tc.want {
			t.Errorf("%q: rendered %q, expected %q", tc.src, got, tc.want)
			continue
		}
		if len(op.Operands) != len(tc.ops) {
			t.Errorf("%q: expected %d operands, got %d", tc.src, len(tc.ops), len(op.Operands))
			continue
		}
		for i, want := range tc.ops {
			if got := op.Operands[i].Type(); got != want {
				t.Errorf("%q operand %d: expected %s, got %s", tc.src, i, want, got)
			}
		}

		// Round trip through the canonical form.
		again := singleOperation(t, "\t"+op.String())
		if again.String() != op.String() {
			t.Errorf("%q: round trip changed %q to %q", tc.src, op.String(), again.String())
		}
	}
}

func TestIndexOperandFields(t *testing.T) {
	op := singleOperation(t, "\tNOT.W -5(A3,D2.W)")
	idx, ok := op.Operands[0].(*ast.AddressIndex)
	if !ok {
		t.Fatalf("expected AddressIndex, got %T", op.Operands[0])
	}
	if idx.Register != (ast.Register{Kind: ast.AddressRegister, Index: 3}) {
		t.Errorf("base register %s, expected A3", idx.Register)
	}
	if idx.Displacement != -5 {
		t.Errorf("displacement %d, expected -5", idx.Displacement)
	}
	if idx.Index != (ast.Register{Kind: ast.DataRegister, Index: 2}) {
		t.Errorf("index register %s, expected D2", idx.Index)
	}
	if idx.IndexSize != ast.SizeWord {
		t.Errorf("index size %s, expected W", idx.IndexSize)
	}
}

func TestNotWordDataRegister(t *testing.T) {
	op := singleOperation(t, "\tNOT.W D3")
	if op.Size != ast.SizeWord {
		t.Errorf("size %v, expected word", op.Size)
	}
	reg, ok := op.Operands[0].(*ast.DataRegisterDirect)
	if !ok {
		t.Fatalf("expected DataRegisterDirect, got %T", op.Operands[0])
	}
	if reg.Register.Index != 3 {
		t.Errorf("register index %d, expected 3", reg.Register.Index)
	}
}

func TestExplicitSizeOnly(t *testing.T) {
	if op := singleOperation(t, "\tNOP"); op.Size != ast.SizeUnsized {
		t.Errorf("NOP recorded size %v, expected unsized", op.Size)
	}
	if op := singleOperation(t, "\tNOT D3"); op.Size != ast.SizeUnsized {
		t.Errorf("NOT without suffix recorded size %v, expected unsized", op.Size)
	}
}

// Two consecutive label lines bind to the same following operation.
func TestLabelBinding(t *testing.T) {
	prog := parseClean(t, "start:\nsecond:\n\tNOT.W D3\n")
	if len(prog.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Statements))
	}
	if len(prog.Labels) != 2 {
		t.Fatalf("expected 2 bound labels, got %d", len(prog.Labels))
	}
	for label, index := range prog.Labels {
		if index != 2 {
			t.Errorf("label %s bound to %d, expected 2", label.Name, index)
		}
		target, ok := prog.Target(label)
		if !ok {
			t.Errorf("label %s has no target", label.Name)
			continue
		}
		if _, ok := target.(*ast.Operation); !ok {
			t.Errorf("label %s targets %T, expected the operation", label.Name, target)
		}
	}
}

func TestLocalLabel(t *testing.T) {
	prog := parseClean(t, ".loop:\n\tNOP\n")
	if len(prog.Labels) != 1 {
		t.Fatalf("expected 1 bound label, got %d", len(prog.Labels))
	}
	for label, index := range prog.Labels {
		if label.Name != ".loop" {
			t.Errorf("label name %q, expected .loop", label.Name)
		}
		if !label.Local() {
			t.Error("label must be local")
		}
		if index != 1 {
			t.Errorf("bound to %d, expected 1", index)
		}
	}
}

// A comment-only line between a label and its operation does not consume the
// pending label.
func TestLabelBindsPastComment(t *testing.T) {
	prog := parseClean(t, "start:\n; setup\n\tNOP\n")
	if len(prog.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Statements))
	}
	if _, ok := prog.Statements[1].(*ast.Comment); !ok {
		t.Fatalf("expected a comment at index 1, got %T", prog.Statements[1])
	}
	for label, index := range prog.Labels {
		if index != 2 {
			t.Errorf("label %s bound to %d, expected 2", label.Name, index)
		}
	}
}

func TestUnboundLabel(t *testing.T) {
	prog, rep := parseSource(t, "orphan:\n")
	if rep.Len() != 1 {
		t.Fatalf("expected 1 error, got %d", rep.Len())
	}
	if !strings.Contains(rep.Errors()[0].Message, "not followed by any statements") {
		t.Errorf("unexpected diagnostic: %v", rep.Errors()[0])
	}
	if len(prog.Labels) != 0 {
		t.Errorf("unbound label must not appear in the label map")
	}
}

func TestStandaloneComment(t *testing.T) {
	prog := parseClean(t, "; hello\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	c, ok := prog.Statements[0].(*ast.Comment)
	if !ok {
		t.Fatalf("expected Comment, got %T", prog.Statements[0])
	}
	if c.Text != " hello" {
		t.Errorf("comment text %q", c.Text)
	}
}

func TestTrailingCommentDetached(t *testing.T) {
	prog := parseClean(t, "\tNOP ; trailing\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected only the operation, got %d statements", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.Operation); !ok {
		t.Fatalf("expected Operation, got %T", prog.Statements[0])
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"AbsoluteByte", "\tJMP (5).B", "byte size is not valid for absolute addressing"},
		{"BadSizeSuffix", "\tNOT.Q D0", `invalid size suffix "Q"`},
		{"DataRegisterBase", "\tMOVE.W 5(D3),D0", "data register cannot be displaced"},
		{"MissingIndexRegister", "\tMOVE.W 5(PC,),D0", "expected index register"},
		{"PCNeverDirect", "\tNOT.W PC", "unexpected identifier"},
		{"RegisterOutOfRange", "\tNOT.W A9", "register index out of range"},
		{"UnknownOperation", "\tFOO D0", "unknown operation"},
		{"TooManyOperands", "\tNOT.B (A2)+,D0", "does not accept operands"},
		{"UnsupportedSize", "\tLEA.B 4(A0),A1", "does not support size B"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, rep := parseSource(t, tc.src)
			if !rep.HasErrors() {
				t.Fatalf("expected an error for %q", tc.src)
			}
			found := false
			for _, e := range rep.Errors() {
				if strings.Contains(e.Message, tc.want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no diagnostic containing %q; got %v", tc.want, rep.Errors())
			}
		})
	}
}

// One bad line never stops the parse; later lines still produce statements.
func TestErrorRecovery(t *testing.T) {
	prog, rep := parseSource(t, "\tNOT.W PC\n\tNOP\n\tFOO\n\tRTS\n")
	if rep.Len() != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", rep.Len(), rep.Errors())
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected NOP and RTS to survive, got %d statements", len(prog.Statements))
	}
}

// Diagnostics carry the failing token's position.
func TestDiagnosticLocation(t *testing.T) {
	_, rep := parseSource(t, "\tNOP\n\tNOT.Q D0\n")
	if rep.Len() != 1 {
		t.Fatalf("expected 1 error, got %d", rep.Len())
	}
	if rep.Errors()[0].Pos.Line != 2 {
		t.Errorf("error on line %d, expected 2", rep.Errors()[0].Pos.Line)
	}
}
