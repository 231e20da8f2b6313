package isa

import (
	"strings"

	"asm68k/ast"
)

// Configuration is one legal (sizes, operand types) combination for an
// opcode on real hardware. Operands holds the accepted type set per operand
// position; an instruction matches only if every position matches.
type Configuration struct {
	Sizes    []ast.Size
	Operands [][]ast.OperandType
}

// Operation is one opcode and its legal configurations.
type Operation struct {
	Code    string
	Configs []Configuration
}

// Common effective-address categories, per the M68000 programmer's manual.
var (
	dataAlterable = []ast.OperandType{
		ast.TypeDataRegister,
		ast.TypeAddressIndirect,
		ast.TypePostIncrement,
		ast.TypePreDecrement,
		ast.TypeDisplacement,
		ast.TypeIndex,
		ast.TypeAbsoluteWord,
		ast.TypeAbsoluteLong,
	}

	memoryAlterable = dataAlterable[1:]

	control = []ast.OperandType{
		ast.TypeAddressIndirect,
		ast.TypeDisplacement,
		ast.TypeIndex,
		ast.TypeAbsoluteWord,
		ast.TypeAbsoluteLong,
		ast.TypePCDisplacement,
		ast.TypePCIndex,
	}

	dataAddressing = append(append([]ast.OperandType{}, dataAlterable...),
		ast.TypePCDisplacement, ast.TypePCIndex, ast.TypeImmediate)

	allModes = append(append([]ast.OperandType{}, dataAddressing...),
		ast.TypeAddressRegister)
)

var (
	immediate    = []ast.OperandType{ast.TypeImmediate}
	dataReg      = []ast.OperandType{ast.TypeDataRegister}
	addrReg      = []ast.OperandType{ast.TypeAddressRegister}
	ccrReg       = []ast.OperandType{ast.TypeConditionCode}
	statusReg    = []ast.OperandType{ast.TypeStatus}
	userStack    = []ast.OperandType{ast.TypeUserStack}
	byteWordLong = []ast.Size{ast.SizeByte, ast.SizeWord, ast.SizeLong}
	wordLong     = []ast.Size{ast.SizeWord, ast.SizeLong}
	unsized      = []ast.Size{ast.SizeUnsized}
)

// immediateToEA builds the table entry for the ORI/ANDI/EORI/ADDI/SUBI/CMPI
// shape. withStatus adds the #imm,CCR and #imm,SR forms.
func immediateToEA(code string, withStatus bool) *Operation {
	op := &Operation{
		Code: code,
		Configs: []Configuration{
			{Sizes: byteWordLong, Operands: [][]ast.OperandType{immediate, dataAlterable}},
		},
	}
	if withStatus {
		op.Configs = append(op.Configs,
			Configuration{
				Sizes:    []ast.Size{ast.SizeByte, ast.SizeUnsized},
				Operands: [][]ast.OperandType{immediate, ccrReg},
			},
			Configuration{
				Sizes:    []ast.Size{ast.SizeWord, ast.SizeUnsized},
				Operands: [][]ast.OperandType{immediate, statusReg},
			},
		)
	}
	return op
}

// singleOperand builds the NOT/CLR/NEG/NEGX/TST shape.
func singleOperand(code string) *Operation {
	return &Operation{
		Code: code,
		Configs: []Configuration{
			{Sizes: byteWordLong, Operands: [][]ast.OperandType{dataAlterable}},
		},
	}
}

// noOperand builds the NOP/RTS/... shape.
func noOperand(code string) *Operation {
	return &Operation{
		Code:    code,
		Configs: []Configuration{{Sizes: unsized, Operands: nil}},
	}
}

var operations = []*Operation{
	immediateToEA("ORI", true),
	immediateToEA("ANDI", true),
	immediateToEA("EORI", true),
	immediateToEA("ADDI", false),
	immediateToEA("SUBI", false),
	immediateToEA("CMPI", false),

	singleOperand("NEGX"),
	singleOperand("CLR"),
	singleOperand("NEG"),
	singleOperand("NOT"),
	singleOperand("TST"),

	{Code: "MOVE", Configs: []Configuration{
		// Byte moves never take an address-register source.
		{Sizes: []ast.Size{ast.SizeByte},
			Operands: [][]ast.OperandType{dataAddressing, dataAlterable}},
		{Sizes: wordLong,
			Operands: [][]ast.OperandType{allModes, dataAlterable}},
		{Sizes: []ast.Size{ast.SizeWord, ast.SizeUnsized},
			Operands: [][]ast.OperandType{dataAddressing, ccrReg}},
		{Sizes: []ast.Size{ast.SizeWord, ast.SizeUnsized},
			Operands: [][]ast.OperandType{dataAddressing, statusReg}},
		{Sizes: []ast.Size{ast.SizeWord, ast.SizeUnsized},
			Operands: [][]ast.OperandType{statusReg, dataAlterable}},
		{Sizes: []ast.Size{ast.SizeLong, ast.SizeUnsized},
			Operands: [][]ast.OperandType{addrReg, userStack}},
		{Sizes: []ast.Size{ast.SizeLong, ast.SizeUnsized},
			Operands: [][]ast.OperandType{userStack, addrReg}},
	}},

	{Code: "MOVEA", Configs: []Configuration{
		{Sizes: wordLong, Operands: [][]ast.OperandType{allModes, addrReg}},
	}},

	{Code: "LEA", Configs: []Configuration{
		{Sizes: []ast.Size{ast.SizeLong, ast.SizeUnsized},
			Operands: [][]ast.OperandType{control, addrReg}},
	}},

	{Code: "PEA", Configs: []Configuration{
		{Sizes: []ast.Size{ast.SizeLong, ast.SizeUnsized},
			Operands: [][]ast.OperandType{control}},
	}},

	{Code: "JMP", Configs: []Configuration{
		{Sizes: unsized, Operands: [][]ast.OperandType{control}},
	}},

	{Code: "JSR", Configs: []Configuration{
		{Sizes: unsized, Operands: [][]ast.OperandType{control}},
	}},

	{Code: "SWAP", Configs: []Configuration{
		{Sizes: []ast.Size{ast.SizeWord, ast.SizeUnsized},
			Operands: [][]ast.OperandType{dataReg}},
	}},

	{Code: "EXT", Configs: []Configuration{
		{Sizes: wordLong, Operands: [][]ast.OperandType{dataReg}},
	}},

	{Code: "CAS", Configs: []Configuration{
		{Sizes: byteWordLong,
			Operands: [][]ast.OperandType{dataReg, dataReg, memoryAlterable}},
	}},

	noOperand("RESET"),
	noOperand("NOP"),
	noOperand("RTE"),
	noOperand("RTS"),
	noOperand("TRAPV"),
	noOperand("RTR"),
	noOperand("ILLEGAL"),
}

var table = func() map[string]*Operation {
	m := make(map[string]*Operation, len(operations))
	for _, op := range operations {
		m[op.Code] = op
	}
	return m
}()

// Lookup finds an opcode by its canonical code, case-insensitively.
func Lookup(code string) (*Operation, bool) {
	op, ok := table[strings.ToUpper(code)]
	return op, ok
}
