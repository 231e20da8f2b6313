package encode

import (
	"asm68k/ast"
	"asm68k/isa"
)

var immediateTemplates = map[string]uint16{
	"ORI":  isa.OpOri,
	"ANDI": isa.OpAndi,
	"SUBI": isa.OpSubi,
	"ADDI": isa.OpAddi,
	"EORI": isa.OpEori,
	"CMPI": isa.OpCmpi,
}

var immediateToCcr = map[string]uint16{
	"ORI":  isa.OpOriToCcr,
	"ANDI": isa.OpAndiToCcr,
	"EORI": isa.OpEoriToCcr,
}

var immediateToSr = map[string]uint16{
	"ORI":  isa.OpOriToSr,
	"ANDI": isa.OpAndiToSr,
	"EORI": isa.OpEoriToSr,
}

// immediateFamily encodes ORI/ANDI/EORI/ADDI/SUBI/CMPI, including the
// fixed-opword #imm,CCR and #imm,SR forms. Word order is opword, immediate
// extension, then destination extension.
func immediateFamily(op *ast.Operation) []uint16 {
	imm := op.Operands[0].(*ast.Immediate)

	switch op.Operands[1].Type() {
	case ast.TypeConditionCode:
		return []uint16{immediateToCcr[op.Opcode], uint16(imm.Value) & 0x00FF}
	case ast.TypeStatus:
		return []uint16{immediateToSr[op.Opcode], uint16(imm.Value)}
	}

	size := effectiveSize(op.Size)
	template := immediateTemplates[op.Opcode]
	mode, reg, ext := effectiveAddress(op.Operands[1], size)
	word := new(opword).
		field(template>>8, 8).
		field(sizeField(size, sizeCommon), 2).
		field(mode, 3).
		field(reg, 3).
		word()

	words := append([]uint16{word}, immediateWords(imm.Value, size)...)
	return append(words, ext...)
}
