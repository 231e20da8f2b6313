package encode

import (
	"asm68k/ast"
	"asm68k/isa"
)

// singleOperand encodes the NOT/CLR/NEG/NEGX/TST shape: an 8-bit opcode
// template, the common two-bit size field, and the effective address.
func singleOperand(template uint16, op *ast.Operation) []uint16 {
	size := effectiveSize(op.Size)
	mode, reg, ext := effectiveAddress(op.Operands[0], size)
	word := new(opword).
		field(template>>8, 8).
		field(sizeField(size, sizeCommon), 2).
		field(mode, 3).
		field(reg, 3).
		word()
	return append([]uint16{word}, ext...)
}

var singleTemplates = map[string]uint16{
	"NEGX": isa.OpNegx,
	"CLR":  isa.OpClr,
	"NEG":  isa.OpNeg,
	"NOT":  isa.OpNot,
	"TST":  isa.OpTst,
}
