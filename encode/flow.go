package encode

import (
	"asm68k/ast"
	"asm68k/isa"
)

// jump encodes JMP and JSR: a 10-bit template and the control effective
// address.
func jump(template uint16, op *ast.Operation) []uint16 {
	mode, reg, ext := effectiveAddress(op.Operands[0], ast.SizeUnsized)
	word := new(opword).
		field(template>>6, 10).
		field(mode, 3).
		field(reg, 3).
		word()
	return append([]uint16{word}, ext...)
}

// Whole-word instructions without operands.
var noOperandWords = map[string]uint16{
	"RESET":   isa.OpReset,
	"NOP":     isa.OpNop,
	"RTE":     isa.OpRte,
	"RTS":     isa.OpRts,
	"TRAPV":   isa.OpTrapv,
	"RTR":     isa.OpRtr,
	"ILLEGAL": isa.OpIllegal,
}
