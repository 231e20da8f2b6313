package encode

import (
	"asm68k/ast"
	"asm68k/isa"
)

// lea encodes LEA <ea>,An: 0100 An 111 ea.
func lea(op *ast.Operation) []uint16 {
	an := op.Operands[1].(*ast.AddressRegisterDirect).Register
	mode, reg, ext := effectiveAddress(op.Operands[0], ast.SizeLong)
	word := new(opword).
		field(0b0100, 4).
		field(uint16(an.Index), 3).
		field(0b111, 3).
		field(mode, 3).
		field(reg, 3).
		word()
	return append([]uint16{word}, ext...)
}

// pea encodes PEA <ea>.
func pea(op *ast.Operation) []uint16 {
	mode, reg, ext := effectiveAddress(op.Operands[0], ast.SizeLong)
	word := new(opword).
		field(isa.OpPea>>6, 10).
		field(mode, 3).
		field(reg, 3).
		word()
	return append([]uint16{word}, ext...)
}
