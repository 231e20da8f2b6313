package encode

import (
	"asm68k/ast"
	"asm68k/isa"
)

// swap encodes SWAP Dn.
func swap(op *ast.Operation) []uint16 {
	reg := op.Operands[0].(*ast.DataRegisterDirect).Register
	return []uint16{new(opword).
		field(isa.OpSwap>>3, 13).
		field(uint16(reg.Index), 3).
		word()}
}

// extend encodes EXT.W/EXT.L Dn with the single-bit word/long size scheme.
func extend(op *ast.Operation) []uint16 {
	reg := op.Operands[0].(*ast.DataRegisterDirect).Register
	size := effectiveSize(op.Size)
	return []uint16{new(opword).
		field(0b0100100, 7).
		field(0b01, 2).
		field(sizeField(size, sizeWordLong), 1).
		field(0b000, 3).
		field(uint16(reg.Index), 3).
		word()}
}

// cas encodes CAS Dc,Du,<ea>: two words plus the destination's extensions.
// The size field is the one-based two-bit scheme at bits 9-10.
func cas(op *ast.Operation) []uint16 {
	dc := op.Operands[0].(*ast.DataRegisterDirect).Register
	du := op.Operands[1].(*ast.DataRegisterDirect).Register
	size := effectiveSize(op.Size)
	mode, reg, ext := effectiveAddress(op.Operands[2], size)

	first := new(opword).
		field(0b00001, 5).
		field(sizeField(size, sizeOneBased), 2).
		field(0b011, 3).
		field(mode, 3).
		field(reg, 3).
		word()
	second := new(opword).
		field(0, 7).
		field(uint16(du.Index), 3).
		field(0, 3).
		field(uint16(dc.Index), 3).
		word()

	return append([]uint16{first, second}, ext...)
}
