package encode

import (
	"asm68k/ast"
	"asm68k/isa"
)

// move encodes MOVE and MOVEA. The CCR/SR/USP forms are separate
// instructions with fixed opwords; everything else is the general form with
// the destination's effective address stored register-first.
func move(op *ast.Operation) []uint16 {
	src, dst := op.Operands[0], op.Operands[1]

	switch {
	case dst.Type() == ast.TypeConditionCode:
		return statusMove(isa.OpMoveToCcr, src)
	case dst.Type() == ast.TypeStatus:
		return statusMove(isa.OpMoveToSr, src)
	case src.Type() == ast.TypeStatus:
		return statusMove(isa.OpMoveFromSr, dst)
	case dst.Type() == ast.TypeUserStack:
		return []uint16{uspMove(isa.OpMoveToUsp, src)}
	case src.Type() == ast.TypeUserStack:
		return []uint16{uspMove(isa.OpMoveFromUsp, dst)}
	}

	size := effectiveSize(op.Size)
	srcMode, srcReg, srcExt := effectiveAddress(src, size)
	dstMode, dstReg, dstExt := effectiveAddress(dst, size)
	word := new(opword).
		field(0b00, 2).
		field(sizeFieldMove(size), 2).
		field(dstReg, 3).
		field(dstMode, 3).
		field(srcMode, 3).
		field(srcReg, 3).
		word()

	words := append([]uint16{word}, srcExt...)
	return append(words, dstExt...)
}

// statusMove encodes MOVE <ea>,CCR / MOVE <ea>,SR / MOVE SR,<ea>. These are
// word operations regardless of suffix.
func statusMove(template uint16, ea ast.Operand) []uint16 {
	mode, reg, ext := effectiveAddress(ea, ast.SizeWord)
	word := new(opword).
		field(template>>6, 10).
		field(mode, 3).
		field(reg, 3).
		word()
	return append([]uint16{word}, ext...)
}

// uspMove encodes MOVE An,USP and MOVE USP,An.
func uspMove(template uint16, an ast.Operand) uint16 {
	reg := an.(*ast.AddressRegisterDirect).Register
	return new(opword).
		field(template>>3, 13).
		field(uint16(reg.Index), 3).
		word()
}
