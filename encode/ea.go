package encode

import (
	"fmt"

	"asm68k/ast"
	"asm68k/isa"
)

// effectiveAddress returns the mode field, register field, and extension
// words for an operand. Several operand types share mode field 0b111 and are
// told apart by the register field. size governs immediate extension width.
func effectiveAddress(o ast.Operand, size ast.Size) (mode, reg uint16, ext []uint16) {
	switch o := o.(type) {
	case *ast.DataRegisterDirect:
		return isa.ModeData, uint16(o.Register.Index), nil

	case *ast.AddressRegisterDirect:
		return isa.ModeAddr, uint16(o.Register.Index), nil

	case *ast.AddressIndirect:
		return isa.ModeAddrInd, uint16(o.Register.Index), nil

	case *ast.AddressPostIncrement:
		return isa.ModeAddrPostInc, uint16(o.Register.Index), nil

	case *ast.AddressPreDecrement:
		return isa.ModeAddrPreDec, uint16(o.Register.Index), nil

	case *ast.AddressDisplacement:
		return isa.ModeAddrDisp, uint16(o.Register.Index),
			[]uint16{uint16(int16(o.Displacement))}

	case *ast.AddressIndex:
		return isa.ModeAddrIndex, uint16(o.Register.Index),
			[]uint16{briefExtension(o.Index, o.IndexSize, o.Displacement)}

	case *ast.AbsoluteWord:
		return isa.ModeOther, isa.RegAbsWord, []uint16{uint16(o.Value)}

	case *ast.AbsoluteLong:
		return isa.ModeOther, isa.RegAbsLong,
			[]uint16{uint16(uint32(o.Value) >> 16), uint16(o.Value)}

	case *ast.PCDisplacement:
		return isa.ModeOther, isa.RegPCDisp,
			[]uint16{uint16(int16(o.Displacement))}

	case *ast.PCIndex:
		return isa.ModeOther, isa.RegPCIndex,
			[]uint16{briefExtension(o.Index, o.IndexSize, o.Displacement)}

	case *ast.Immediate:
		return isa.ModeOther, isa.RegImmediate, immediateWords(o.Value, size)
	}
	panic(fmt.Sprintf("encode: operand %s has no effective-address encoding", o.Type()))
}

// briefExtension builds the single extension word of the indexed modes:
// index register type (bit 15), index register (bits 12-14), index size
// (bit 11), signed 8-bit displacement (bits 0-7).
func briefExtension(index ast.Register, size ast.Size, disp int32) uint16 {
	var ext uint16
	if index.Kind == ast.AddressRegister {
		ext |= 0x8000
	}
	ext |= uint16(index.Index) << 12
	if size == ast.SizeLong {
		ext |= 0x0800
	}
	ext |= uint16(uint8(int8(disp)))
	return ext
}

// immediateWords sizes the immediate extension by the operation size, not
// the literal's magnitude: one word for byte and word operations, two for
// long.
func immediateWords(value int64, size ast.Size) []uint16 {
	switch effectiveSize(size) {
	case ast.SizeByte:
		return []uint16{uint16(value) & 0x00FF}
	case ast.SizeLong:
		return []uint16{uint16(uint32(value) >> 16), uint16(value)}
	}
	return []uint16{uint16(value)}
}
