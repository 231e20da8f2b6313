package encode

import (
	"fmt"

	"asm68k/ast"
)

// sizeScheme selects the size-field encoding an instruction family uses.
type sizeScheme int

const (
	// sizeCommon is the two-bit zero-based scheme: byte=00 word=01 long=10
	// (NOT, CLR, NEG, NEGX, TST and the immediate family).
	sizeCommon sizeScheme = iota
	// sizeOneBased is the two-bit one-based scheme: byte=01 word=10
	// long=11 (the CAS family).
	sizeOneBased
	// sizeWordLong is the single-bit scheme: word=0 long=1; byte does not
	// exist in it (EXT).
	sizeWordLong
)

// effectiveSize resolves an omitted suffix to the default operation size.
func effectiveSize(s ast.Size) ast.Size {
	if s == ast.SizeUnsized {
		return ast.SizeWord
	}
	return s
}

// sizeField returns the size-field bits for a scheme. A size the scheme
// cannot express should have been rejected by the validator; seeing one here
// is a contract violation.
func sizeField(s ast.Size, scheme sizeScheme) uint16 {
	switch scheme {
	case sizeCommon:
		switch s {
		case ast.SizeByte:
			return 0b00
		case ast.SizeWord:
			return 0b01
		case ast.SizeLong:
			return 0b10
		}
	case sizeOneBased:
		switch s {
		case ast.SizeByte:
			return 0b01
		case ast.SizeWord:
			return 0b10
		case ast.SizeLong:
			return 0b11
		}
	case sizeWordLong:
		switch s {
		case ast.SizeWord:
			return 0b0
		case ast.SizeLong:
			return 0b1
		}
	}
	panic(fmt.Sprintf("encode: size %v has no encoding in scheme %d", s, scheme))
}

// sizeFieldMove is MOVE's own scheme: byte=01 word=11 long=10.
func sizeFieldMove(s ast.Size) uint16 {
	switch s {
	case ast.SizeByte:
		return 0b01
	case ast.SizeWord:
		return 0b11
	case ast.SizeLong:
		return 0b10
	}
	panic(fmt.Sprintf("encode: size %v has no MOVE encoding", s))
}
