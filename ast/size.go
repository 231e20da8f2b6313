package ast

// Size is the data size attached to an operation or index register.
type Size int

const (
	// SizeUnsized is the zero value, meaning no size suffix in the source.
	SizeUnsized Size = iota
	// SizeByte is 8-bit.
	SizeByte
	// SizeWord is 16-bit.
	SizeWord
	// SizeLong is 32-bit.
	SizeLong
)

func (s Size) String() string {
	switch s {
	case SizeByte:
		return "B"
	case SizeWord:
		return "W"
	case SizeLong:
		return "L"
	}
	return ""
}
