package ast

import "fmt"

// RegisterKind discriminates the register variants.
type RegisterKind int

const (
	// DataRegister is D0-D7.
	DataRegister RegisterKind = iota
	// AddressRegister is A0-A7.
	AddressRegister
	// ProgramCounter is PC. Index is unused.
	ProgramCounter
)

// Register identifies one machine register. Index is 0-7 for data and
// address registers; the parser rejects anything outside that range.
type Register struct {
	Kind  RegisterKind
	Index uint8
}

func (r Register) String() string {
	switch r.Kind {
	case DataRegister:
		return fmt.Sprintf("D%d", r.Index)
	case AddressRegister:
		return fmt.Sprintf("A%d", r.Index)
	case ProgramCounter:
		return "PC"
	}
	return fmt.Sprintf("register(%d)", int(r.Kind))
}
