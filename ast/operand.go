package ast

import (
	"fmt"

	"asm68k/token"
)

// OperandType classifies the addressing-mode shape of a parsed operand. The
// configuration validator matches on these tags, never on operand values.
type OperandType int

const (
	TypeDataRegister OperandType = iota
	TypeAddressRegister
	TypeAddressIndirect
	TypePostIncrement
	TypePreDecrement
	TypeDisplacement
	TypeIndex
	TypeAbsoluteWord
	TypeAbsoluteLong
	TypePCDisplacement
	TypePCIndex
	TypeImmediate
	TypeConditionCode
	TypeStatus
	TypeUserStack
	TypeAddress
)

var operandTypeNames = map[OperandType]string{
	TypeDataRegister:    "data register",
	TypeAddressRegister: "address register",
	TypeAddressIndirect: "address indirect",
	TypePostIncrement:   "post-increment indirect",
	TypePreDecrement:    "pre-decrement indirect",
	TypeDisplacement:    "displacement indirect",
	TypeIndex:           "indexed indirect",
	TypeAbsoluteWord:    "absolute word",
	TypeAbsoluteLong:    "absolute long",
	TypePCDisplacement:  "PC displacement",
	TypePCIndex:         "PC indexed",
	TypeImmediate:       "immediate",
	TypeConditionCode:   "CCR",
	TypeStatus:          "SR",
	TypeUserStack:       "USP",
	TypeAddress:         "address",
}

func (t OperandType) String() string {
	if s, ok := operandTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("operand(%d)", int(t))
}

// Operand is one parsed instruction operand. String renders the canonical
// source form of the operand.
type Operand interface {
	Type() OperandType
	Loc() token.Location
	String() string
}

// DataRegisterDirect is Dn.
type DataRegisterDirect struct {
	Pos      token.Location
	Register Register
}

// AddressRegisterDirect is An.
type AddressRegisterDirect struct {
	Pos      token.Location
	Register Register
}

// AddressIndirect is (An).
type AddressIndirect struct {
	Pos      token.Location
	Register Register
}

// AddressPostIncrement is (An)+.
type AddressPostIncrement struct {
	Pos      token.Location
	Register Register
}

// AddressPreDecrement is -(An).
type AddressPreDecrement struct {
	Pos      token.Location
	Register Register
}

// AddressDisplacement is d16(An).
type AddressDisplacement struct {
	Pos          token.Location
	Register     Register
	Displacement int32
}

// AddressIndex is d8(An,Xn.size).
type AddressIndex struct {
	Pos          token.Location
	Register     Register
	Displacement int32
	Index        Register
	IndexSize    Size
}

// AbsoluteWord is (xxx).W.
type AbsoluteWord struct {
	Pos   token.Location
	Value int32
}

// AbsoluteLong is (xxx).L.
type AbsoluteLong struct {
	Pos   token.Location
	Value int32
}

// PCDisplacement is d16(PC).
type PCDisplacement struct {
	Pos          token.Location
	Displacement int32
}

// PCIndex is d8(PC,Xn.size).
type PCIndex struct {
	Pos          token.Location
	Displacement int32
	Index        Register
	IndexSize    Size
}

// Immediate is #<data>.
type Immediate struct {
	Pos   token.Location
	Value int64
}

// ConditionCodeRegister is the CCR operand.
type ConditionCodeRegister struct {
	Pos token.Location
}

// StatusRegister is the SR operand.
type StatusRegister struct {
	Pos token.Location
}

// UserStackPointer is the USP operand.
type UserStackPointer struct {
	Pos token.Location
}

// AbsoluteAddress is a generic address operand. No addressing mode produces
// it; it exists as an extension point for label operands.
type AbsoluteAddress struct {
	Pos   token.Location
	Value int64
}

func (o *DataRegisterDirect) Type() OperandType    { return TypeDataRegister }
func (o *AddressRegisterDirect) Type() OperandType { return TypeAddressRegister }
func (o *AddressIndirect) Type() OperandType       { return TypeAddressIndirect }
func (o *AddressPostIncrement) Type() OperandType  { return TypePostIncrement }
func (o *AddressPreDecrement) Type() OperandType   { return TypePreDecrement }
func (o *AddressDisplacement) Type() OperandType   { return TypeDisplacement }
func (o *AddressIndex) Type() OperandType          { return TypeIndex }
func (o *AbsoluteWord) Type() OperandType          { return TypeAbsoluteWord }
func (o *AbsoluteLong) Type() OperandType          { return TypeAbsoluteLong }
func (o *PCDisplacement) Type() OperandType        { return TypePCDisplacement }
func (o *PCIndex) Type() OperandType               { return TypePCIndex }
func (o *Immediate) Type() OperandType             { return TypeImmediate }
func (o *ConditionCodeRegister) Type() OperandType { return TypeConditionCode }
func (o *StatusRegister) Type() OperandType        { return TypeStatus }
func (o *UserStackPointer) Type() OperandType      { return TypeUserStack }
func (o *AbsoluteAddress) Type() OperandType       { return TypeAddress }

func (o *DataRegisterDirect) Loc() token.Location    { return o.Pos }
func (o *AddressRegisterDirect) Loc() token.Location { return o.Pos }
func (o *AddressIndirect) Loc() token.Location       { return o.Pos }
func (o *AddressPostIncrement) Loc() token.Location  { return o.Pos }
func (o *AddressPreDecrement) Loc() token.Location   { return o.Pos }
func (o *AddressDisplacement) Loc() token.Location   { return o.Pos }
func (o *AddressIndex) Loc() token.Location          { return o.Pos }
func (o *AbsoluteWord) Loc() token.Location          { return o.Pos }
func (o *AbsoluteLong) Loc() token.Location          { return o.Pos }
func (o *PCDisplacement) Loc() token.Location        { return o.Pos }
func (o *PCIndex) Loc() token.Location               { return o.Pos }
func (o *Immediate) Loc() token.Location             { return o.Pos }
func (o *ConditionCodeRegister) Loc() token.Location { return o.Pos }
func (o *StatusRegister) Loc() token.Location        { return o.Pos }
func (o *UserStackPointer) Loc() token.Location      { return o.Pos }
func (o *AbsoluteAddress) Loc() token.Location       { return o.Pos }

func (o *DataRegisterDirect) String() string    { return o.Register.String() }
func (o *AddressRegisterDirect) String() string { return o.Register.String() }
func (o *AddressIndirect) String() string       { return fmt.Sprintf("(%s)", o.Register) }
func (o *AddressPostIncrement) String() string  { return fmt.Sprintf("(%s)+", o.Register) }
func (o *AddressPreDecrement) String() string   { return fmt.Sprintf("-(%s)", o.Register) }

func (o *AddressDisplacement) String() string {
	return fmt.Sprintf("%d(%s)", o.Displacement, o.Register)
}

func (o *AddressIndex) String() string {
	return fmt.Sprintf("%d(%s,%s.%s)", o.Displacement, o.Register, o.Index, o.IndexSize)
}

func (o *AbsoluteWord) String() string { return fmt.Sprintf("(%d).W", o.Value) }
func (o *AbsoluteLong) String() string { return fmt.Sprintf("(%d).L", o.Value) }

func (o *PCDisplacement) String() string {
	return fmt.Sprintf("%d(PC)", o.Displacement)
}

func (o *PCIndex) String() string {
	return fmt.Sprintf("%d(PC,%s.%s)", o.Displacement, o.Index, o.IndexSize)
}

func (o *Immediate) String() string             { return fmt.Sprintf("#%d", o.Value) }
func (o *ConditionCodeRegister) String() string { return "CCR" }
func (o *StatusRegister) String() string        { return "SR" }
func (o *UserStackPointer) String() string      { return "USP" }
func (o *AbsoluteAddress) String() string       { return fmt.Sprintf("%d", o.Value) }
