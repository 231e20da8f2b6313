// Package isa holds the M68000 instruction-set data the assembler consults:
// effective-address field values, opcode templates, and the per-opcode table
// of legal size/operand configurations.
package isa

// Addressing mode constants (3-bit mode field + 3-bit register field).
const (
	// 000 — Data Register Direct: Dn
	ModeData uint16 = 0

	// 001 — Address Register Direct: An
	ModeAddr uint16 = 1

	// 010 — Address Register Indirect: (An)
	ModeAddrInd uint16 = 2

	// 011 — Address Register Indirect with Postincrement: (An)+
	ModeAddrPostInc uint16 = 3

	// 100 — Address Register Indirect with Predecrement: -(An)
	ModeAddrPreDec uint16 = 4

	// 101 — Address Register Indirect with Displacement: (d16,An)
	ModeAddrDisp uint16 = 5

	// 110 — Address Register Indirect with Index: (d8,An,Xn)
	ModeAddrIndex uint16 = 6

	// 111 — miscellaneous modes, disambiguated by the register field
	ModeOther uint16 = 7
)

// Register-field submodes for ModeOther.
const (
	// 000 — Absolute short address: (xxx).W
	RegAbsWord uint16 = 0

	// 001 — Absolute long address: (xxx).L
	RegAbsLong uint16 = 1

	// 010 — Program counter with displacement: (d16,PC)
	RegPCDisp uint16 = 2

	// 011 — Program counter with index: (d8,PC,Xn)
	RegPCIndex uint16 = 3

	// 100 — Immediate: #<data>
	RegImmediate uint16 = 4
)
