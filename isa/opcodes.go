package isa

// Opcode templates: the literal bits of each instruction word before size,
// mode, and register fields are merged in.
const (
	// Immediate-to-EA family
	OpOri  uint16 = 0x0000 // ORI
	OpAndi uint16 = 0x0200 // ANDI
	OpSubi uint16 = 0x0400 // SUBI
	OpAddi uint16 = 0x0600 // ADDI
	OpEori uint16 = 0x0A00 // EORI
	OpCmpi uint16 = 0x0C00 // CMPI

	// Immediate-to-status forms
	OpOriToCcr  uint16 = 0x003C // ORI to CCR
	OpOriToSr   uint16 = 0x007C // ORI to SR (privileged)
	OpAndiToCcr uint16 = 0x023C // ANDI to CCR
	OpAndiToSr  uint16 = 0x027C // ANDI to SR (privileged)
	OpEoriToCcr uint16 = 0x0A3C // EORI to CCR
	OpEoriToSr  uint16 = 0x0A7C // EORI to SR (privileged)

	// Single-operand family
	OpNegx uint16 = 0x4000 // NEGX
	OpClr  uint16 = 0x4200 // CLR
	OpNeg  uint16 = 0x4400 // NEG
	OpNot  uint16 = 0x4600 // NOT
	OpTst  uint16 = 0x4A00 // TST

	// MOVE status/user-stack forms
	OpMoveFromSr  uint16 = 0x40C0 // MOVE SR,<ea>
	OpMoveToCcr   uint16 = 0x44C0 // MOVE <ea>,CCR
	OpMoveToSr    uint16 = 0x46C0 // MOVE <ea>,SR (privileged)
	OpMoveToUsp   uint16 = 0x4E60 // MOVE An,USP
	OpMoveFromUsp uint16 = 0x4E68 // MOVE USP,An

	// Address family
	OpLea uint16 = 0x41C0 // LEA
	OpPea uint16 = 0x4840 // PEA

	// Miscellaneous
	OpSwap uint16 = 0x4840 // SWAP
	OpExt  uint16 = 0x4800 // EXT
	OpCas  uint16 = 0x08C0 // CAS

	// Flow
	OpJsr     uint16 = 0x4E80 // JSR
	OpJmp     uint16 = 0x4EC0 // JMP
	OpReset   uint16 = 0x4E70 // RESET (privileged)
	OpNop     uint16 = 0x4E71 // NOP
	OpRte     uint16 = 0x4E73 // RTE (privileged)
	OpRts     uint16 = 0x4E75 // RTS
	OpTrapv   uint16 = 0x4E76 // TRAPV
	OpRtr     uint16 = 0x4E77 // RTR
	OpIllegal uint16 = 0x4AFC // ILLEGAL
)
