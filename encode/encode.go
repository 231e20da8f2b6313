package encode

import (
	"encoding/binary"
	"fmt"

	"asm68k/ast"
	"asm68k/isa"
)

// Instruction encodes one validated operation into its instruction words.
// Opcodes present in the operation table but without an encoder yet are an
// error, not a panic: the statement itself is legal.
func Instruction(op *ast.Operation) ([]uint16, error) {
	switch op.Opcode {
	case "ORI", "ANDI", "SUBI", "ADDI", "EORI", "CMPI":
		return immediateFamily(op), nil
	case "NEGX", "CLR", "NEG", "NOT", "TST":
		return singleOperand(singleTemplates[op.Opcode], op), nil
	case "MOVE", "MOVEA":
		return move(op), nil
	case "LEA":
		return lea(op), nil
	case "PEA":
		return pea(op), nil
	case "JMP":
		return jump(isa.OpJmp, op), nil
	case "JSR":
		return jump(isa.OpJsr, op), nil
	case "SWAP":
		return swap(op), nil
	case "EXT":
		return extend(op), nil
	case "CAS":
		return cas(op), nil
	}
	if word, ok := noOperandWords[op.Opcode]; ok {
		return []uint16{word}, nil
	}
	return nil, fmt.Errorf("no encoder for %s", op.Opcode)
}

// Program encodes every operation statement in order. Labels and comments
// emit nothing.
func Program(p *ast.Program) ([]byte, error) {
	var words []uint16
	for _, stmt := range p.Statements {
		op, ok := stmt.(*ast.Operation)
		if !ok {
			continue
		}
		w, err := Instruction(op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Loc(), err)
		}
		words = append(words, w...)
	}
	return WordsToBytes(words), nil
}

// WordsToBytes serializes instruction words big-endian, the M68000 memory
// order.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(out[i*2:], w)
	}
	return out
}
