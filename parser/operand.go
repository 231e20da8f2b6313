package parser

import (
	"strconv"
	"strings"

	"asm68k/ast"
	"asm68k/report"
	"asm68k/token"
)

// parseOperand recognizes one addressing-mode operand from the cursor. The
// operand's location is the location of its first token. Failures never
// consume into the next operand's territory beyond the failing token; the
// caller recovers to the following comma.
func (p *Parser) parseOperand(cur *cursor) (ast.Operand, error) {
	tok, ok := cur.peek()
	if !ok {
		return nil, report.Errorf(cur.loc(), "expected operand, found end of line")
	}

	switch tok.Type {
	case token.Identifier:
		return p.parseRegisterOperand(cur)

	case token.Hash:
		cur.next()
		num, err := cur.expect(token.Number)
		if err != nil {
			return nil, err
		}
		val, err := parseInteger(num.Text)
		if err != nil {
			return nil, report.Errorf(num.Pos, "invalid number %q", num.Text)
		}
		return &ast.Immediate{Pos: tok.Pos, Value: val}, nil

	case token.Minus:
		// -(An)
		cur.next()
		if _, err := cur.expect(token.LeftParen); err != nil {
			return nil, err
		}
		reg, err := p.parseAddressRegister(cur)
		if err != nil {
			return nil, err
		}
		if _, err := cur.expect(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.AddressPreDecrement{Pos: tok.Pos, Register: reg}, nil

	case token.LeftParen:
		return p.parseParenOperand(cur)

	case token.Number:
		// d(An), d(An,Xn.size), d(PC), d(PC,Xn.size)
		cur.next()
		disp, err := parseInteger(tok.Text)
		if err != nil {
			return nil, report.Errorf(tok.Pos, "invalid number %q", tok.Text)
		}
		if _, err := cur.expect(token.LeftParen); err != nil {
			return nil, err
		}
		return p.parseDisplacedOperand(cur, tok.Pos, disp)

	default:
		return nil, report.Errorf(tok.Pos, "unexpected %s", tok)
	}
}

// parseRegisterOperand handles CCR, SR, USP, Dn and An. PC is never a valid
// direct operand.
func (p *Parser) parseRegisterOperand(cur *cursor) (ast.Operand, error) {
	tok, _ := cur.next()
	switch strings.ToUpper(tok.Text) {
	case "CCR":
		return &ast.ConditionCodeRegister{Pos: tok.Pos}, nil
	case "SR":
		return &ast.StatusRegister{Pos: tok.Pos}, nil
	case "USP":
		return &ast.UserStackPointer{Pos: tok.Pos}, nil
	}

	reg, ok, err := registerName(tok)
	if err != nil {
		return nil, err
	}
	if !ok || reg.Kind == ast.ProgramCounter {
		return nil, report.Errorf(tok.Pos, "unexpected identifier %q", tok.Text)
	}
	if reg.Kind == ast.DataRegister {
		return &ast.DataRegisterDirect{Pos: tok.Pos, Register: reg}, nil
	}
	return &ast.AddressRegisterDirect{Pos: tok.Pos, Register: reg}, nil
}

// parseParenOperand handles everything opening with '(': (An), (An)+,
// (d).W, (d).L, and the (d,An...)/(d,PC...) displacement spellings.
func (p *Parser) parseParenOperand(cur *cursor) (ast.Operand, error) {
	open, _ := cur.next()

	tok, ok := cur.peek()
	if !ok {
		return nil, report.Errorf(cur.loc(), "expected register or displacement, found end of line")
	}

	switch tok.Type {
	case token.Identifier:
		reg, err := p.parseAddressRegister(cur)
		if err != nil {
			return nil, err
		}
		if _, err := cur.expect(token.RightParen); err != nil {
			return nil, err
		}
		if cur.peekType(token.Plus) {
			cur.next()
			return &ast.AddressPostIncrement{Pos: open.Pos, Register: reg}, nil
		}
		return &ast.AddressIndirect{Pos: open.Pos, Register: reg}, nil

	case token.Number:
		cur.next()
		val, err := parseInteger(tok.Text)
		if err != nil {
			return nil, report.Errorf(tok.Pos, "invalid number %q", tok.Text)
		}

		if cur.peekType(token.RightParen) {
			// (d).W or (d).L absolute form.
			cur.next()
			if _, err := cur.expect(token.Dot); err != nil {
				return nil, err
			}
			size, err := p.parseSizeSuffix(cur)
			if err != nil {
				return nil, err
			}
			switch size {
			case ast.SizeWord:
				return &ast.AbsoluteWord{Pos: open.Pos, Value: int32(val)}, nil
			case ast.SizeLong:
				return &ast.AbsoluteLong{Pos: open.Pos, Value: int32(val)}, nil
			default:
				return nil, report.Errorf(open.Pos, "byte size is not valid for absolute addressing")
			}
		}

		if _, err := cur.expect(token.Comma); err != nil {
			return nil, err
		}
		return p.parseDisplacedOperand(cur, open.Pos, val)

	default:
		return nil, report.Errorf(tok.Pos, "expected register or displacement, found %s", tok)
	}
}

// parseDisplacedOperand finishes a displacement or indexed operand once the
// displacement and the opening structure are consumed. The cursor stands on
// the base register.
func (p *Parser) parseDisplacedOperand(cur *cursor, pos token.Location, disp int64) (ast.Operand, error) {
	base, err := p.parseBaseRegister(cur)
	if err != nil {
		return nil, err
	}

	if cur.peekType(token.RightParen) {
		cur.next()
		if base.Kind == ast.ProgramCounter {
			return &ast.PCDisplacement{Pos: pos, Displacement: int32(disp)}, nil
		}
		return &ast.AddressDisplacement{Pos: pos, Register: base, Displacement: int32(disp)}, nil
	}

	if _, err := cur.expect(token.Comma); err != nil {
		return nil, err
	}
	index, err := p.parseIndexRegister(cur)
	if err != nil {
		return nil, err
	}
	if _, err := cur.expect(token.Dot); err != nil {
		return nil, err
	}
	size, err := p.parseIndexSize(cur)
	if err != nil {
		return nil, err
	}
	if _, err := cur.expect(token.RightParen); err != nil {
		return nil, err
	}

	if base.Kind == ast.ProgramCounter {
		return &ast.PCIndex{Pos: pos, Displacement: int32(disp), Index: index, IndexSize: size}, nil
	}
	return &ast.AddressIndex{Pos: pos, Register: base, Displacement: int32(disp), Index: index, IndexSize: size}, nil
}

// parseAddressRegister expects An.
func (p *Parser) parseAddressRegister(cur *cursor) (ast.Register, error) {
	tok, err := cur.expect(token.Identifier)
	if err != nil {
		return ast.Register{}, err
	}
	reg, ok, err := registerName(tok)
	if err != nil {
		return ast.Register{}, err
	}
	if !ok || reg.Kind != ast.AddressRegister {
		return ast.Register{}, report.Errorf(tok.Pos, "expected address register, found %q", tok.Text)
	}
	return reg, nil
}

// parseBaseRegister expects the base of a displaced operand: An or PC.
// Data registers cannot be displaced.
func (p *Parser) parseBaseRegister(cur *cursor) (ast.Register, error) {
	tok, err := cur.expect(token.Identifier)
	if err != nil {
		return ast.Register{}, err
	}
	reg, ok, err := registerName(tok)
	if err != nil {
		return ast.Register{}, err
	}
	if !ok {
		return ast.Register{}, report.Errorf(tok.Pos, "expected base register, found %q", tok.Text)
	}
	if reg.Kind == ast.DataRegister {
		return ast.Register{}, report.Errorf(tok.Pos, "data register cannot be displaced")
	}
	return reg, nil
}

// parseIndexRegister expects Dn or An. The caller has already consumed the
// comma, so anything else here is a missing index register.
func (p *Parser) parseIndexRegister(cur *cursor) (ast.Register, error) {
	tok, ok := cur.peek()
	if !ok || tok.Type != token.Identifier {
		return ast.Register{}, report.Errorf(cur.loc(), "expected index register")
	}
	cur.next()
	reg, ok, err := registerName(tok)
	if err != nil {
		return ast.Register{}, err
	}
	if !ok || reg.Kind == ast.ProgramCounter {
		return ast.Register{}, report.Errorf(tok.Pos, "expected index register, found %q", tok.Text)
	}
	return reg, nil
}

// parseSizeSuffix expects B, W or L after a dot.
func (p *Parser) parseSizeSuffix(cur *cursor) (ast.Size, error) {
	tok, err := cur.expect(token.Identifier)
	if err != nil {
		return ast.SizeUnsized, err
	}
	switch strings.ToUpper(tok.Text) {
	case "B":
		return ast.SizeByte, nil
	case "W":
		return ast.SizeWord, nil
	case "L":
		return ast.SizeLong, nil
	}
	return ast.SizeUnsized, report.Errorf(tok.Pos, "invalid size suffix %q", tok.Text)
}

// parseIndexSize expects W or L; index registers have no byte width.
func (p *Parser) parseIndexSize(cur *cursor) (ast.Size, error) {
	tok, err := cur.expect(token.Identifier)
	if err != nil {
		return ast.SizeUnsized, err
	}
	switch strings.ToUpper(tok.Text) {
	case "W":
		return ast.SizeWord, nil
	case "L":
		return ast.SizeLong, nil
	}
	return ast.SizeUnsized, report.Errorf(tok.Pos, "invalid index size %q", tok.Text)
}

// registerName classifies an identifier as D0-D7, A0-A7 or PC. The second
// return is false for identifiers that are not register names at all; an
// error means a register name with an index outside 0-7.
func registerName(tok token.Token) (ast.Register, bool, error) {
	text := strings.ToUpper(tok.Text)
	if text == "PC" {
		return ast.Register{Kind: ast.ProgramCounter}, true, nil
	}
	if len(text) < 2 {
		return ast.Register{}, false, nil
	}

	var kind ast.RegisterKind
	switch text[0] {
	case 'D':
		kind = ast.DataRegister
	case 'A':
		kind = ast.AddressRegister
	default:
		return ast.Register{}, false, nil
	}

	index, err := strconv.Atoi(text[1:])
	if err != nil {
		return ast.Register{}, false, nil
	}
	if index < 0 || index > 7 {
		return ast.Register{}, false, report.Errorf(tok.Pos, "register index out of range in %q", tok.Text)
	}
	return ast.Register{Kind: kind, Index: uint8(index)}, true, nil
}
