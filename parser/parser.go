// Package parser turns a located token stream into a typed program: labels,
// comments, and size/operand-validated operations. All user-level failures go
// through the report collector; one bad line never aborts the parse.
package parser

import (
	"strings"

	"asm68k/ast"
	"asm68k/isa"
	"asm68k/report"
	"asm68k/token"
)

// Parser holds the per-parse state: the diagnostic collector and the queue
// of labels waiting for the operation that will become their target.
type Parser struct {
	rep     *report.Collector
	pending []*ast.Label
}

// New creates a parser reporting into rep.
func New(rep *report.Collector) *Parser {
	return &Parser{rep: rep}
}

// Parse consumes a whole file's tokens, grouped by source line, and builds
// the program. Labels left unbound at end of input are reported once each
// and kept out of the label map.
func (p *Parser) Parse(toks []token.Token) *ast.Program {
	prog := &ast.Program{Labels: make(map[*ast.Label]int)}
	for _, line := range token.SplitLines(toks) {
		p.parseLine(line, prog)
	}
	for _, l := range p.pending {
		p.rep.Errorf(l.Pos, "label %s not followed by any statements", l.Name)
	}
	p.pending = nil
	return prog
}

// parseLine handles one source line: leading label, trailing comment, then
// one operation.
func (p *Parser) parseLine(line []token.Token, prog *ast.Program) {
	cur := &cursor{toks: line}

	if label, ok := p.parseLabel(cur); ok {
		prog.Statements = append(prog.Statements, label)
		p.pending = append(p.pending, label)
	}

	// Detach a trailing comment.
	var comment *token.Token
	if n := len(cur.toks); n > 0 && cur.toks[n-1].Type == token.Comment {
		comment = &cur.toks[n-1]
		cur.toks = cur.toks[:n-1]
	}

	if !cur.more() {
		if comment != nil {
			prog.Statements = append(prog.Statements, &ast.Comment{Pos: comment.Pos, Text: comment.Text})
		}
		return
	}

	op, err := p.parseOperation(cur)
	if err != nil {
		p.rep.Add(err)
		return
	}
	if op == nil {
		return
	}

	// The operation's index is the target of every label seen since the
	// previous operation.
	index := len(prog.Statements)
	for _, l := range p.pending {
		prog.Labels[l] = index
	}
	p.pending = p.pending[:0]
	prog.Statements = append(prog.Statements, op)
}

// parseLabel consumes a leading "name:" or ".name:" if present.
func (p *Parser) parseLabel(cur *cursor) (*ast.Label, bool) {
	toks := cur.toks[cur.pos:]

	if len(toks) >= 2 && toks[0].Type == token.Identifier && toks[1].Type == token.Colon {
		cur.pos += 2
		return &ast.Label{Pos: toks[0].Pos, Name: toks[0].Text}, true
	}
	if len(toks) >= 3 && toks[0].Type == token.Dot &&
		toks[1].Type == token.Identifier && toks[2].Type == token.Colon {
		cur.pos += 3
		return &ast.Label{Pos: toks[0].Pos, Name: "." + toks[1].Text}, true
	}
	return nil, false
}

// parseOperation parses "OPCODE[.size] operand,operand,..." and validates it
// against the operation table. Operand failures are reported individually so
// the remaining operands still get diagnostics; a line with failed operands
// yields no statement.
func (p *Parser) parseOperation(cur *cursor) (*ast.Operation, error) {
	opTok, err := cur.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	size := ast.SizeUnsized
	if cur.peekType(token.Dot) {
		cur.next()
		size, err = p.parseSizeSuffix(cur)
		if err != nil {
			return nil, err
		}
	}

	var operands []ast.Operand
	failed := false
	for cur.more() && !cur.peekType(token.Comment) {
		operand, err := p.parseOperand(cur)
		if err != nil {
			p.rep.Add(err)
			failed = true
			p.recoverOperand(cur)
		} else {
			operands = append(operands, operand)
		}
		if cur.peekType(token.Comma) {
			cur.next()
			continue
		}
		break
	}
	if cur.more() && !cur.peekType(token.Comment) {
		tok, _ := cur.peek()
		return nil, report.Errorf(tok.Pos, "expected ',' or end of line, found %s", tok)
	}
	if failed {
		return nil, nil
	}

	code := strings.ToUpper(opTok.Text)
	op, ok := isa.Lookup(code)
	if !ok {
		// Non-opcode identifiers would be directives; there is no
		// directive grammar, so the line yields no statement.
		return nil, report.Errorf(opTok.Pos, "unknown operation %q", opTok.Text)
	}
	if err := op.Validate(size, operands); err != nil {
		return nil, report.Errorf(opTok.Pos, "%v", err)
	}

	return &ast.Operation{Pos: opTok.Pos, Opcode: code, Size: size, Operands: operands}, nil
}

// recoverOperand skips to the comma starting the next operand, leaving the
// comma for the caller.
func (p *Parser) recoverOperand(cur *cursor) {
	for cur.more() && !cur.peekType(token.Comma) && !cur.peekType(token.Comment) {
		cur.next()
	}
}
