package ast

import (
	"fmt"
	"strings"

	"asm68k/token"
)

// Statement is one parsed element of a program.
type Statement interface {
	Loc() token.Location
	String() string
}

// Label names a jump target. A name starting with '.' is local to the
// nearest preceding global label; resolving that scope is the consumer's
// concern, only the flag is produced here.
type Label struct {
	Pos  token.Location
	Name string
}

// Local reports whether the label is scoped to a preceding global label.
func (l *Label) Local() bool {
	return strings.HasPrefix(l.Name, ".")
}

func (l *Label) Loc() token.Location { return l.Pos }
func (l *Label) String() string      { return l.Name + ":" }

// Comment is a standalone comment line.
type Comment struct {
	Pos  token.Location
	Text string
}

func (c *Comment) Loc() token.Location { return c.Pos }
func (c *Comment) String() string      { return ";" + c.Text }

// Operation is one validated instruction: opcode, explicit size (SizeUnsized
// when the source had no suffix), and parsed operands.
type Operation struct {
	Pos      token.Location
	Opcode   string
	Size     Size
	Operands []Operand
}

func (o *Operation) Loc() token.Location { return o.Pos }

func (o *Operation) String() string {
	var b strings.Builder
	b.WriteString(o.Opcode)
	if o.Size != SizeUnsized {
		fmt.Fprintf(&b, ".%s", o.Size)
	}
	for i, op := range o.Operands {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(op.String())
	}
	return b.String()
}

// Program is an ordered statement sequence plus the label map. Each mapped
// label points at the index of the operation statement that follows it;
// labels never followed by an operation are reported during parsing and do
// not appear here.
type Program struct {
	Statements []Statement
	Labels     map[*Label]int
}

// Target returns the statement a label jumps to.
func (p *Program) Target(l *Label) (Statement, bool) {
	i, ok := p.Labels[l]
	if !ok || i < 0 || i >= len(p.Statements) {
		return nil, false
	}
	return p.Statements[i], true
}
