// Package token defines the located lexemes exchanged between the lexer and
// the parser.
package token

import "fmt"

// Location is a position in the source text. Line and Column are 1-based.
type Location struct {
	Line   int
	Column int
}

// None marks synthesized nodes with no source position.
var None = Location{Line: -1, Column: -1}

// IsValid reports whether the location points into real source.
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}

func (l Location) String() string {
	if !l.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Type classifies a token.
type Type int

const (
	Identifier Type = iota
	Number
	Dot
	Colon
	Comma
	LeftParen
	RightParen
	Plus
	Minus
	Hash
	Comment
)

var typeNames = map[Type]string{
	Identifier: "identifier",
	Number:     "number",
	Dot:        "'.'",
	Colon:      "':'",
	Comma:      "','",
	LeftParen:  "'('",
	RightParen: "')'",
	Plus:       "'+'",
	Minus:      "'-'",
	Hash:       "'#'",
	Comment:    "comment",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is one classified lexeme with its source position.
type Token struct {
	Type Type
	Text string
	Pos  Location
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type, t.Text)
}

// SplitLines groups a whole-file token stream by source line, preserving
// token order. Lines with no tokens produce no group.
func SplitLines(toks []Token) [][]Token {
	var lines [][]Token
	start := 0
	for i := 1; i <= len(toks); i++ {
		if i == len(toks) || toks[i].Pos.Line != toks[start].Pos.Line {
			lines = append(lines, toks[start:i])
			start = i
		}
	}
	return lines
}
