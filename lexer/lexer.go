// Package lexer turns M68k assembly source into a stream of located tokens.
package lexer

import (
	"asm68k/report"
	"asm68k/token"
)

type lexer struct {
	src  string
	pos  int
	line int
	col  int
	rep  *report.Collector
	toks []token.Token
}

// Scan tokenizes src. Unknown characters are reported through rep and
// skipped; scanning always continues to end of input.
func Scan(src string, rep *report.Collector) []token.Token {
	l := &lexer{src: src, line: 1, col: 1, rep: rep}
	l.run()
	return l.toks
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *lexer) advance() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) here() token.Location {
	return token.Location{Line: l.line, Column: l.col}
}

func (l *lexer) emit(t token.Type, text string, pos token.Location) {
	l.toks = append(l.toks, token.Token{Type: t, Text: text, Pos: pos})
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isNumberChar(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

// numberStart reports whether the character opens a numeric literal.
func numberStart(ch byte) bool {
	return isDigit(ch) || ch == '$' || ch == '%'
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.advance()

		case ch == ';':
			l.scanComment(1)

		case ch == '*' && l.col == 1:
			l.scanComment(1)

		case ch == '-' && numberStart(l.peekAt(1)):
			l.scanNumber()

		case numberStart(ch):
			l.scanNumber()

		case isLetter(ch):
			l.scanIdentifier()

		default:
			pos := l.here()
			var t token.Type
			switch ch {
			case '.':
				t = token.Dot
			case ':':
				t = token.Colon
			case ',':
				t = token.Comma
			case '(':
				t = token.LeftParen
			case ')':
				t = token.RightParen
			case '+':
				t = token.Plus
			case '-':
				t = token.Minus
			case '#':
				t = token.Hash
			default:
				l.rep.Errorf(pos, "unexpected character %q", string(ch))
				l.advance()
				continue
			}
			l.advance()
			l.emit(t, string(ch), pos)
		}
	}
}

// scanComment consumes to end of line, dropping the first skip characters
// (the ';' or '*' marker) from the token text.
func (l *lexer) scanComment(skip int) {
	pos := l.here()
	start := l.pos
	for l.peek() != '\n' && l.peek() != 0 {
		l.advance()
	}
	l.emit(token.Comment, l.src[start+skip:l.pos], pos)
}

// scanNumber consumes a numeric literal, keeping any sign and radix prefix in
// the token text. Radix conversion happens in the parser.
func (l *lexer) scanNumber() {
	pos := l.here()
	start := l.pos
	if l.peek() == '-' {
		l.advance()
	}
	if l.peek() == '$' || l.peek() == '%' {
		l.advance()
	} else if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.advance()
		l.advance()
	}
	for isNumberChar(l.peek()) {
		l.advance()
	}
	l.emit(token.Number, l.src[start:l.pos], pos)
}

func (l *lexer) scanIdentifier() {
	pos := l.here()
	start := l.pos
	for isIdentChar(l.peek()) {
		l.advance()
	}
	l.emit(token.Identifier, l.src[start:l.pos], pos)
}
