package parser

import (
	"strconv"
	"strings"

	"asm68k/report"
	"asm68k/token"
)

// cursor is the per-line parsing state: the line's remaining tokens and a
// position into them. Each line gets a fresh instance.
type cursor struct {
	toks []token.Token
	pos  int
}

func (c *cursor) more() bool {
	return c.pos < len(c.toks)
}

func (c *cursor) peek() (token.Token, bool) {
	if !c.more() {
		return token.Token{}, false
	}
	return c.toks[c.pos], true
}

// peekType reports whether the next token has the given type.
func (c *cursor) peekType(t token.Type) bool {
	tok, ok := c.peek()
	return ok && tok.Type == t
}

func (c *cursor) next() (token.Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// loc is the position of the next token, or of the line's last token once
// the cursor is exhausted.
func (c *cursor) loc() token.Location {
	if c.more() {
		return c.toks[c.pos].Pos
	}
	if len(c.toks) > 0 {
		return c.toks[len(c.toks)-1].Pos
	}
	return token.None
}

// expect consumes one token of the given type or fails with a diagnostic
// naming what was expected and what was actually found.
func (c *cursor) expect(t token.Type) (token.Token, error) {
	tok, ok := c.peek()
	if !ok {
		return token.Token{}, report.Errorf(c.loc(), "expected %s, found end of line", t)
	}
	if tok.Type != t {
		return token.Token{}, report.Errorf(tok.Pos, "expected %s, found %s", t, tok)
	}
	c.pos++
	return tok, nil
}

// parseInteger converts a numeric token's text, honoring the $ (hex),
// % (binary) and 0x prefixes.
func parseInteger(text string) (int64, error) {
	s := text
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		s = s[2:]
		base = 16
	case strings.HasPrefix(s, "%"):
		s = s[1:]
		base = 2
	}

	val, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		val = -val
	}
	return val, nil
}
