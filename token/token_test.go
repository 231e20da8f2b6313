package token_test

import (
	"testing"

	"asm68k/token"
)

func tok(t token.Type, text string, line, col int) token.Token {
	return token.Token{Type: t, Text: text, Pos: token.Location{Line: line, Column: col}}
}

func TestSplitLines(t *testing.T) {
	toks := []token.Token{
		tok(token.Identifier, "start", 1, 1),
		tok(token.Colon, ":", 1, 6),
		tok(token.Identifier, "NOP", 2, 2),
		tok(token.Identifier, "RTS", 4, 2),
	}
	lines := token.SplitLines(toks)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if len(lines[0]) != 2 || len(lines[1]) != 1 || len(lines[2]) != 1 {
		t.Fatalf("unexpected grouping: %v", lines)
	}
	if lines[2][0].Text != "RTS" {
		t.Errorf("expected RTS on last line, got %s", lines[2][0])
	}
}

func TestLocationValidity(t *testing.T) {
	if token.None.IsValid() {
		t.Error("None must be invalid")
	}
	if !(token.Location{Line: 1, Column: 1}).IsValid() {
		t.Error("1:1 must be valid")
	}
	if got := (token.Location{Line: 3, Column: 5}).String(); got != "3:5" {
		t.Errorf("expected 3:5, got %s", got)
	}
}
