package lexer_test

import (
	"testing"

	"asm68k/lexer"
	"asm68k/report"
	"asm68k/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	var rep report.Collector
	toks := lexer.Scan(src, &rep)
	if rep.HasErrors() {
		t.Fatalf("unexpected scan errors for %q: %v", src, rep.Errors()[0])
	}
	return toks
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Type
	}{
		{"NOT.W D3", []token.Type{token.Identifier, token.Dot, token.Identifier, token.Identifier}},
		{"loop:", []token.Type{token.Identifier, token.Colon}},
		{".loop:", []token.Type{token.Dot, token.Identifier, token.Colon}},
		{"-(A2)", []token.Type{token.Minus, token.LeftParen, token.Identifier, token.RightParen}},
		{"(A2)+", []token.Type{token.LeftParen, token.Identifier, token.RightParen, token.Plus}},
		{"-5(A3,D2.W)", []token.Type{
			token.Number, token.LeftParen, token.Identifier, token.Comma,
			token.Identifier, token.Dot, token.Identifier, token.RightParen,
		}},
		{"#$FF", []token.Type{token.Hash, token.Number}},
		{"#-8", []token.Type{token.Hash, token.Number}},
		{"nop ; done", []token.Type{token.Identifier, token.Comment}},
	}
	for _, tc := range tests {
		toks := scan(t, tc.src)
		if len(toks) != len(tc.want) {
			t.Errorf("%q: expected %d tokens, got %d: %v", tc.src, len(tc.want), len(toks), toks)
			continue
		}
		for i, w := range tc.want {
			if toks[i].Type != w {
				t.Errorf("%q token %d: expected %s, got %s", tc.src, i, w, toks[i])
			}
		}
	}
}

func TestNumberTexts(t *testing.T) {
	toks := scan(t, "#$FF #-8 #%101 #0x10")
	want := []string{"$FF", "-8", "%101", "0x10"}
	var got []string
	for _, tok := range toks {
		if tok.Type == token.Number {
			got = append(got, tok.Text)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d numbers, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("number %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLocations(t *testing.T) {
	toks := scan(t, "nop\n  rts")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %v", toks)
	}
	if toks[0].Pos != (token.Location{Line: 1, Column: 1}) {
		t.Errorf("nop at %s, expected 1:1", toks[0].Pos)
	}
	if toks[1].Pos != (token.Location{Line: 2, Column: 3}) {
		t.Errorf("rts at %s, expected 2:3", toks[1].Pos)
	}
}

func TestStarComment(t *testing.T) {
	toks := scan(t, "* full line comment\nnop")
	if len(toks) != 2 || toks[0].Type != token.Comment {
		t.Fatalf("expected comment then nop, got %v", toks)
	}
}

func TestUnknownCharacter(t *testing.T) {
	var rep report.Collector
	toks := lexer.Scan("nop @ rts", &rep)
	if rep.Len() != 1 {
		t.Fatalf("expected 1 error, got %d", rep.Len())
	}
	if len(toks) != 2 {
		t.Errorf("expected scanning to continue past the bad character, got %v", toks)
	}
}
