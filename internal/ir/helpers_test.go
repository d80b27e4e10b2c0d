package ir_test

import (
	"testing"

	"unfmt/internal/lexer"
	"unfmt/internal/source"
	"unfmt/internal/token"
)

func lexString(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	toks, err := lexer.Lex(fs.Get(fs.AddVirtual("test.rs", []byte(src))))
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	return toks
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func posOf(t *testing.T, toks []token.Token, text string, nth int) source.LineCol {
	t.Helper()
	seen := 0
	for _, tok := range toks {
		if tok.Text == text {
			if seen == nth {
				return tok.Pos
			}
			seen++
		}
	}
	t.Fatalf("token %q #%d not found", text, nth)
	return source.LineCol{}
}
