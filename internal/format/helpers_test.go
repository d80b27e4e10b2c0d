package format_test

import (
	"testing"

	"unfmt/internal/format"
	"unfmt/internal/ir"
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

func tok(kind token.Kind, text string) ir.RichToken {
	return ir.NewTok(token.Token{Kind: kind, Text: text})
}

func ident(text string) ir.RichToken { return tok(token.Ident, text) }

func open(id int) ir.RichToken { return ir.RichToken{Kind: ir.ExprOpen, ID: id} }

func closing(id int) ir.RichToken { return ir.RichToken{Kind: ir.ExprClose, ID: id} }

func rendered(blocks []format.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = string(b.Bytes())
	}
	return out
}
