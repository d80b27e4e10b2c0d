package lexer

import (
	"bytes"

	"unfmt/internal/source"
	"unfmt/internal/token"
)

// StripDocComments returns a copy of src with every doc comment (///, //!, /** */, /*! */)
// replaced by spaces. Newlines inside block doc comments are kept, so every other
// byte keeps its line and column. Doc comments are attributes in Rust; dropping them
// leaves the program meaning intact and lets the lexer and the parser agree on the
// token stream. The second result reports whether anything was blanked.
//
// Uses the lexer's own comment scanner: "///" inside string literals is never touched.
func StripDocComments(src []byte) ([]byte, bool) {
	if !bytes.Contains(src, []byte("//")) && !bytes.Contains(src, []byte("/*")) {
		return src, false
	}

	file := &source.File{Content: src, Flags: source.FileVirtual}
	lx := New(file, Options{KeepTrivia: true})

	var out []byte
	for {
		tok := lx.Next()
		for _, tv := range tok.Leading {
			if !tv.IsDoc() {
				continue
			}
			if out == nil {
				out = bytes.Clone(src)
			}
			blank(out[tv.Span.Start:tv.Span.End])
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	if out == nil {
		return src, false
	}
	return out, true
}

func blank(b []byte) {
	for i := range b {
		if b[i] != '\n' {
			b[i] = ' '
		}
	}
}
