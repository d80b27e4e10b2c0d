package format_test

import (
	"testing"

	"unfmt/internal/format"
	"unfmt/internal/ir"
	"unfmt/internal/token"
)

func TestJustify(t *testing.T) {
	tests := []struct {
		name  string
		block format.Block
		width int
		want  string
	}{
		{
			name:  "redundant parentheses",
			block: format.Block{open(0), ident("a"), tok(token.Plus, "+"), ident("b"), closing(0)},
			width: 7,
			want:  "((a+b))",
		},
		{
			name:  "junk remainder goes left",
			block: format.Block{ir.NewJunk(0), ident("x"), ir.NewJunk(0)},
			width: 6,
			want:  "();x3;",
		},
		{
			name:  "junk before parentheses",
			block: format.Block{ir.NewJunk(0), open(0), ident("a"), closing(0)},
			width: 5,
			want:  "{;};a",
		},
		{
			name:  "odd remainder becomes a space",
			block: format.Block{open(0), ident("a"), closing(0)},
			width: 4,
			want:  "( a)",
		},
		{
			name:  "trailing comment",
			block: format.Block{ident("a")},
			width: 10,
			want:  "a//*&*&();",
		},
		{
			name:  "bare comment for deficit two",
			block: format.Block{ident("a")},
			width: 3,
			want:  "a//",
		},
		{
			name:  "no comment after slash",
			block: format.Block{ident("a"), tok(token.Slash, "/")},
			width: 10,
			want:  "a/",
		},
		{
			name:  "no comment after dollar",
			block: format.Block{ident("a"), tok(token.Dollar, "$")},
			width: 10,
			want:  "a$",
		},
		{
			name:  "odd space keeps metavariable whole",
			block: format.Block{ident("a"), tok(token.Dollar, "$"), ident("x"), tok(token.Colon, ":")},
			width: 5,
			want:  "a $x:",
		},
		{
			name:  "odd space keeps macro_rules whole",
			block: format.Block{ident("macro_rules"), tok(token.Bang, "!")},
			width: 13,
			want:  " macro_rules!",
		},
		{
			name:  "too wide stays as is",
			block: format.Block{ident("abcdef")},
			width: 3,
			want:  "abcdef",
		},
		{
			name:  "edge spacers stripped",
			block: format.Block{ir.NewSpacer(), ident("a"), ir.NewSpacer()},
			width: 1,
			want:  "a",
		},
		{
			name:  "unmatched markers are not grown",
			block: format.Block{closing(3), ident("a"), open(4)},
			width: 5,
			want:  "a//3;",
		},
		{
			name:  "pairs share round-robin",
			block: format.Block{open(0), open(1), ident("a"), closing(1), tok(token.Plus, "+"), ident("b"), closing(0)},
			width: 9,
			want:  "(((a)+b))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format.Justify(tt.block, tt.width)
			if s := string(got.Bytes()); s != tt.want {
				t.Fatalf("Justify = %q, want %q", s, tt.want)
			}
		})
	}
}

func TestJustifyJunkCap(t *testing.T) {
	got := format.Justify(format.Block{ir.NewJunk(0)}, 200)
	if got[0].N != ir.MaxJunk {
		t.Fatalf("junk grew to %d, want %d", got[0].N, ir.MaxJunk)
	}
	last := got[len(got)-1]
	if last.Kind != ir.Comment || last.N != ir.MaxJunk {
		t.Fatalf("expected a capped comment, got %v", last)
	}
	if w := got.Width(); w != ir.MaxJunk+2+ir.MaxJunk {
		t.Fatalf("width %d", w)
	}
}

func TestJustifyReachesWidth(t *testing.T) {
	stream := ir.Separate(lexString(t, "let value = compute(alpha, beta) + gamma;"))
	for width := 1; width <= 60; width++ {
		for _, b := range format.Pack(stream, width) {
			tokens := ir.IR(b).Count(ir.Tok)
			got := format.Justify(b, width)
			w := got.Width()
			if w > width && tokens != 1 {
				t.Fatalf("width %d: line %q exceeds", width, got.Bytes())
			}
			if ir.IR(got).Count(ir.Tok) != tokens {
				t.Fatalf("width %d: tokens changed in %q", width, got.Bytes())
			}
		}
	}
}
