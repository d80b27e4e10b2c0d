package lexer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"unfmt/internal/diag"
	"unfmt/internal/lexer"
	"unfmt/internal/source"
	"unfmt/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

// collectAllTokens собирает все токены до EOF (EOF не включается)
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func texts(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// expectTexts проверяет разбиение входа на токены по тексту
func expectTexts(t *testing.T, input string, want ...string) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if diff := cmp.Diff(want, texts(tokens)); diff != "" {
		t.Fatalf("input %q: token texts mismatch (-want +got):\n%s\nerrors: %v", input, diff, reporter.ErrorMessages())
	}
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("input %q: unexpected diagnostics %v", input, reporter.ErrorMessages())
	}
	return tokens
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, kind token.Kind) {
	t.Helper()
	tokens := expectTexts(t, input, input)
	if tokens[0].Kind != kind {
		t.Fatalf("input %q: kind %v, want %v", input, tokens[0].Kind, kind)
	}
}

// ====== идентификаторы ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"foo", token.Ident},
		{"_bar", token.Ident},
		{"x123", token.Ident},
		{"Self", token.KwSelfType},
		{"self", token.KwSelfValue},
		{"r#match", token.RawIdent},
		{"r#foo_bar", token.RawIdent},
		{"_", token.Underscore},
		{"привет", token.Ident},
		{"union", token.Ident},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind)
		})
	}
}

// ====== lifetimes и char ======

func TestLifetimeVersusChar(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
		texts []string
	}{
		{"'a", []token.Kind{token.Lifetime}, []string{"'a"}},
		{"'static", []token.Kind{token.Lifetime}, []string{"'static"}},
		{"'a'", []token.Kind{token.CharLit}, []string{"'a'"}},
		{"'\\n'", []token.Kind{token.CharLit}, []string{"'\\n'"}},
		{"'\\''", []token.Kind{token.CharLit}, []string{"'\\''"}},
		{"'é'", []token.Kind{token.CharLit}, []string{"'é'"}},
		{"'('", []token.Kind{token.CharLit}, []string{"'('"}},
		{"&'a str", []token.Kind{token.Amp, token.Lifetime, token.Ident}, []string{"&", "'a", "str"}},
		{"'outer: loop", []token.Kind{token.Lifetime, token.Colon, token.KwLoop}, []string{"'outer", ":", "loop"}},
		{"b'x'", []token.Kind{token.ByteLit}, []string{"b'x'"}},
		{"b'\\x7f'", []token.Kind{token.ByteLit}, []string{"b'\\x7f'"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := expectTexts(t, tt.input, tt.texts...)
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d (%q): kind %v, want %v", i, tok.Text, tok.Kind, tt.kinds[i])
				}
			}
		})
	}
}

// ====== строки ======

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{`"hello"`, token.StringLit},
		{`"say \"hi\""`, token.StringLit},
		{`"back\\"`, token.StringLit},
		{"\"multi\nline\"", token.StringLit},
		{`b"bytes"`, token.ByteStringLit},
		{`c"cstr"`, token.CStringLit},
		{`r"raw \ string"`, token.RawStringLit},
		{`r#"has "quotes""#`, token.RawStringLit},
		{`r##"a "# inside"##`, token.RawStringLit},
		{`br#"raw bytes"#`, token.RawStringLit},
		{`cr"raw c"`, token.RawStringLit},
		{`"suffixed"sfx`, token.StringLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind)
		})
	}
}

func TestString_CommentInsideIsNotTrivia(t *testing.T) {
	expectTexts(t, `let s = "// not a comment /* nor this";`,
		"let", "s", "=", `"// not a comment /* nor this"`, ";")
}

func TestString_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer(`"never closed`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected LexUnterminatedString, got %v", reporter.ErrorMessages())
	}
}

// ====== числа ======

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"1_000_000", token.IntLit},
		{"0xFF_u8", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o777", token.IntLit},
		{"42usize", token.IntLit},
		{"1.5", token.FloatLit},
		{"1.", token.FloatLit},
		{"1e10", token.FloatLit},
		{"2.5E-3", token.FloatLit},
		{"1e+5f64", token.FloatLit},
		{"3f32", token.IntLit},
		{"0xE", token.IntLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind)
		})
	}
}

func TestNumbers_DotDisambiguation(t *testing.T) {
	expectTexts(t, "1..2", "1", "..", "2")
	expectTexts(t, "0..=9", "0", "..=", "9")
	expectTexts(t, "1.max(2)", "1", ".", "max", "(", "2", ")")
	expectTexts(t, "t.0", "t", ".", "0")
	expectTexts(t, "x.0.1", "x", ".", "0.1")
	expectTexts(t, "(1.)", "(", "1.", ")")
}

// ====== операторы ======

func TestOperators_Greedy(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a..=b", []string{"a", "..=", "b"}},
		{"f(...)", []string{"f", "(", "...", ")"}},
		{"a::b", []string{"a", "::", "b"}},
		{"fn f()->u8", []string{"fn", "f", "(", ")", "->", "u8"}},
		{"x=>y", []string{"x", "=>", "y"}},
		{"a>>=1", []string{"a", ">>=", "1"}},
		{"a<<=1", []string{"a", "<<=", "1"}},
		{"a>>1", []string{"a", ">>", "1"}},
		{"a&&b||c", []string{"a", "&&", "b", "||", "c"}},
		{"a^=b", []string{"a", "^=", "b"}},
		{"a|=b", []string{"a", "|=", "b"}},
		{"!=", []string{"!="}},
		{"<==", []string{"<=", "="}},
		{"#![no_std]", []string{"#", "!", "[", "no_std", "]"}},
		{"$x:expr", []string{"$", "x", ":", "expr"}},
		{"~", []string{"~"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTexts(t, tt.input, tt.want...)
		})
	}
}

func TestOperators_KindsArePunct(t *testing.T) {
	lx, _ := makeTestLexer("+ - * / % ^ ! & | && || << >> += -= *= /= %= ^= &= |= <<= >>= = == != > < >= <= @ . .. ... ..= , ; : :: -> => # $ ? ~ ( ) { } [ ]")
	for _, tok := range collectAllTokens(lx) {
		if !tok.IsPunctOrOp() {
			t.Errorf("%q lexed as %v, want punctuation", tok.Text, tok.Kind)
		}
		if tok.Affinity() != token.Tight {
			t.Errorf("%q must be Tight", tok.Text)
		}
	}
}

// ====== trivia ======

func TestTrivia_CommentsDropped(t *testing.T) {
	expectTexts(t, "a // line\n/* block /* nested */ still */ b /** doc */ c //! inner\n/// outer\nd",
		"a", "b", "c", "d")
}

func TestTrivia_KeepTrivia(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.rs", []byte("/// doc\n//// plain\n/**/ /*! inner */ fn")))
	lx := lexer.New(file, lexer.Options{KeepTrivia: true})
	tok := lx.Next()
	if tok.Kind != token.KwFn {
		t.Fatalf("expected fn, got %v", tok.Kind)
	}
	var kinds []token.TriviaKind
	for _, tv := range tok.Leading {
		if tv.Kind == token.TriviaSpace || tv.Kind == token.TriviaNewline {
			continue
		}
		kinds = append(kinds, tv.Kind)
	}
	want := []token.TriviaKind{token.TriviaDocLine, token.TriviaLineComment, token.TriviaBlockComment, token.TriviaDocBlock}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("trivia kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTrivia_UnicodeWhitespace(t *testing.T) {
	expectTexts(t, "a\u2028b\u200e\u0085c", "a", "b", "c")
}

func TestTrivia_Shebang(t *testing.T) {
	expectTexts(t, "#!/usr/bin/env run-cargo-script\nfn main(){}", "fn", "main", "(", ")", "{", "}")
	expectTexts(t, "#![allow(dead_code)]", "#", "!", "[", "allow", "(", "dead_code", ")", "]")
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("a /* open /* nested */")
	collectAllTokens(lx)
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected unterminated block comment, got %v", reporter.ErrorMessages())
	}
}

// ====== позиции ======

func TestPositions(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("pos.rs", []byte("fn main() {\n    let x = 1;\n}\n")))
	tokens, err := lexer.Lex(file)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	want := map[string]source.LineCol{
		"fn":   {Line: 1, Col: 1},
		"main": {Line: 1, Col: 4},
		"let":  {Line: 2, Col: 5},
		"x":    {Line: 2, Col: 9},
		"1":    {Line: 2, Col: 13},
		"}":    {Line: 3, Col: 1},
	}
	for _, tok := range tokens {
		if pos, ok := want[tok.Text]; ok && tok.Pos != pos {
			t.Errorf("%q at %v, want %v", tok.Text, tok.Pos, pos)
		}
	}
}

// ====== Lex ======

func TestLex_UnknownCharacter(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bad.rs", []byte("let a = 1;\nlet b = €;")))
	tokens, err := lexer.Lex(file)
	if !errors.Is(err, lexer.ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "2:9:") {
		t.Fatalf("error should carry the position, got %q", err)
	}
	if len(tokens) == 0 || tokens[0].Text != "let" {
		t.Fatalf("tokens before the error must be kept, got %v", texts(tokens))
	}
}

func TestLex_Unterminated(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bad.rs", []byte("let c = 'x")))
	if _, err := lexer.Lex(file); !errors.Is(err, lexer.ErrUnterminated) {
		t.Fatalf("expected ErrUnterminated, got %v", err)
	}
}

func TestLexer_PeekBehavior(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next after Peek = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second Next = %q", n.Text)
	}
	for range 3 {
		if n := lx.Next(); n.Kind != token.EOF {
			t.Fatalf("expected sticky EOF, got %v", n.Kind)
		}
	}
}
