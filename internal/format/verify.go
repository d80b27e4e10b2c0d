package format

import (
	"fmt"
	"sync"

	"unfmt/internal/ir"
	"unfmt/internal/lexer"
	"unfmt/internal/source"
	"unfmt/internal/token"
)

// junkTokens: каждый seed из ir.JunkSeeds, уже разбитый лексером.
var junkTokens = sync.OnceValue(func() [][]token.Token {
	seeds := ir.JunkSeeds()
	out := make([][]token.Token, 0, len(seeds))
	for _, seed := range seeds {
		toks, err := lexBytes("junk.rs", []byte(seed))
		if err != nil {
			panic(fmt.Sprintf("format: junk seed %q does not lex: %v", seed, err))
		}
		out = append(out, toks)
	}
	return out
})

func lexBytes(name string, src []byte) ([]token.Token, error) {
	fs := source.NewFileSet()
	return lexer.Lex(fs.Get(fs.AddVirtual(name, src)))
}

// sameTokens checks that out carries the tokens of src in order and that
// every extra token belongs to a parenthesis or to a junk statement.
// Comments and whitespace are trivia and never reach this check.
func sameTokens(src, out []byte) error {
	want, err := lexBytes("input.rs", src)
	if err != nil {
		return fmt.Errorf("lex input: %w", err)
	}
	got, err := lexBytes("output.rs", out)
	if err != nil {
		return fmt.Errorf("lex output: %w", err)
	}

	m := tokenMatcher{want: want, got: got, junk: junkTokens(), failed: make(map[[2]int]struct{})}
	if m.match(0, 0) {
		return nil
	}
	if m.far < len(got) {
		tok := got[m.far]
		return fmt.Errorf("unexpected token %q at %s of the output", tok.Text, tok.Pos)
	}
	return fmt.Errorf("output is missing %d input tokens", len(want)-m.longest)
}

// tokenMatcher aligns the input tokens against the output tokens. An output
// token either matches the next input token, or is an inserted parenthesis,
// or starts an inserted junk statement. Alignment is ambiguous around parens
// and semicolons, so it backtracks; failed (input, output) positions are
// remembered to keep it linear in practice.
type tokenMatcher struct {
	want, got []token.Token
	junk      [][]token.Token
	failed    map[[2]int]struct{}
	far       int // самая дальняя позиция в got
	longest   int // сколько входных токенов удалось сопоставить
}

func (m *tokenMatcher) match(i, j int) bool {
	m.far = max(m.far, j)
	m.longest = max(m.longest, i)
	if j == len(m.got) {
		return i == len(m.want)
	}
	key := [2]int{i, j}
	if _, ok := m.failed[key]; ok {
		return false
	}

	g := m.got[j]
	if i < len(m.want) && sameToken(m.want[i], g) && m.match(i+1, j+1) {
		return true
	}
	if (g.Kind == token.LParen || g.Kind == token.RParen) && m.match(i, j+1) {
		return true
	}
	for _, seed := range m.junk {
		if m.junkAt(j, seed) && m.match(i, j+len(seed)) {
			return true
		}
	}
	m.failed[key] = struct{}{}
	return false
}

func (m *tokenMatcher) junkAt(j int, seed []token.Token) bool {
	if j+len(seed) > len(m.got) {
		return false
	}
	for k, tok := range seed {
		if !sameToken(tok, m.got[j+k]) {
			return false
		}
	}
	return true
}

func sameToken(a, b token.Token) bool {
	return a.Kind == b.Kind && a.Text == b.Text
}
