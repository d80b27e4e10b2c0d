package testkit

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"

	"unfmt/internal/lexer"
	"unfmt/internal/source"
	"unfmt/internal/token"
)

// CheckLineInvariants runs the output invariants of an unformatted file:
// 1) output is newline-terminated
// 2) every line is at most width columns wide
// 3) a wider line holds exactly one token (unsplittable) or one glued
// pair such as $name or macro_rules!
// Multi-line tokens (strings with raw newlines) are not supported here.
func CheckLineInvariants(out []byte, width int) error {
	if len(out) == 0 {
		return nil
	}
	if out[len(out)-1] != '\n' {
		return fmt.Errorf("output is not newline-terminated")
	}

	lines := bytes.Split(out[:len(out)-1], []byte{'\n'})
	for i, line := range lines {
		w := runewidth.StringWidth(string(line))
		if w <= width {
			continue
		}
		num, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return fmt.Errorf("line number overflow: %w", err)
		}
		fs := source.NewFileSet()
		toks, err := lexer.Lex(fs.Get(fs.AddVirtual("line.rs", line)))
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		if len(toks) != 1 && !gluedPair(toks) {
			return fmt.Errorf("line %d is %d columns wide (limit %d) with %d tokens: %q", num, w, width, len(toks), line)
		}
	}
	return nil
}

func gluedPair(toks []token.Token) bool {
	if len(toks) != 2 {
		return false
	}
	if toks[0].Kind == token.Dollar {
		return toks[1].Kind.Affinity() == token.Repel
	}
	return toks[0].Text == "macro_rules" && toks[1].Kind == token.Bang
}

// LineWidths returns the display width of every line of out.
func LineWidths(out []byte) []int {
	out = bytes.TrimSuffix(out, []byte{'\n'})
	if len(out) == 0 {
		return nil
	}
	lines := bytes.Split(out, []byte{'\n'})
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = runewidth.StringWidth(string(line))
	}
	return widths
}
