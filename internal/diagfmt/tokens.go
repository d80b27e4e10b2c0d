package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"unfmt/internal/token"
)

// TokenOutput is one token of the JSON token dump.
type TokenOutput struct {
	Kind     string   `json:"kind"`
	Text     string   `json:"text"`
	Line     uint32   `json:"line"`
	Col      uint32   `json:"col"`
	Affinity string   `json:"affinity"`
	Leading  []string `json:"leading,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	out := make([]string, 0, len(tok.Leading))
	for _, trivia := range tok.Leading {
		out = append(out, trivia.Kind.String())
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d: %-14s %-5s %-8s %q", i+1, tok.Kind, tok.Affinity(), tok.Pos, tok.Text); err != nil {
			return err
		}
		if leading := leadingKinds(tok); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Line:     tok.Pos.Line,
			Col:      tok.Pos.Col,
			Affinity: tok.Affinity().String(),
			Leading:  leadingKinds(tok),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
