package token

import (
	"unfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Pos     source.LineCol
	Text    string
	Leading []Trivia
}

// Affinity describes how a token behaves next to a neighbour with no whitespace between them.
type Affinity uint8

const (
	// Repel tokens fuse with an adjacent Repel token (a b -> ab) and need a separator.
	Repel Affinity = iota
	// Tight tokens may abut anything except the explicit dangerous pairs.
	Tight
)

func (a Affinity) String() string {
	if a == Repel {
		return "Repel"
	}
	return "Tight"
}

// Affinity classifies a kind: identifiers, keywords, '_', lifetimes and literals repel,
// punctuation is tight.
func (k Kind) Affinity() Affinity {
	if k.IsPunct() {
		return Tight
	}
	return Repel
}

// Affinity returns the token's fusion affinity.
func (t Token) Affinity() Affinity { return t.Kind.Affinity() }

// IsLiteral reports whether the token is a numeric, boolean, char, or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunct() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier (raw identifiers included).
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == RawIdent }
