package ir

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"unfmt/internal/token"
)

// Kind discriminates RichToken variants.
type Kind uint8

const (
	// Tok wraps a real source token.
	Tok Kind = iota
	// Spacer is a single mandatory space.
	Spacer
	// Junk is a statement-position no-op, JunkTable[N].
	Junk
	// ExprOpen renders Reps opening parentheses.
	ExprOpen
	// ExprClose renders Reps closing parentheses.
	ExprClose
	// Comment is a trailing line comment, "//" + JunkTable[N].
	Comment
)

var kindNames = [...]string{
	Tok:       "Tok",
	Spacer:    "Spacer",
	Junk:      "Junk",
	ExprOpen:  "ExprOpen",
	ExprClose: "ExprClose",
	Comment:   "Comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// RichToken is one element of the IR. Only the fields relevant to Kind are set.
type RichToken struct {
	Kind  Kind
	Token token.Token // Tok
	N     int         // Junk, Comment: индекс в JunkTable
	ID    int         // ExprOpen, ExprClose
	Reps  int         // ExprOpen, ExprClose
}

// IR is the whole file as an ordered stream of rich tokens.
type IR []RichToken

// NewTok wraps a source token.
func NewTok(tok token.Token) RichToken { return RichToken{Kind: Tok, Token: tok} }

// NewSpacer returns a spacer element.
func NewSpacer() RichToken { return RichToken{Kind: Spacer} }

// NewJunk returns a junk placeholder rendering JunkTable[n].
func NewJunk(n int) RichToken { return RichToken{Kind: Junk, N: n} }

// NewComment returns a trailing comment with filler JunkTable[n].
func NewComment(n int) RichToken { return RichToken{Kind: Comment, N: n} }

// Text renders the element.
func (rt RichToken) Text() string {
	switch rt.Kind {
	case Tok:
		return rt.Token.Text
	case Spacer:
		return " "
	case Junk:
		return JunkTable[rt.N]
	case ExprOpen:
		return strings.Repeat("(", rt.Reps)
	case ExprClose:
		return strings.Repeat(")", rt.Reps)
	case Comment:
		return "//" + JunkTable[rt.N]
	default:
		panic(fmt.Sprintf("ir: unknown rich token kind %d", rt.Kind))
	}
}

// AppendTo appends the rendered element to dst without intermediate strings
// for the repeated parentheses.
func (rt RichToken) AppendTo(dst []byte) []byte {
	switch rt.Kind {
	case ExprOpen:
		for range rt.Reps {
			dst = append(dst, '(')
		}
		return dst
	case ExprClose:
		for range rt.Reps {
			dst = append(dst, ')')
		}
		return dst
	default:
		return append(dst, rt.Text()...)
	}
}

// Width is the display width of the rendered element. Everything except real
// tokens is ASCII, so only Tok goes through runewidth.
func (rt RichToken) Width() int {
	switch rt.Kind {
	case Tok:
		return runewidth.StringWidth(rt.Token.Text)
	case Spacer:
		return 1
	case Junk:
		return len(JunkTable[rt.N])
	case ExprOpen, ExprClose:
		return rt.Reps
	case Comment:
		return 2 + len(JunkTable[rt.N])
	default:
		return 0
	}
}

// IsTok reports whether the element is a real source token.
func (rt RichToken) IsTok() bool { return rt.Kind == Tok }

func (rt RichToken) String() string {
	switch rt.Kind {
	case Tok:
		return fmt.Sprintf("Tok(%s %q @%s)", rt.Token.Kind, rt.Token.Text, rt.Token.Pos)
	case Junk, Comment:
		return fmt.Sprintf("%s(%d)", rt.Kind, rt.N)
	case ExprOpen, ExprClose:
		return fmt.Sprintf("%s{id: %d, reps: %d}", rt.Kind, rt.ID, rt.Reps)
	default:
		return rt.Kind.String()
	}
}

// Width sums the widths of all elements.
func (r IR) Width() int {
	w := 0
	for _, rt := range r {
		w += rt.Width()
	}
	return w
}

// Bytes renders the stream with no line breaks.
func (r IR) Bytes() []byte {
	out := make([]byte, 0, r.Width())
	for _, rt := range r {
		out = rt.AppendTo(out)
	}
	return out
}

// Tokens returns the real source tokens in order.
func (r IR) Tokens() []token.Token {
	out := make([]token.Token, 0, len(r))
	for _, rt := range r {
		if rt.Kind == Tok {
			out = append(out, rt.Token)
		}
	}
	return out
}

// Count returns how many elements of kind k the stream holds.
func (r IR) Count(k Kind) int {
	n := 0
	for _, rt := range r {
		if rt.Kind == k {
			n++
		}
	}
	return n
}
