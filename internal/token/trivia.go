package token

import "unfmt/internal/source"

//go:generate stringer -type=TriviaKind -trimprefix=Trivia
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDocLine covers /// and //! comments.
	TriviaDocLine
	// TriviaDocBlock covers /** */ and /*! */ comments.
	TriviaDocBlock
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsDoc reports whether the trivia is a doc comment (outer or inner).
func (t Trivia) IsDoc() bool {
	return t.Kind == TriviaDocLine || t.Kind == TriviaDocBlock
}
