package lexer

import (
	"errors"
	"fmt"

	"unfmt/internal/diag"
	"unfmt/internal/source"
)

var (
	// ErrUnknownToken is returned when a byte cannot start any Rust token.
	ErrUnknownToken = errors.New("unknown token")
	// ErrUnterminated is returned for string, char and block comment bodies that run into EOF.
	ErrUnterminated = errors.New("unterminated literal or comment")
	// ErrMalformed covers the remaining lexical errors (bad numbers, oversized tokens).
	ErrMalformed = errors.New("malformed token")
)

type lexError struct {
	code diag.Code
	span source.Span
	pos  source.LineCol
	msg  string
}

func (e *lexError) Error() string {
	return fmt.Sprintf("%s: %s", e.pos, e.msg)
}

func (e *lexError) Unwrap() error {
	switch e.code {
	case diag.LexUnknownChar:
		return ErrUnknownToken
	case diag.LexUnterminatedString, diag.LexUnterminatedChar, diag.LexUnterminatedBlockComment:
		return ErrUnterminated
	default:
		return ErrMalformed
	}
}

// Code returns the diagnostic code of the error.
func (e *lexError) Code() diag.Code { return e.code }

// Span returns the offending byte span.
func (e *lexError) Span() source.Span { return e.span }
