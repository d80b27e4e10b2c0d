package syntax

import (
	"fmt"

	"unfmt/internal/source"
)

// EventKind says what may be inserted at a token position.
type EventKind uint8

const (
	// StatementStart: a junk statement may go right before the token.
	StatementStart EventKind = iota
	// StatementEnd: a junk statement may go right after the token (the statement's ';').
	StatementEnd
	// ExprOpen: an expression starts at the token; '(' may go before it.
	ExprOpen
	// ExprClose: an expression ends at the token; ')' may go after it.
	ExprClose
)

func (k EventKind) String() string {
	switch k {
	case StatementStart:
		return "StatementStart"
	case StatementEnd:
		return "StatementEnd"
	case ExprOpen:
		return "ExprOpen"
	case ExprClose:
		return "ExprClose"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// IsStatement reports whether the kind is StatementStart or StatementEnd.
func (k EventKind) IsStatement() bool { return k == StatementStart || k == StatementEnd }

// Event marks an insertion point at the token whose first byte is at Pos.
type Event struct {
	Kind EventKind
	Pos  source.LineCol
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%s", e.Kind, e.Pos)
}

// StatementEvents filters events down to the statement kinds.
func StatementEvents(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Kind.IsStatement() {
			out = append(out, ev)
		}
	}
	return out
}
