package ir

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"unfmt/internal/source"
	"unfmt/internal/syntax"
	"unfmt/internal/token"
)

// ErrUnaligned reports events whose position matches no token in the stream.
var ErrUnaligned = errors.New("event does not align with any token")

// Degradation records how much of the event stream Build had to give up.
type Degradation uint8

const (
	// KeptAll: every event was materialized.
	KeptAll Degradation = iota
	// DroppedExprs: expression events were discarded, statements kept.
	DroppedExprs
	// DroppedAll: no events survived; the IR is the bare separated stream.
	DroppedAll
)

func (d Degradation) String() string {
	switch d {
	case KeptAll:
		return "none"
	case DroppedExprs:
		return "expressions dropped"
	case DroppedAll:
		return "all events dropped"
	default:
		return fmt.Sprintf("Degradation(%d)", d)
	}
}

// Merge materializes events into the separated stream. Each real token consumes
// the events at the front of the queue whose position equals its own:
// statement events become Junk(0) before/after the token, expression events
// become ExprOpen/ExprClose markers with fresh ids.
//
// Events must be well nested; a close with no open panics. Events left over
// after the last token are reported as ErrUnaligned.
func Merge(stream IR, events []syntax.Event) (IR, error) {
	out := make(IR, 0, len(stream)+len(events))
	var (
		nextID int
		open   []int // стек id открытых выражений
		before []RichToken
		after  []RichToken
	)

	for _, rt := range stream {
		if rt.Kind != Tok {
			out = append(out, rt)
			continue
		}
		before, after = before[:0], after[:0]
		for len(events) > 0 && events[0].Pos == rt.Token.Pos {
			switch events[0].Kind {
			case syntax.StatementStart:
				before = append(before, NewJunk(0))
			case syntax.StatementEnd:
				after = append(after, NewJunk(0))
			case syntax.ExprOpen:
				before = append(before, RichToken{Kind: ExprOpen, ID: nextID})
				open = append(open, nextID)
				nextID++
			case syntax.ExprClose:
				if len(open) == 0 {
					panic(fmt.Sprintf("ir: expression close at %s without an open expression", rt.Token.Pos))
				}
				id := open[len(open)-1]
				open = open[:len(open)-1]
				after = append(after, RichToken{Kind: ExprClose, ID: id})
			}
			events = events[1:]
		}
		out = append(out, before...)
		out = append(out, rt)
		out = append(out, after...)
	}

	if len(events) > 0 {
		return nil, fmt.Errorf("%w: %d left, first %s", ErrUnaligned, len(events), events[0])
	}
	return out, nil
}

// Build separates tokens and merges the events into the result. Misalignment
// never fails the build: on the first sign of it expression events are
// dropped, and if statements do not align either the bare stream is returned.
// logger may be nil.
func Build(tokens []token.Token, events []syntax.Event, logger *log.Logger) (IR, Degradation) {
	stream := Separate(tokens)

	positions := make(map[source.LineCol]struct{}, len(tokens))
	for _, tok := range tokens {
		positions[tok.Pos] = struct{}{}
	}

	if pos, ok := firstUnaligned(events, positions); ok {
		logDebug(logger, "expression events dropped", "pos", pos)
		return buildStatements(stream, events, positions, logger)
	}
	merged, err := Merge(stream, events)
	if err != nil {
		logDebug(logger, "expression events dropped", "err", err)
		return buildStatements(stream, events, positions, logger)
	}
	return merged, KeptAll
}

func buildStatements(stream IR, events []syntax.Event, positions map[source.LineCol]struct{}, logger *log.Logger) (IR, Degradation) {
	stmts := syntax.StatementEvents(events)
	if pos, ok := firstUnaligned(stmts, positions); ok {
		logDebug(logger, "statement events dropped", "pos", pos)
		return stream, DroppedAll
	}
	merged, err := Merge(stream, stmts)
	if err != nil {
		logDebug(logger, "statement events dropped", "err", err)
		return stream, DroppedAll
	}
	return merged, DroppedExprs
}

func firstUnaligned(events []syntax.Event, positions map[source.LineCol]struct{}) (source.LineCol, bool) {
	for _, ev := range events {
		if _, ok := positions[ev.Pos]; !ok {
			return ev.Pos, true
		}
	}
	return source.LineCol{}, false
}

func logDebug(logger *log.Logger, msg string, keyvals ...any) {
	if logger != nil {
		logger.Debug(msg, keyvals...)
	}
}
