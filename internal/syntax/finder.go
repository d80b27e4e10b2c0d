package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"

	"unfmt/internal/source"
)

// FindEvents walks the tree depth-first and returns insertion events in source
// order. Opens are emitted before the node's children, closes after them, so
// events nest the same way the expressions do.
//
// Statements: every child of a block that ends with an explicit ';' gets a
// StatementStart at its first token (or at its first directly preceding outer
// attribute) and a StatementEnd at the ';'. Tail expressions and block-like
// statements without ';' get nothing.
//
// Expressions: every node whose ExprKind is wrappable gets ExprOpen at its
// first token and ExprClose at its last token.
func FindEvents(t *Tree) []Event {
	f := finder{events: make([]Event, 0, 64)}
	f.walk(t.Root(), nil)
	return f.events
}

type finder struct {
	events []Event
}

func (f *finder) emit(kind EventKind, pos source.LineCol) {
	f.events = append(f.events, Event{Kind: kind, Pos: pos})
}

func (f *finder) walk(n, parent *sitter.Node) {
	if isOpaque(n) {
		return
	}
	if n.Type() == "block" {
		f.walkBlock(n)
		return
	}

	kind := classify(n, parent)
	wrap := kind.Wrappable()
	if kind == ExprLit && isNegation(parent) {
		// -128i8: (128i8) переполнится до применения минуса
		wrap = false
	}

	if wrap {
		f.emit(ExprOpen, pointPos(n.StartPoint()))
	}
	f.walkChildren(n)
	if wrap {
		f.emit(ExprClose, lastTokenPos(n))
	}
}

func (f *finder) walkChildren(n *sitter.Node) {
	skip := skippedFields[n.Type()]
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if skip != nil && skip[n.FieldNameForChild(i)] {
			continue
		}
		f.walk(child, n)
	}
}

func (f *finder) walkBlock(block *sitter.Node) {
	count := int(block.ChildCount())
	for i := range count {
		child := block.Child(i)
		if child == nil {
			continue
		}
		semi, ok := statementSemicolon(child)
		if !ok {
			f.walk(child, block)
			continue
		}

		f.emit(StatementStart, statementStart(block, i))
		f.walk(child, block)
		f.emit(StatementEnd, pointPos(semi.StartPoint()))
	}
}

// statementSemicolon returns the ';' that terminates a block child, if any.
func statementSemicolon(n *sitter.Node) (*sitter.Node, bool) {
	if !n.IsNamed() || isComment(n) {
		return nil, false
	}
	if n.Type() == "empty_statement" {
		return n, true
	}
	last := lastChild(n)
	if last == nil || last.Type() != ";" {
		return nil, false
	}
	return last, true
}

// statementStart: первый токен оператора, или первый из непосредственно
// предшествующих ему внешних атрибутов (#[cfg] и т.п. должны остаться при нём).
func statementStart(block *sitter.Node, idx int) source.LineCol {
	start := block.Child(idx)
	for j := idx - 1; j >= 0; j-- {
		prev := block.Child(j)
		if prev == nil {
			break
		}
		if isComment(prev) {
			continue
		}
		if prev.Type() != "attribute_item" {
			break
		}
		start = prev
	}
	return pointPos(start.StartPoint())
}

// lastTokenPos спускается к последнему листу, останавливаясь на атомарных узлах:
// для лексера "abc", 'a и r#"x"# — один токен, а не несколько детей.
func lastTokenPos(n *sitter.Node) source.LineCol {
	for !atomic[n.Type()] {
		last := lastChild(n)
		if last == nil {
			break
		}
		n = last
	}
	return pointPos(n.StartPoint())
}

func lastChild(n *sitter.Node) *sitter.Node {
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		c := n.Child(i)
		if c == nil || isComment(c) {
			continue
		}
		return c
	}
	return nil
}

func isNegation(parent *sitter.Node) bool {
	if parent == nil || parent.Type() != "unary_expression" || parent.ChildCount() == 0 {
		return false
	}
	return parent.Child(0).Type() == "-"
}
