package syntax

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"unfmt/internal/source"
)

// ErrInvalidSource is returned when the input is not syntactically valid Rust.
var ErrInvalidSource = errors.New("source is not valid Rust")

// SyntaxError points at the first ERROR or MISSING node of a rejected tree.
type SyntaxError struct {
	Pos     source.LineCol
	Start   uint32
	End     uint32
	Missing bool
	// Kind is the expected node kind for MISSING nodes, the offending text otherwise.
	Kind string
}

func (e *SyntaxError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: %v: missing %s", e.Pos, ErrInvalidSource, e.Kind)
	}
	return fmt.Sprintf("%s: %v: unexpected %q", e.Pos, ErrInvalidSource, e.Kind)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidSource }

// Tree is a parsed Rust source. Close must be called to release the C tree.
type Tree struct {
	tree    *sitter.Tree
	content []byte
}

// Root returns the source_file node.
func (t *Tree) Root() *sitter.Node { return t.tree.RootNode() }

// Content returns the bytes the tree was parsed from.
func (t *Tree) Content() []byte { return t.content }

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t != nil && t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// ItemKinds lists the node kinds of the top-level items, comments excluded.
func (t *Tree) ItemKinds() []string {
	root := t.Root()
	n := int(root.NamedChildCount())
	kinds := make([]string, 0, n)
	for i := range n {
		child := root.NamedChild(i)
		if isComment(child) {
			continue
		}
		kinds = append(kinds, child.Type())
	}
	return kinds
}

// Parser owns a tree-sitter parser configured for Rust. Not safe for concurrent use.
type Parser struct {
	p *sitter.Parser
}

func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(rust.GetLanguage())
	return &Parser{p: p}
}

// Close releases the parser.
func (p *Parser) Close() {
	if p != nil && p.p != nil {
		p.p.Close()
		p.p = nil
	}
}

// Parse parses src and validates it. On a tree with errors the tree is released
// and a *SyntaxError wrapping ErrInvalidSource is returned.
func (p *Parser) Parse(ctx context.Context, src []byte) (*Tree, error) {
	tree, err := p.p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter: %w", err)
	}
	t := &Tree{tree: tree, content: src}
	if root := t.Root(); root.HasError() {
		serr := firstError(root, src)
		t.Close()
		return nil, serr
	}
	return t, nil
}

// Parse is a one-shot helper around NewParser().Parse.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	p := NewParser()
	defer p.Close()
	return p.Parse(ctx, src)
}

// firstError ищет первый ERROR/MISSING узел в порядке обхода.
func firstError(n *sitter.Node, src []byte) *SyntaxError {
	if n.IsMissing() {
		return &SyntaxError{
			Pos:     pointPos(n.StartPoint()),
			Start:   n.StartByte(),
			End:     n.EndByte(),
			Missing: true,
			Kind:    n.Type(),
		}
	}
	if n.Type() == "ERROR" {
		text := string(src[n.StartByte():n.EndByte()])
		if len(text) > 32 {
			text = text[:32] + "..."
		}
		return &SyntaxError{
			Pos:   pointPos(n.StartPoint()),
			Start: n.StartByte(),
			End:   n.EndByte(),
			Kind:  text,
		}
	}
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if e := firstError(child, src); e != nil {
			return e
		}
	}
	// HasError без конкретного узла: указываем на сам узел
	return &SyntaxError{
		Pos:   pointPos(n.StartPoint()),
		Start: n.StartByte(),
		End:   n.EndByte(),
		Kind:  n.Type(),
	}
}

func pointPos(p sitter.Point) source.LineCol {
	return source.LineCol{Line: p.Row + 1, Col: p.Column + 1}
}
