package format

import (
	"unfmt/internal/ir"
	"unfmt/internal/token"
)

// Block is one output line's worth of rich tokens.
type Block []ir.RichToken

// Width is the rendered display width of the block.
func (b Block) Width() int {
	return ir.IR(b).Width()
}

// Bytes renders the block without a line terminator.
func (b Block) Bytes() []byte {
	return ir.IR(b).Bytes()
}

// Pack splits the stream into blocks no wider than width. A real token that is
// width columns or wider always gets a block of its own; that is the only way a
// block can exceed width. Glued tokens ($name, macro_rules!) are never split
// across blocks and count as one token for that rule.
func Pack(stream ir.IR, width int) []Block {
	blocks := make([]Block, 0, stream.Width()/max(width, 1)+1)
	var (
		cur  Block
		curW int
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, cur)
		}
		cur, curW = nil, 0
	}

	for i := 0; i < len(stream); {
		j := i + 1
		for j < len(stream) && glued(stream[j-1], stream[j]) {
			j++
		}
		unit := stream[i:j]
		i = j

		w := ir.IR(unit).Width()
		if unit[0].Kind == ir.Tok && w >= width {
			flush()
			blocks = append(blocks, append(Block(nil), unit...))
			continue
		}
		if curW+w > width {
			flush()
		}
		if unit[0].Kind == ir.Spacer && curW == 0 {
			// перенос строки уже разделяет токены
			continue
		}
		cur = append(cur, unit...)
		curW += w
	}
	flush()
	return blocks
}

// glued reports whether nothing may separate left and right: rustc accepts
// "$ x" and "macro_rules !", tree-sitter reads both as single tokens.
func glued(left, right ir.RichToken) bool {
	if left.Kind != ir.Tok || right.Kind != ir.Tok {
		return false
	}
	switch {
	case left.Token.Kind == token.Dollar:
		return right.Token.Affinity() == token.Repel
	case left.Token.Kind == token.Ident && left.Token.Text == "macro_rules":
		return right.Token.Kind == token.Bang
	}
	return false
}
