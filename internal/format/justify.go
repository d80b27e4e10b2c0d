package format

import (
	"slices"
	"strings"

	"unfmt/internal/ir"
)

// Justify widens the block towards width without touching real tokens:
// junk placeholders first, then redundant parentheses, then a single space
// for an odd remainder, then a trailing comment. The block never grows past
// width; a block that is already too wide is returned without padding.
// The block is modified in place.
func Justify(block Block, width int) Block {
	block = trimSpacers(block)

	deficit := max(width-block.Width(), 0)
	if deficit > 0 {
		deficit -= growJunk(block, deficit)
	}
	if deficit > 1 {
		deficit -= growParens(block, deficit)
	}
	if deficit == 1 {
		mid := len(block) / 2
		for mid > 0 && glued(block[mid-1], block[mid]) {
			mid--
		}
		block = slices.Insert(block, mid, ir.NewSpacer())
		deficit = 0
	}
	if deficit >= 2 && !endsWithAny(block, "/$") {
		block = append(block, ir.NewComment(min(deficit-2, ir.MaxJunk)))
	}
	return block
}

func trimSpacers(block Block) Block {
	for len(block) > 0 && block[0].Kind == ir.Spacer {
		block = block[1:]
	}
	for len(block) > 0 && block[len(block)-1].Kind == ir.Spacer {
		block = block[:len(block)-1]
	}
	return block
}

// growJunk spreads deficit over the junk placeholders: an even share each,
// the remainder to the leftmost ones, each capped by the table size.
func growJunk(block Block, deficit int) int {
	var idx []int
	for i, rt := range block {
		if rt.Kind == ir.Junk {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return 0
	}

	share, rem := deficit/len(idx), deficit%len(idx)
	used := 0
	for k, i := range idx {
		add := share
		if k < rem {
			add++
		}
		add = min(add, ir.MaxJunk-block[i].N)
		block[i].N += add
		used += add
	}
	return used
}

// growParens adds paren pairs around the expressions whose open and close
// markers both landed in this block, round-robin from the left. Each
// increment costs two columns, so at most deficit rounded down to even is used.
func growParens(block Block, deficit int) int {
	type pair struct{ open, close int }

	opens := make(map[int]int)
	var pairs []pair
	for i, rt := range block {
		switch rt.Kind {
		case ir.ExprOpen:
			opens[rt.ID] = i
		case ir.ExprClose:
			if o, ok := opens[rt.ID]; ok {
				pairs = append(pairs, pair{open: o, close: i})
			}
		}
	}
	if len(pairs) == 0 {
		return 0
	}
	// закрытия идут изнутри наружу; раздаём слева направо по открывающим
	slices.SortFunc(pairs, func(a, b pair) int { return a.open - b.open })

	incs := deficit / 2
	share, rem := incs/len(pairs), incs%len(pairs)
	for k, p := range pairs {
		add := share
		if k < rem {
			add++
		}
		block[p.open].Reps += add
		block[p.close].Reps += add
	}
	return incs * 2
}

// endsWithAny reports whether the last rendered byte of the block is one of
// chars. A trailing comment must not follow "/" (it would read as a doc
// comment "///") or a dangling "$".
func endsWithAny(block Block, chars string) bool {
	for i := len(block) - 1; i >= 0; i-- {
		text := block[i].Text()
		if text == "" {
			continue
		}
		return strings.IndexByte(chars, text[len(text)-1]) >= 0
	}
	return false
}
