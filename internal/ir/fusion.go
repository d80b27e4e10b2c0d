package ir

import (
	"strings"

	"unfmt/internal/token"
)

// Pair is an ordered pair of adjacent token kinds.
type Pair struct {
	Left, Right token.Kind
}

// dangerousPairs: Tight-Tight pairs that glue into another token or open a comment.
var dangerousPairs = map[Pair]struct{}{
	{token.Colon, token.ColonColon}:  {}, // x: ::std -> x:::std
	{token.Slash, token.Star}:        {}, // /* comment
	{token.Slash, token.StarAssign}:  {},
	{token.Slash, token.Slash}:       {}, // // comment
	{token.Slash, token.SlashAssign}: {},
	{token.Lt, token.Minus}:          {}, // <-
	{token.DotDot, token.FatArrow}:   {}, // ..=>
	{token.Lt, token.Lt}:             {}, // << в макросах
	{token.Gt, token.FatArrow}:       {}, // >=>
	{token.Plus, token.FatArrow}:     {},
	{token.Star, token.FatArrow}:     {},
	{token.Question, token.FatArrow}: {},
}

// DangerousPairs returns the closed list of Tight-Tight pairs that need a spacer.
func DangerousPairs() []Pair {
	out := make([]Pair, 0, len(dangerousPairs))
	for p := range dangerousPairs {
		out = append(out, p)
	}
	return out
}

// NeedsSpacer reports whether left immediately followed by right would lex differently.
func NeedsSpacer(left, right token.Kind) bool {
	if left.Affinity() == token.Repel {
		// ident# похоже на префикс литерала
		return right.Affinity() == token.Repel || right == token.Pound
	}
	_, ok := dangerousPairs[Pair{left, right}]
	return ok
}

// FusesWithDot reports whether a dot right after tok would be read as part of
// the literal: "1" followed by ".max" turns into the float "1." once a line
// break or comment lands after the dot, and "1." followed by ".." becomes "1...".
func FusesWithDot(tok token.Token, right token.Kind) bool {
	switch tok.Kind {
	case token.IntLit:
		return right == token.Dot && !hasIntSuffix(tok.Text)
	case token.FloatLit:
		if !strings.HasSuffix(tok.Text, ".") {
			return false
		}
		switch right {
		case token.Dot, token.DotDot, token.DotDotDot, token.DotDotEq:
			return true
		}
	}
	return false
}

// hasIntSuffix: 1u8, 0xffusize. Для hex буквы a-f ещё цифры.
func hasIntSuffix(text string) bool {
	digit := func(b byte) bool { return b >= '0' && b <= '9' || b == '_' }
	body := text
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x':
			digit = func(b byte) bool {
				return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F' || b == '_'
			}
			body = text[2:]
		case 'b', 'o':
			body = text[2:]
		}
	}
	for i := 0; i < len(body); i++ {
		if !digit(body[i]) {
			return true
		}
	}
	return false
}

// Separate wraps every token and inserts a Spacer wherever two neighbours would fuse.
func Separate(tokens []token.Token) IR {
	out := make(IR, 0, len(tokens)+len(tokens)/4)
	last := token.Token{Kind: token.Semicolon}
	for _, tok := range tokens {
		if NeedsSpacer(last.Kind, tok.Kind) || FusesWithDot(last, tok.Kind) {
			out = append(out, NewSpacer())
		}
		out = append(out, NewTok(tok))
		last = tok
	}
	return out
}
