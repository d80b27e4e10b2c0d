package lexer

import (
	"unfmt/internal/diag"
	"unfmt/internal/token"
)

// Жадность: порядок проверок совпадает со списком приоритетов
// ..= ... .. :: -> => == != <= >= && || >>= <<= >> << += -= *= /= %= ^= &= |=,
// затем односимвольные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token { return lx.emit(k, start) }

	switch {
	case lx.try3('.', '.', '='):
		return emit(token.DotDotEq)
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case lx.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	case lx.try2('^', '='):
		return emit(token.CaretAssign)
	case lx.try2('&', '='):
		return emit(token.AmpAssign)
	case lx.try2('|', '='):
		return emit(token.PipeAssign)
	}

	// односимвольные
	if k, ok := singleCharKinds[lx.cursor.Peek()]; ok && !lx.cursor.EOF() {
		lx.cursor.Bump()
		return emit(k)
	}

	// неизвестный символ: съедаем руну целиком, чтобы не резать UTF-8
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character "+quoteText(lx.file.Content[sp.Start:sp.End]))
	return emit(token.Invalid)
}

var singleCharKinds = map[byte]token.Kind{
	'(': token.LParen, ')': token.RParen,
	'{': token.LBrace, '}': token.RBrace,
	'[': token.LBracket, ']': token.RBracket,
	':': token.Colon, ';': token.Semicolon, ',': token.Comma, '.': token.Dot,
	'@': token.At, '#': token.Pound, '~': token.Tilde, '?': token.Question,
	'$': token.Dollar, '=': token.Assign, '!': token.Bang,
	'<': token.Lt, '>': token.Gt, '-': token.Minus, '&': token.Amp,
	'|': token.Pipe, '+': token.Plus, '*': token.Star, '/': token.Slash,
	'^': token.Caret, '%': token.Percent,
}

func quoteText(b []byte) string {
	return "'" + string(b) + "'"
}
