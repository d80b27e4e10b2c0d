package lexer

import (
	"unfmt/internal/diag"
	"unfmt/internal/token"
)

// scanString: "..." с экранированием; переводы строк внутри допустимы.
func (lx *Lexer) scanString(kind token.Kind) token.Token {
	return lx.scanQuoted(lx.cursor.Mark(), kind)
}

// scanQuoted ожидает курсор на '"'; start может включать префикс (b, c).
func (lx *Lexer) scanQuoted(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			lx.eatSuffix()
			return lx.emit(kind, start)
		case '\\':
			// escape не валидируем: достаточно не принять \" за конец строки
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.emit(token.Invalid, start)
}

// scanQuote различает lifetime ('a, 'static, 'label) и char literal ('a', '\n').
func (lx *Lexer) scanQuote() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.PeekAt(1) == '\\' {
		return lx.scanCharBody(start, token.CharLit)
	}
	r, sz := lx.runeAt(1)
	if sz > 0 && lx.cursor.PeekAt(1+uint32(sz)) == '\'' {
		return lx.scanCharBody(start, token.CharLit)
	}
	if sz > 0 && isIdentStartRune(r) {
		lx.cursor.Bump() // '
		if lx.cursor.Peek() == 'r' && lx.cursor.PeekAt(1) == '#' && lx.startsIdentAt(2) {
			lx.cursor.Off += 2 // 'r#raw
		}
		lx.bumpRune()
		lx.eatIdentContinue()
		return lx.emit(token.Lifetime, start)
	}
	return lx.scanCharBody(start, token.CharLit)
}

// scanCharBody ожидает курсор на открывающей одинарной кавычке.
func (lx *Lexer) scanCharBody(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			lx.eatSuffix()
			return lx.emit(kind, start)
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedChar, sp, "newline in character literal")
			return lx.emit(token.Invalid, start)
		default:
			lx.bumpRune()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return lx.emit(token.Invalid, start)
}
