package lexer

import (
	"unfmt/internal/diag"
	"unfmt/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		// не идентификатор — пусть разбирается как пунктуация/ошибка
		return lx.scanOperatorOrPunct()
	}
	lx.bumpRune()
	lx.eatIdentContinue()

	tok := lx.emit(token.Ident, start)
	if tok.Text == "_" {
		tok.Kind = token.Underscore
		return tok
	}
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanRawIdent: r#name. Ключевые слова после r# — обычные идентификаторы.
func (lx *Lexer) scanRawIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Off += 2 // r#
	lx.bumpRune()
	lx.eatIdentContinue()
	return lx.emit(token.RawIdent, start)
}

// isLiteralPrefix проверяет b'..', b"..", br"..", c"..", cr"..", r"..", r#".."#.
func (lx *Lexer) isLiteralPrefix() bool {
	var i uint32
	switch lx.cursor.Peek() {
	case 'b':
		switch lx.cursor.PeekAt(1) {
		case '\'', '"':
			return true
		case 'r':
			i = 2
		default:
			return false
		}
	case 'c':
		switch lx.cursor.PeekAt(1) {
		case '"':
			return true
		case 'r':
			i = 2
		default:
			return false
		}
	case 'r':
		i = 1
	default:
		return false
	}
	for lx.cursor.PeekAt(i) == '#' {
		i++
	}
	return lx.cursor.PeekAt(i) == '"'
}

func (lx *Lexer) scanPrefixedLiteral() token.Token {
	start := lx.cursor.Mark()
	b0, b1, _ := lx.cursor.Peek2()
	switch {
	case b0 == 'b' && b1 == '\'':
		lx.cursor.Bump()
		return lx.scanCharBody(start, token.ByteLit)
	case b0 == 'b' && b1 == '"':
		lx.cursor.Bump()
		return lx.scanQuoted(start, token.ByteStringLit)
	case b0 == 'c' && b1 == '"':
		lx.cursor.Bump()
		return lx.scanQuoted(start, token.CStringLit)
	}
	// raw: r, br, cr
	if b0 != 'r' {
		lx.cursor.Bump()
	}
	lx.cursor.Bump() // 'r'
	return lx.scanRawString(start)
}

func (lx *Lexer) scanRawString(start Mark) token.Token {
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		// isLiteralPrefix гарантирует кавычку
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "raw string without opening quote")
		return lx.emit(token.Invalid, start)
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		n := 0
		for n < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			n++
		}
		if n == hashes {
			lx.eatSuffix()
			return lx.emit(token.RawStringLit, start)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string literal")
	return lx.emit(token.Invalid, start)
}
