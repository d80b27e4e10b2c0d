package lexer

import (
	"unfmt/internal/token"
)

// Поддержка: 0, 1_000, 0b1010, 0o17, 0xFF, 1.0, 1., 1e-3, 2.5E+10_f64 и суффиксы (u8, f32, usize).
// Числа не валидируем: это делает компилятор, нам нужна только граница токена.
//
//   - "1..2"  → 1, .., 2 (точка перед точкой не дробная часть)
//   - "1.foo" → 1, ., foo (вызов метода / поле)
//   - "x.0.1" → x, ., 0.1 (так же режет rustc; парсер потом делит)
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// база
	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'b', 'o':
			lx.cursor.Off += 2
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.eatSuffix()
			return lx.emit(token.IntLit, start)
		case 'x':
			lx.cursor.Off += 2
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.eatSuffix()
			return lx.emit(token.IntLit, start)
		}
	}

	lx.eatDecimalDigits()
	kind := token.IntLit

	// дробная часть
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' && !lx.startsIdentAt(1) {
		lx.cursor.Bump() // '.'
		kind = token.FloatLit
		if !isDec(lx.cursor.Peek()) {
			// "1." — суффикс здесь невозможен, иначе это было бы поле
			return lx.emit(kind, start)
		}
		lx.eatDecimalDigits()
	}

	if lx.eatExponent() {
		kind = token.FloatLit
	}
	lx.eatSuffix()
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDecimalDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// eatExponent съедает e[+-]digits; без цифр 'e' остаётся суффиксу.
func (lx *Lexer) eatExponent() bool {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return false
	}
	n := uint32(1)
	if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
		n = 2
	}
	for lx.cursor.PeekAt(n) == '_' {
		n++
	}
	if !isDec(lx.cursor.PeekAt(n)) {
		return false
	}
	lx.cursor.Off += n
	lx.eatDecimalDigits()
	return true
}
