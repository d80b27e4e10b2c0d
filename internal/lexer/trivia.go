package lexer

import (
	"unfmt/internal/diag"
	"unfmt/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - пробельные символы (включая \r, \v, \f и Unicode Pattern_White_Space) коалесцируются в TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment; ///x и //!x -> TriviaDocLine (но //// — обычный)
// - /* ... */ -> TriviaBlockComment с вложенностью; /** */ и /*! */ -> TriviaDocBlock
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if lx.eatSpaces() {
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '/' && lx.scanComment() {
			continue
		}

		// нет больше trivia
		break
	}
}

// eatSpaces съедает пробелы кроме '\n'; true, если что-то съедено.
func (lx *Lexer) eatSpaces() bool {
	ate := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b < utf8RuneSelf {
			if !isRustWhitespace(rune(b)) {
				break
			}
			lx.cursor.Bump()
			ate = true
			continue
		}
		r, _ := lx.peekRune()
		if !isRustWhitespace(r) {
			break
		}
		lx.bumpRune()
		ate = true
	}
	return ate
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// scanComment: //..., /*...*/ и их doc-варианты.
func (lx *Lexer) scanComment() bool {
	start := lx.cursor.Mark()
	switch lx.cursor.PeekAt(1) {
	case '/':
		kind := token.TriviaLineComment
		third, fourth := lx.cursor.PeekAt(2), lx.cursor.PeekAt(3)
		if (third == '/' && fourth != '/') || third == '!' {
			kind = token.TriviaDocLine
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(kind, start)
		return true

	case '*':
		kind := token.TriviaBlockComment
		third, fourth := lx.cursor.PeekAt(2), lx.cursor.PeekAt(3)
		if (third == '*' && fourth != '*' && fourth != '/') || third == '!' {
			kind = token.TriviaDocBlock
		}
		lx.cursor.Off += 2
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Off += 2
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Off += 2
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.pushTrivia(kind, start)
		return true

	default:
		// это не комментарий — пусть сканируется как оператор '/'
		return false
	}
}
