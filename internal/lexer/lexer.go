package lexer

import (
	"unfmt/internal/diag"
	"unfmt/internal/source"
	"unfmt/internal/token"
)

// maxTokenLength ограничивает длину одного токена (в байтах).
const maxTokenLength = 1 << 24

type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	look     *token.Token   // 1 элементный буфер для токена
	hold     []token.Trivia // накопленные leading trivia
	firstErr *lexError
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	lx.skipShebang()
	return lx
}

// Lex превращает весь файл в последовательность значимых токенов (без EOF).
// Первая лексическая ошибка возвращается вместе с позицией; токены до неё
// остаются валидными.
func Lex(file *source.File) ([]token.Token, error) {
	return LexWithOptions(file, Options{})
}

// LexWithOptions is Lex with a reporter and trivia settings.
func LexWithOptions(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	// грубая оценка: в среднем токен ~4 байта
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	if lx.firstErr != nil {
		return toks, lx.firstErr
	}
	return toks, nil
}

// Next возвращает следующий **значимый** токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		// хвостовые комментарии приклеиваем к EOF, иначе их некуда деть
		eof := token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Pos:  lx.file.Position(lx.cursor.Off),
		}
		lx.attachTrivia(&eof)
		return eof
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == 'r' && lx.cursor.PeekAt(1) == '#' && lx.startsIdentAt(2):
		// r#ident
		tok = lx.scanRawIdent()

	case (ch == 'b' || ch == 'c' || ch == 'r') && lx.isLiteralPrefix():
		// b'x', b"..", br#".."#, c"..", cr"..", r#".."#
		tok = lx.scanPrefixedLiteral()

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор → scanIdentOrKeyword() разберётся
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString(token.StringLit)

	case ch == '\'':
		tok = lx.scanQuote()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	if tok.Span.Len() > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span, "token exceeds maximum length")
		lx.cursor.Off = lx.cursor.Limit
		tok.Kind = token.Invalid
	}

	tok.Pos = lx.file.Position(tok.Span.Start)
	lx.attachTrivia(&tok)
	return tok
}

func (lx *Lexer) attachTrivia(tok *token.Token) {
	if lx.opts.KeepTrivia && len(lx.hold) > 0 {
		tok.Leading = append([]token.Trivia(nil), lx.hold...)
	}
	lx.hold = lx.hold[:0]
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// skipShebang пропускает "#!..." в первой строке, если это не "#![attr]".
func (lx *Lexer) skipShebang() {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '#' || b1 != '!' {
		return
	}
	// "#!" + пробелы/комментарии + '[' — это inner attribute, не shebang
	for i := uint32(2); ; i++ {
		b := lx.cursor.PeekAt(i)
		if b == ' ' || b == '\t' {
			continue
		}
		if b == '[' {
			return
		}
		break
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaLineComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
