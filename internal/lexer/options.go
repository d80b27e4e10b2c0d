package lexer

import (
	"unfmt/internal/diag"
	"unfmt/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки только запоминаются для Lex
	// KeepTrivia attaches comments and whitespace to Token.Leading.
	// Off by default: the unformatter drops all trivia.
	KeepTrivia bool
}

// errLex репортит лексическую ошибку и запоминает первую для Lex.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.firstErr == nil {
		lx.firstErr = &lexError{code: code, span: sp, pos: lx.file.Position(sp.Start), msg: msg}
	}
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
