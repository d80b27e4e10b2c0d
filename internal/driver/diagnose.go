package driver

import (
	"errors"
	"fmt"

	"unfmt/internal/diag"
	"unfmt/internal/format"
	"unfmt/internal/source"
	"unfmt/internal/syntax"
)

// spanned is implemented by lexer errors.
type spanned interface {
	Code() diag.Code
	Span() source.Span
}

// reportError переводит ошибку ядра в диагностику файла file.
func reportError(bag *diag.Bag, file *source.File, err error) {
	if bag == nil || err == nil {
		return
	}
	var synErr *syntax.SyntaxError
	var lexErr spanned
	switch {
	case errors.Is(err, format.ErrRoundTrip):
		// позиции ошибки повторного разбора относятся к выводу, не к файлу
		bag.Add(diag.New(diag.SevError, diag.FmtRoundTripFailed, source.Span{File: file.ID}, err.Error()))
	case errors.As(err, &synErr):
		code := diag.SynInvalidSource
		msg := fmt.Sprintf("unexpected %q", synErr.Kind)
		if synErr.Missing {
			code = diag.SynMissingNode
			msg = "expected " + synErr.Kind
		}
		d := diag.New(diag.SevError, code, source.Span{File: file.ID, Start: synErr.Start, End: synErr.End}, msg)
		bag.Add(d.WithNote(source.Span{File: file.ID, Start: synErr.Start, End: synErr.Start}, "file left untouched"))
	case errors.As(err, &lexErr):
		sp := lexErr.Span()
		// лексер ядра работает со своим FileSet
		sp.File = file.ID
		bag.Add(diag.New(diag.SevError, lexErr.Code(), sp, err.Error()))
	default:
		bag.Add(diag.New(diag.SevError, diag.UnknownCode, source.Span{File: file.ID}, err.Error()))
	}
}

// reportOverlong adds a warning for every output line wider than width. The
// output is registered as a virtual file so the snippet shows the line itself.
func reportOverlong(bag *diag.Bag, fs *source.FileSet, path string, out []byte, width int) {
	if bag == nil {
		return
	}
	var outFile *source.File
	for _, ln := range splitLines(out) {
		if ln.Width <= width {
			continue
		}
		if outFile == nil {
			outFile = fs.Get(fs.AddVirtual(path+" (unformatted)", out))
		}
		msg := fmt.Sprintf("line is %d columns wide, limit %d: token cannot be split", ln.Width, width)
		if !bag.Add(diag.New(diag.SevWarning, diag.FmtOverlongLine, source.Span{File: outFile.ID, Start: ln.Start, End: ln.End}, msg)) {
			return
		}
	}
}
