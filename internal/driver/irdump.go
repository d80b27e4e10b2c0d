package driver

import (
	"context"

	"github.com/charmbracelet/log"

	"unfmt/internal/diag"
	"unfmt/internal/format"
	"unfmt/internal/source"
)

// IRResult is the intermediate state of one file for the ir command.
type IRResult struct {
	FileSet *source.FileSet
	Stream  *format.Stream
	Blocks  []format.Block // nil when width is zero
	Bag     *diag.Bag
}

// DumpIR builds the rich token stream of path and, for width > 0, lays it out.
// Invalid sources are reported in Bag with a nil Stream.
func DumpIR(ctx context.Context, path string, width int, logger *log.Logger) (*IRResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)
	res := &IRResult{FileSet: fs, Bag: diag.NewBag(16)}

	st, err := format.BuildStream(ctx, file.Content, format.Options{Width: width, Logger: logger, Name: path})
	if err != nil {
		reportError(res.Bag, file, err)
		return res, nil
	}
	res.Stream = st
	if width > 0 {
		res.Blocks = format.Layout(st.IR, width)
	}
	return res, nil
}
