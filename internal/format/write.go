package format

import (
	"io"
)

// Writer accumulates rendered lines and keeps width statistics.
type Writer struct {
	buf      []byte
	limit    int
	lines    int
	overlong int
	widest   int
}

// NewWriter creates a writer. limit is the target width used to count
// overlong lines; zero disables the count.
func NewWriter(limit, sizeHint int) *Writer {
	return &Writer{
		buf:   make([]byte, 0, sizeHint),
		limit: limit,
	}
}

// WriteBlock renders the block and terminates the line.
func (w *Writer) WriteBlock(b Block) {
	for _, rt := range b {
		w.buf = rt.AppendTo(w.buf)
	}
	w.buf = append(w.buf, '\n')

	width := b.Width()
	w.lines++
	w.widest = max(w.widest, width)
	if w.limit > 0 && width > w.limit {
		w.overlong++
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte { return w.buf }

// Lines is the number of blocks written.
func (w *Writer) Lines() int { return w.lines }

// Overlong is the number of lines wider than the limit.
func (w *Writer) Overlong() int { return w.overlong }

// Widest is the width of the widest line.
func (w *Writer) Widest() int { return w.widest }

// WriteTo implements io.WriterTo.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.buf)
	return int64(n), err
}

// Render writes every block followed by a newline.
func Render(dst io.Writer, blocks []Block) error {
	w := NewWriter(0, 0)
	for _, b := range blocks {
		w.WriteBlock(b)
	}
	_, err := w.WriteTo(dst)
	return err
}
