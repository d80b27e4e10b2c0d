package diagfmt

import (
	"fmt"
	"io"

	"unfmt/internal/ir"
)

// FormatIRLines prints every rich token on its own line as
// "<element> -> <rendered text>".
func FormatIRLines(w io.Writer, stream ir.IR) error {
	for _, rt := range stream {
		if _, err := fmt.Fprintf(w, "%v -> %s\n", rt, rt.Text()); err != nil {
			return err
		}
	}
	return nil
}
