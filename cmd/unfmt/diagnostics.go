package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"unfmt/internal/diag"
	"unfmt/internal/diagfmt"
	"unfmt/internal/source"
)

// printDiagnostics renders bag to w; with quiet set only errors are shown.
func printDiagnostics(cmd *cobra.Command, w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || fs == nil || bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet && !bag.HasErrors() {
		return
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	mode, err := readColorMode(colorFlag)
	if err != nil {
		mode = uiModeOff
	}
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = colorEnabled(mode, f)
	}
	bag.Sort()
	bag.Dedup()
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   1,
		ShowNotes: true,
	})
}
