package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"unfmt/internal/diagfmt"
	"unfmt/internal/driver"
	"unfmt/internal/format"
)

var irCmd = &cobra.Command{
	Use:   "ir [flags] file.rs",
	Short: "Dump the padded token stream of a Rust file",
	Long: `ir shows the intermediate representation: with --raw one rich token per
line, otherwise the justified lines with their widths.`,
	Args: cobra.ExactArgs(1),
	RunE: runIR,
}

func init() {
	irCmd.Flags().Int("width", 80, "target line width for the packed view")
	irCmd.Flags().Bool("raw", false, "print rich tokens one per line instead of packed lines")
}

func runIR(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	if width < 1 {
		return fmt.Errorf("ir: %w: got %d", format.ErrBadWidth, width)
	}
	if raw {
		width = 0
	}

	res, err := driver.DumpIR(cmd.Context(), args[0], width, loggerFromContext(cmd.Context()))
	if err != nil {
		return fmt.Errorf("ir: %w", err)
	}
	printDiagnostics(cmd, os.Stderr, res.Bag, res.FileSet)
	if res.Stream == nil {
		return fmt.Errorf("ir: %s is not valid Rust", args[0])
	}
	if raw {
		return diagfmt.FormatIRLines(os.Stdout, res.Stream.IR)
	}
	return printBlocks(os.Stdout, res.Blocks, width)
}

// printBlocks prints every line prefixed with its number and width; lines
// off the target width are marked.
func printBlocks(w io.Writer, blocks []format.Block, width int) error {
	for i, b := range blocks {
		bw := b.Width()
		mark := ' '
		if bw != width {
			mark = '*'
		}
		if _, err := fmt.Fprintf(w, "%4d %3d%c| %s\n", i+1, bw, mark, b.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
