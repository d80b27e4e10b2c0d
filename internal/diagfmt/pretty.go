package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"unfmt/internal/diag"
	"unfmt/internal/source"
)

type palette struct {
	sev  map[diag.Severity]*color.Color
	bold *color.Color
	dim  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		bold: color.New(color.Bold),
		dim:  color.New(color.FgBlue),
	}
	all := []*color.Color{p.bold, p.dim}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		sevColor := p.sev[d.Severity]
		if sevColor == nil {
			sevColor = p.bold
		}
		start, _ := fs.Resolve(d.Primary)
		file := fs.Get(d.Primary.File)
		fmt.Fprintf(w, "%s:%s: %s %s: %s\n",
			formatPath(file.Path, opts.PathMode, opts.BaseDir),
			start,
			sevColor.Sprint(d.Severity.String()),
			d.Code.ID(),
			p.bold.Sprint(d.Message),
		)
		writeSnippet(w, fs, d.Primary, int(opts.Context), sevColor, p.dim)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nFile := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  %s %s:%s: %s\n",
				p.dim.Sprint("note:"),
				formatPath(nFile.Path, opts.PathMode, opts.BaseDir),
				nStart,
				n.Msg,
			)
		}
	}
}

func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, context int, mark, gutter *color.Color) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	first := start.Line
	for range max(context, 0) {
		if first <= 1 {
			break
		}
		first--
	}
	numWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", gutter.Sprintf("%*d |", numWidth, ln), file.GetLine(ln))
	}

	line := file.GetLine(start.Line)
	col := min(int(start.Col)-1, len(line))
	pad := runewidth.StringWidth(line[:col])

	width := 1
	if !span.Empty() && end.Line == start.Line && end.Col > start.Col {
		stop := min(int(end.Col)-1, len(line))
		width = max(runewidth.StringWidth(line[col:stop]), 1)
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", gutter.Sprintf("%*s |", numWidth, ""), strings.Repeat(" ", pad), mark.Sprint(underline))
}
