package driver

import (
	"bytes"
	"context"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"

	"unfmt/internal/source"
)

type lineInfo struct {
	Start, End uint32 // байтовые смещения без '\n'
	Width      int
}

func splitLines(content []byte) []lineInfo {
	var lines []lineInfo
	var off uint32
	for len(content) > 0 {
		n := bytes.IndexByte(content, '\n')
		line := content
		if n >= 0 {
			line = content[:n]
		}
		l, err := safecast.Conv[uint32](len(line))
		if err != nil {
			break
		}
		lines = append(lines, lineInfo{Start: off, End: off + l, Width: runewidth.StringWidth(string(line))})
		if n < 0 {
			break
		}
		content = content[n+1:]
		off += l + 1
	}
	return lines
}

// WidthStats summarizes the display widths of a file's lines.
type WidthStats struct {
	Path    string  `json:"path"`
	Lines   int     `json:"lines"`
	Average float64 `json:"average"`
	Max     int     `json:"max"`
	// AtWidth counts lines exactly Width columns wide, Over those wider.
	Width   int   `json:"width,omitempty"`
	AtWidth int   `json:"at_width,omitempty"`
	Over    int   `json:"over,omitempty"`
	Err     error `json:"-"`
}

// MeasureWidths computes line width statistics. A width of zero skips the
// AtWidth/Over counters.
func MeasureWidths(content []byte, width int) WidthStats {
	var st WidthStats
	st.Width = width
	total := 0
	for _, ln := range splitLines(content) {
		st.Lines++
		total += ln.Width
		st.Max = max(st.Max, ln.Width)
		if width > 0 {
			switch {
			case ln.Width == width:
				st.AtWidth++
			case ln.Width > width:
				st.Over++
			}
		}
	}
	if st.Lines > 0 {
		st.Average = float64(total) / float64(st.Lines)
	}
	return st
}

// StatPaths measures every Rust file under paths.
func StatPaths(ctx context.Context, paths []string, width int, exclude []string, jobs int) ([]WidthStats, error) {
	files, err := CollectSourceFiles(ctx, paths, exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	return runParallel(ctx, files, jobs, func(_ context.Context, _ int, path string) WidthStats {
		fs := source.NewFileSet()
		id, err := fs.Load(path)
		if err != nil {
			return WidthStats{Path: path, Err: err}
		}
		st := MeasureWidths(fs.Get(id).Content, width)
		st.Path = path
		return st
	})
}
