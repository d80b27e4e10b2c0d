package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"unfmt/internal/diag"
	"unfmt/internal/format"
	"unfmt/internal/ir"
	"unfmt/internal/observ"
	"unfmt/internal/source"
)

// ErrNoSources is returned when the given paths contain no Rust files.
var ErrNoSources = errors.New("no .rs files found")

// DefaultExclude lists directory names skipped while walking a tree.
var DefaultExclude = []string{"tests", ".git", "target"}

// FormatOptions configures code formatting.
type FormatOptions struct {
	Width  int
	Check  bool
	Stdout bool
	// Verify re-parses every output and fails the file on a mismatch.
	Verify bool
	Jobs   int
	// Exclude overrides DefaultExclude when non-nil.
	Exclude        []string
	MaxDiagnostics int
	Cache          *DiskCache // nil: без кэша
	Logger         *log.Logger
	Progress       ProgressSink
	Timings        bool
}

// FormatStats carries the per-file numbers of a rewrite.
type FormatStats struct {
	Lines       int
	Overlong    int
	Widest      int
	Tokens      int
	Events      int
	Degradation ir.Degradation
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Stats     FormatStats
	FileSet   *source.FileSet
	Bag       *diag.Bag
	Timing    *observ.Report
}

// FormatPaths formats provided files or directories (recursively collecting .rs files).
// When opts.Check is true, files are not modified; Changed indicates whether formatting
// would update the file contents. When opts.Stdout is true, formatted content is returned
// in the results without touching files on disk. Per-file failures are reported in
// FormatResult.Err; the returned error is reserved for collection and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Width == 0 {
		opts.Width = format.DefaultWidth
	}
	if opts.Width < 1 {
		return nil, fmt.Errorf("%w: got %d", format.ErrBadWidth, opts.Width)
	}

	files, err := CollectSourceFiles(ctx, paths, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	return runParallel(ctx, files, opts.Jobs, func(ctx context.Context, _ int, path string) FormatResult {
		return formatSingleFile(ctx, path, opts)
	})
}

func formatSingleFile(ctx context.Context, path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}
	begin := time.Now()
	fail := func(stage Stage, err error) FormatResult {
		result.Err = err
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err})
		if opts.Logger != nil {
			opts.Logger.Debug("file failed", "path", path, "stage", stage, "err", err)
		}
		return result
	}

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	// #nosec G304 -- path comes from the caller's file list
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(StageRead, err)
	}
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddBytes(path, data))
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 64
	}
	result.FileSet = fileSet
	result.Bag = diag.NewBag(maxDiag)

	start := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageUnformat, Status: StatusWorking})
	out, cached, err := unformatCached(ctx, file, opts, &result)
	if err != nil {
		reportError(result.Bag, file, err)
		return fail(StageUnformat, err)
	}
	status := StatusDone
	if cached {
		status = StatusCached
	}
	emit(opts.Progress, Event{File: path, Stage: StageUnformat, Status: status, Elapsed: time.Since(start)})

	if opts.Verify {
		emit(opts.Progress, Event{File: path, Stage: StageVerify, Status: StatusWorking})
		if err := format.CheckRoundTrip(ctx, file.Content, out); err != nil {
			reportError(result.Bag, file, err)
			return fail(StageVerify, err)
		}
		emit(opts.Progress, Event{File: path, Stage: StageVerify, Status: StatusDone})
	}

	reportOverlong(result.Bag, fileSet, path, out, opts.Width)
	if result.Stats.Degradation != ir.KeptAll {
		result.Bag.Add(diag.New(diag.SevInfo, diag.FmtEventsDropped, source.Span{File: file.ID},
			"padding limited: "+result.Stats.Degradation.String()))
	}

	if file.HadBOM() {
		out = append(slices.Clip(source.BOM), out...)
	}
	changed := !bytes.Equal(data, out)
	result.Changed = changed

	switch {
	case opts.Check:
		if changed {
			result.Bag.Add(diag.New(diag.SevInfo, diag.FmtNotFormatted, source.Span{File: file.ID}, "file would be rewritten"))
		}
	case opts.Stdout:
		result.Formatted = out
	case changed:
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		if err := writePreservingMode(path, out); err != nil {
			return fail(StageWrite, err)
		}
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone})
	}
	emit(opts.Progress, Event{File: path, Stage: StageFinish, Status: StatusDone, Elapsed: time.Since(begin)})
	return result
}

// unformatCached возвращает результат из кэша или считает его заново.
func unformatCached(ctx context.Context, file *source.File, opts FormatOptions, result *FormatResult) (out []byte, cached bool, err error) {
	key := CacheKey(file.Content, opts.Width)
	var payload DiskPayload
	if ok, cerr := opts.Cache.Get(key, &payload); cerr != nil {
		if opts.Logger != nil {
			opts.Logger.Warn("cache read failed", "path", file.Path, "err", cerr)
		}
	} else if ok {
		result.Cached = true
		result.Stats = FormatStats{
			Lines:       payload.Lines,
			Overlong:    payload.Overlong,
			Widest:      payload.Widest,
			Tokens:      payload.Tokens,
			Events:      payload.Events,
			Degradation: ir.Degradation(payload.Degradation),
		}
		return payload.Output, true, nil
	}

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	res, err := format.Unformat(ctx, file.Content, format.Options{
		Width:  opts.Width,
		Logger: opts.Logger,
		Timer:  timer,
		Name:   file.Path,
	})
	if err != nil {
		return nil, false, err
	}
	if timer != nil {
		report := timer.Report()
		result.Timing = &report
	}
	result.Stats = FormatStats{
		Lines:       res.Lines,
		Overlong:    res.Overlong,
		Widest:      res.Widest,
		Tokens:      res.Tokens,
		Events:      res.Events,
		Degradation: res.Degradation,
	}
	if opts.Cache != nil {
		err := opts.Cache.Put(key, &DiskPayload{
			Output:      res.Output,
			Lines:       res.Lines,
			Overlong:    res.Overlong,
			Widest:      res.Widest,
			Tokens:      res.Tokens,
			Events:      res.Events,
			Degradation: uint8(res.Degradation),
		})
		if err != nil && opts.Logger != nil {
			opts.Logger.Warn("cache write failed", "path", file.Path, "err", err)
		}
	}
	return res.Output, false, nil
}

func writePreservingMode(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, content, mode.Perm())
}

// CollectSourceFiles expands paths into a sorted, de-duplicated list of .rs
// files. Directories named in exclude (DefaultExclude when nil) are skipped
// while walking; explicitly named files are always kept.
func CollectSourceFiles(ctx context.Context, paths []string, exclude []string) ([]string, error) {
	if exclude == nil {
		exclude = DefaultExclude
	}
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if filepath.Ext(p) == ".rs" {
				addFile(p)
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && slices.Contains(exclude, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ".rs" {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return files, nil
}
