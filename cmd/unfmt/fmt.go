package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"unfmt/internal/diagfmt"
	"unfmt/internal/driver"
	"unfmt/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Unformat Rust source files in place",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Int("width", 80, "target line width in columns")
	fmtCmd.Flags().Bool("check", false, "report files that would change without writing them")
	fmtCmd.Flags().Bool("stdout", false, "print unformatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("verify", false, "re-parse every output before accepting it")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	fmtCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	fmtCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	cfg, err := resolveSettings(cmd, args)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	if cfg.Source != "" {
		logger.Debug("loaded config", "path", cfg.Source, "width", cfg.Width, "jobs", cfg.Jobs)
	}

	var cache *driver.DiskCache
	if cfg.Cache {
		cache, err = driver.OpenDiskCache("unfmt")
		if err != nil {
			logger.Warn("result cache disabled", "err", err)
			cache = nil
		}
	}

	opts := driver.FormatOptions{
		Width:          cfg.Width,
		Check:          check,
		Stdout:         writeToStdout,
		Verify:         verify,
		Jobs:           cfg.Jobs,
		Exclude:        cfg.Exclude,
		MaxDiagnostics: maxDiagnostics,
		Cache:          cache,
		Logger:         logger,
		Timings:        timings,
	}

	var results []driver.FormatResult
	useUI := !quiet && !writeToStdout && outputFormat == "text" && shouldUseTUI(mode)
	if useUI {
		files, collectErr := driver.CollectSourceFiles(ctx, args, cfg.Exclude)
		if collectErr != nil {
			return fmt.Errorf("fmt: %w", collectErr)
		}
		useUI = len(files) > 1
		if useUI {
			results, err = runFormatWithUI(ctx, "unfmt", files, args, opts)
		}
	}
	if !useUI {
		results, err = driver.FormatPaths(ctx, args, opts)
	}
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	var hasErrors, hasChanges bool
	switch {
	case outputFormat == "json":
		if err := renderFmtJSON(os.Stdout, results, check); err != nil {
			return err
		}
		hasErrors, hasChanges = summarize(results)
	case writeToStdout:
		hasErrors = renderFmtStdout(cmd, results)
	default:
		hasErrors, hasChanges = renderFmtText(cmd, os.Stdout, results, check, quiet)
	}
	if timings && outputFormat == "text" {
		for _, res := range results {
			printTimings(os.Stderr, res.Path, res.Timing, res.Cached)
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to unformat some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: unformatting changes required")
	}
	return nil
}

func summarize(results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		hasErrors = hasErrors || res.Err != nil
		hasChanges = hasChanges || res.Changed
	}
	return hasErrors, hasChanges
}

func renderFmtStdout(cmd *cobra.Command, results []driver.FormatResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			printDiagnostics(cmd, os.Stderr, res.Bag, res.FileSet)
			continue
		}
		printDiagnostics(cmd, os.Stderr, res.Bag, res.FileSet)
		_, _ = os.Stdout.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(cmd *cobra.Command, out io.Writer, results []driver.FormatResult, check, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			printDiagnostics(cmd, os.Stderr, res.Bag, res.FileSet)
			continue
		}
		printDiagnostics(cmd, os.Stderr, res.Bag, res.FileSet)

		if check {
			if res.Changed {
				hasChanges = true
				if !quiet {
					fmt.Fprintln(out, res.Path)
				}
			}
			continue
		}
		if res.Changed && !quiet {
			fmt.Fprintf(out, "unformatted %s\n", res.Path)
		}
	}
	return hasErrors, hasChanges
}

type fmtJSONResult struct {
	Path        string                     `json:"path"`
	Changed     bool                       `json:"changed"`
	Cached      bool                       `json:"cached"`
	CheckRun    bool                       `json:"check"`
	Error       string                     `json:"error,omitempty"`
	Lines       int                        `json:"lines"`
	Overlong    int                        `json:"overlong"`
	Widest      int                        `json:"widest"`
	Degradation string                     `json:"degradation"`
	Diagnostics *diagfmt.DiagnosticsOutput `json:"diagnostics,omitempty"`
	Timing      *observ.Report             `json:"timing,omitempty"`
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	payload := make([]fmtJSONResult, 0, len(results))
	for _, res := range results {
		jr := fmtJSONResult{
			Path:        res.Path,
			Changed:     res.Changed,
			Cached:      res.Cached,
			CheckRun:    check,
			Lines:       res.Stats.Lines,
			Overlong:    res.Stats.Overlong,
			Widest:      res.Stats.Widest,
			Degradation: res.Stats.Degradation.String(),
			Timing:      res.Timing,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Bag != nil && res.Bag.Len() > 0 {
			d := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
			jr.Diagnostics = &d
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func printTimings(w io.Writer, path string, report *observ.Report, cached bool) {
	if cached {
		fmt.Fprintf(w, "timings %s: cached\n", path)
		return
	}
	if report == nil {
		return
	}
	fmt.Fprintf(w, "timings %s:\n", path)
	for _, ph := range report.Phases {
		fmt.Fprintf(w, "  %-12s %7.2f ms", ph.Name, ph.DurationMS)
		if ph.Note != "" {
			fmt.Fprintf(w, "  (%s)", ph.Note)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  %-12s %7.2f ms\n", "total", report.TotalMS)
}
