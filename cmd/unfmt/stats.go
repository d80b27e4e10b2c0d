package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"unfmt/internal/driver"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] <path> [path...]",
	Short: "Report line width statistics of Rust files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("width", 80, "count lines at and above this width")
	statsCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	statsCmd.Flags().String("format", "text", "output format (text|json)")
}

func runStats(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	cfg, err := resolveSettings(cmd, args)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	stats, err := driver.StatPaths(cmd.Context(), args, cfg.Width, cfg.Exclude, cfg.Jobs)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	for _, st := range stats {
		if st.Err != nil {
			fmt.Fprintf(os.Stderr, "stats: %s: %v\n", st.Path, st.Err)
		}
	}

	switch outputFormat {
	case "text":
		renderStatsText(os.Stdout, stats)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	default:
		return fmt.Errorf("stats: unsupported output format %q", outputFormat)
	}
}

func renderStatsText(w io.Writer, stats []driver.WidthStats) {
	var total driver.WidthStats
	sum := 0.0
	for _, st := range stats {
		if st.Err != nil {
			continue
		}
		fmt.Fprintf(w, "%s: %d lines, avg %.1f, max %d, %d at width, %d over\n",
			st.Path, st.Lines, st.Average, st.Max, st.AtWidth, st.Over)
		total.Lines += st.Lines
		total.AtWidth += st.AtWidth
		total.Over += st.Over
		total.Max = max(total.Max, st.Max)
		sum += st.Average * float64(st.Lines)
	}
	if total.Lines > 0 {
		total.Average = sum / float64(total.Lines)
	}
	fmt.Fprintf(w, "total: %d lines, avg %.1f, max %d, %d at width, %d over\n",
		total.Lines, total.Average, total.Max, total.AtWidth, total.Over)
}
