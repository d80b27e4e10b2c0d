package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"unfmt/internal/driver"
	"unfmt/internal/format"
	"unfmt/internal/ir"
	"unfmt/internal/observ"
	"unfmt/internal/version"
)

func TestParseModes(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := readColorMode("always")
	require.ErrorContains(t, err, "--color")
	require.True(t, shouldUseTUI(uiModeOn))
	require.False(t, shouldUseTUI(uiModeOff))
}

func TestLoggerContext(t *testing.T) {
	require.Same(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	require.Same(t, l, loggerFromContext(ctx))
	loggerFromContext(ctx).Debug("hello", "k", 1)
	require.Contains(t, buf.String(), "hello")
}

func TestRenderFmtJSON(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.rs", Changed: true, Stats: driver.FormatStats{Lines: 3, Widest: 80}, Timing: &observ.Report{TotalMS: 1.5}},
		{Path: "b.rs", Err: errors.New("boom"), Stats: driver.FormatStats{Degradation: ir.DroppedAll}},
	}
	var buf bytes.Buffer
	require.NoError(t, renderFmtJSON(&buf, results, true))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "a.rs", got[0]["path"])
	require.Equal(t, true, got[0]["changed"])
	require.Equal(t, true, got[0]["check"])
	require.InDelta(t, 3, got[0]["lines"], 0)
	require.Equal(t, "none", got[0]["degradation"])
	require.NotNil(t, got[0]["timing"])
	require.Equal(t, "boom", got[1]["error"])
	require.Equal(t, "all events dropped", got[1]["degradation"])

	hasErrors, hasChanges := summarize(results)
	require.True(t, hasErrors)
	require.True(t, hasChanges)
}

func TestPrintTimings(t *testing.T) {
	var buf bytes.Buffer
	printTimings(&buf, "a.rs", &observ.Report{TotalMS: 2, Phases: []observ.PhaseReport{{Name: "parse", DurationMS: 2, Note: "4 events"}}}, false)
	printTimings(&buf, "b.rs", nil, true)
	printTimings(&buf, "c.rs", nil, false)
	out := buf.String()
	require.Contains(t, out, "timings a.rs:")
	require.Contains(t, out, "(4 events)")
	require.Contains(t, out, "timings b.rs: cached")
	require.NotContains(t, out, "c.rs")
}

func TestRenderStatsText(t *testing.T) {
	var buf bytes.Buffer
	renderStatsText(&buf, []driver.WidthStats{
		{Path: "a.rs", Lines: 2, Average: 10, Max: 12, AtWidth: 1},
		{Path: "b.rs", Lines: 2, Average: 20, Max: 30, Over: 1},
		{Path: "c.rs", Err: errors.New("gone")},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "total: 4 lines, avg 15.0, max 30, 1 at width, 1 over", lines[2])
}

func TestPrintBlocks(t *testing.T) {
	res, err := format.Unformat(context.Background(), []byte("fn main(){let x=1;}"), format.Options{Width: 40})
	require.NoError(t, err)
	require.Equal(t, 1, res.Lines)

	st, err := format.BuildStream(context.Background(), []byte("fn main(){let x=1;}"), format.Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, printBlocks(&buf, format.Layout(st.IR, 40), 40))
	require.Equal(t, "   1  40 | fn main(){let _=||();let x=1;if true{};}\n", buf.String())
}

func TestRenderVersion(t *testing.T) {
	info := version.Info{Version: "1.2.3", GoVersion: "go1.25", Platform: "linux/amd64"}

	var buf bytes.Buffer
	require.NoError(t, renderVersionJSON(&buf, info, versionOptions{showHash: true}))
	var payload versionPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Equal(t, "unfmt", payload.Tool)
	require.Equal(t, "1.2.3", payload.Version)
	require.Equal(t, "unknown", payload.GitCommit)
	require.Empty(t, payload.BuildDate)

	buf.Reset()
	renderVersionPretty(&buf, info, versionOptions{showDate: true})
	require.Contains(t, buf.String(), versionTagline)
	require.Contains(t, buf.String(), "built:  unknown")
}
