package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"unfmt/internal/driver"
	"unfmt/internal/format"
)

const configFileName = "unfmt.toml"

type projectConfig struct {
	Unfmt unfmtConfig `toml:"unfmt"`
}

type unfmtConfig struct {
	Width   int      `toml:"width"`
	Jobs    int      `toml:"jobs"`
	Exclude []string `toml:"exclude"`
	Cache   bool     `toml:"cache"`
}

// settings are the effective options after defaults, unfmt.toml and flags.
type settings struct {
	Width   int
	Jobs    int
	Exclude []string
	Cache   bool
	Source  string // путь к unfmt.toml или ""
}

func defaultSettings() settings {
	return settings{
		Width:   format.DefaultWidth,
		Exclude: slices.Clone(driver.DefaultExclude),
		Cache:   true,
	}
}

// findConfig walks up from startDir looking for unfmt.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig applies the keys defined in path on top of base.
func loadConfig(path string, base settings) (settings, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	out := base
	out.Source = path
	if meta.IsDefined("unfmt", "width") {
		if cfg.Unfmt.Width < 1 {
			return base, fmt.Errorf("%s: [unfmt].width must be at least 1, got %d", path, cfg.Unfmt.Width)
		}
		out.Width = cfg.Unfmt.Width
	}
	if meta.IsDefined("unfmt", "jobs") {
		if cfg.Unfmt.Jobs < 0 {
			return base, fmt.Errorf("%s: [unfmt].jobs must not be negative, got %d", path, cfg.Unfmt.Jobs)
		}
		out.Jobs = cfg.Unfmt.Jobs
	}
	if meta.IsDefined("unfmt", "exclude") {
		out.Exclude = cfg.Unfmt.Exclude
		if out.Exclude == nil {
			out.Exclude = []string{}
		}
	}
	if meta.IsDefined("unfmt", "cache") {
		out.Cache = cfg.Unfmt.Cache
	}
	return out, nil
}

// configStartDir returns the directory the config search starts from.
func configStartDir(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	p := paths[0]
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		return filepath.Dir(p)
	}
	return p
}

// resolveSettings merges defaults, the nearest unfmt.toml and explicitly set
// flags (width, jobs, no-cache) of cmd.
func resolveSettings(cmd *cobra.Command, paths []string) (settings, error) {
	s := defaultSettings()
	path, ok, err := findConfig(configStartDir(paths))
	if err != nil {
		return s, err
	}
	if ok {
		if s, err = loadConfig(path, s); err != nil {
			return s, err
		}
	}

	flags := cmd.Flags()
	if flags.Lookup("width") != nil && flags.Changed("width") {
		if s.Width, err = flags.GetInt("width"); err != nil {
			return s, err
		}
		if s.Width < 1 {
			return s, fmt.Errorf("--width must be at least 1, got %d", s.Width)
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if s.Jobs, err = flags.GetInt("jobs"); err != nil {
			return s, err
		}
		if s.Jobs < 0 {
			return s, fmt.Errorf("--jobs must not be negative, got %d", s.Jobs)
		}
	}
	if flags.Lookup("no-cache") != nil {
		noCache, err := flags.GetBool("no-cache")
		if err != nil {
			return s, err
		}
		if noCache {
			s.Cache = false
		}
	}
	return s, nil
}
