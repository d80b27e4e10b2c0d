package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unfmt/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the result cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cache, err := driver.OpenDiskCache("unfmt")
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		loggerFromContext(cmd.Context()).Info("cache cleared", "dir", cache.Dir())
		return nil
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cache, err := driver.OpenDiskCache("unfmt")
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
	cacheCmd.AddCommand(cachePathCmd)
}
