package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"romsort/internal/logging"
	"romsort/internal/report"
	"romsort/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Preview the grouping without touching any files",
		Long:  "scan enumerates the source tree, prints every group of release variants, and never mutates the filesystem (the duplicate cleaner does not run).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			// Scan narration goes to stderr and the log file so the
			// listing on stdout stays machine-friendly.
			logger, err := logging.New(logging.Options{Level: cfg.LogLevel, LogFile: cfg.LogFile, Console: os.Stderr})
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}

			info, err := os.Stat(cfg.SourceDir)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("source directory not found: %s", cfg.SourceDir)
			}

			groups, err := scanner.New(logger).Scan(cfg.SourceDir, cfg.ExcludedDirSet(), cfg.ExcludedExtensionSet())
			if err != nil {
				return fmt.Errorf("scan source: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No ROM files found.")
				return nil
			}
			fmt.Fprintln(out, renderRows([]string{"Game", "Ext", "Versions", "Files"}, report.GroupRows(groups)))
			return nil
		},
	}
}
