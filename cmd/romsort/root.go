package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dryRunFlag bool

	ctx := newCommandContext(&configFlag, &dryRunFlag)

	rootCmd := &cobra.Command{
		Use:           "romsort",
		Short:         "Sorts and organizes emulator ROMs",
		Long:          "romsort scans a ROM directory, groups release variants of the same game, moves the best-ranked variant to the destination directory, archives the rest, and removes uncompressed duplicates shadowed by a .zip file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(ctx, cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the configuration file (default config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Log intended actions without moving or deleting any files")

	rootCmd.AddCommand(newSortCommand(ctx))
	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
