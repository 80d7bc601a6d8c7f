package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"romsort/internal/report"
	"romsort/internal/sorter"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Run the sorting pipeline (same as running romsort with no subcommand)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(ctx, cmd)
		},
	}
}

func runSort(ctx *commandContext, cmd *cobra.Command) error {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	summary, err := sorter.New(cfg, logger, ctx.dryRun()).Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ctx.dryRun() {
		fmt.Fprintln(out, "Dry run complete; no files were changed.")
	} else {
		fmt.Fprintln(out, "Run complete.")
	}
	fmt.Fprintln(out, renderRows([]string{"Result", "Count"}, report.SummaryRows(*summary)))
	return nil
}
