package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"listone/internal/workflow"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var summary bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "listone [input] [output]",
		Short: "Sort and deduplicate an M3U channel list",
		Long: `listone reads an M3U playlist, files every channel under a fixed category,
drops later duplicates of the same base channel name, and writes the result
sorted by category and name.

Input defaults to listone.m3u8 and output to listone_ordinato.m3u8 in the
working directory unless a configuration file says otherwise.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := positional(args)
			cfg, err := ctx.configFor(input, output)
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			defer ctx.closeLogger()
			reorderer, err := workflow.NewReorderer(cfg, logger)
			if err != nil {
				return err
			}
			res, err := reorderer.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			message := fmt.Sprintf("Wrote %d unique channels to %s", res.Count(), res.Output)
			fmt.Fprintln(out, renderStatusLine(statusOK, message, shouldColorize(out)))
			if summary {
				fmt.Fprintln(out, renderCategoryTable(res.Lineup))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a per-category summary after writing")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func positional(args []string) (input, output string) {
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}
	return input, output
}
