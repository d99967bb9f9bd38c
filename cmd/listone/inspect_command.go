package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"listone/internal/channels"
	"listone/internal/lineup"
	"listone/internal/workflow"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var category string
	var showDuplicates bool

	cmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "Show how a playlist would be reorganized without writing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter channels.Category
			if strings.TrimSpace(category) != "" {
				parsed, err := channels.ParseCategory(category)
				if err != nil {
					return err
				}
				filter = parsed
			}

			input, _ := positional(args)
			cfg, err := ctx.configFor(input, "")
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
			res, err := reorderer.Inspect(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine(statusInfo,
				fmt.Sprintf("%s: %d entries parsed, %d unique", res.Input, res.Lineup.Stats.Parsed, res.Count()),
				colorize))

			if filter != "" {
				entries := entriesIn(res.Lineup, filter)
				if len(entries) == 0 {
					fmt.Fprintln(out, renderStatusLine(statusWarn, fmt.Sprintf("no channels filed under %s", filter), colorize))
				} else {
					fmt.Fprintln(out, renderEntryTable(entries))
				}
			} else {
				fmt.Fprintln(out, renderCategoryTable(res.Lineup))
			}

			if showDuplicates && len(res.Lineup.Duplicates) > 0 {
				fmt.Fprintln(out, renderDuplicateTable(res.Lineup.Duplicates))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "List the channels of one category (e.g. SKY_SPORT)")
	cmd.Flags().BoolVar(&showDuplicates, "duplicates", false, "List the entries that would be dropped as duplicates")
	return cmd
}

func entriesIn(l lineup.Lineup, c channels.Category) []lineup.Entry {
	var out []lineup.Entry
	for _, e := range l.Entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}
