package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List available sources and configured filters",
		Args:  cobra.NoArgs,
		RunE:  runSources,
	}
}

func runSources(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Location: %s\n\n", e.loader.Fetcher().Location())

	ids, err := e.loader.Sources(ctx)
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}
	if ids == nil {
		fmt.Fprintln(out, "This location cannot be listed; pass --source names directly.")
	} else {
		fmt.Fprintf(out, "%-24s  %s\n", "Source", "Items")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		for _, id := range ids {
			res, err := e.loader.Load(ctx, id)
			count := fmt.Sprint(res.Len())
			if err != nil {
				count = "error: " + err.Error()
			}
			fmt.Fprintf(out, "%-24s  %s\n", id, count)
		}
		fmt.Fprintf(out, "\n%d sources\n", len(ids))
	}

	filters := e.filters(ctx)
	if len(filters) == 0 {
		return nil
	}
	fmt.Fprintf(out, "\n%-24s  %s\n", "Filter", "Sources")
	fmt.Fprintln(out, strings.Repeat("─", 40))
	for _, f := range filters {
		fmt.Fprintf(out, "%-24s  %s\n", f.Label, strings.Join(f.Sources, " "))
	}
	return nil
}
