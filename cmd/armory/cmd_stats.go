package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"armory/internal/corpus"
	"armory/internal/qagen"
)

var statsCmd = &cobra.Command{
	Use:   "stats <corpus-file>",
	Short: "Report record counts and answer polarity for a corpus",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	records, err := corpus.Load(args[0])
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Records: %d\n", len(records))

	counts := corpus.TaskTypeCounts(records)
	taskTypes := make([]string, 0, len(counts))
	for tt := range counts {
		taskTypes = append(taskTypes, tt)
	}
	sort.Strings(taskTypes)
	fmt.Fprintln(out, "Task types:")
	for _, tt := range taskTypes {
		fmt.Fprintf(out, "  %-24s %d\n", tt, counts[tt])
	}

	pol := qagen.Polarity(records)
	fmt.Fprintln(out, "Polarity:")
	fmt.Fprintf(out, "  affirmative  %d (%s)\n", pol.Affirmative, percent(pol.Affirmative, pol.Total))
	fmt.Fprintf(out, "  negative     %d (%s)\n", pol.Negative, percent(pol.Negative, pol.Total))
	fmt.Fprintf(out, "  other        %d (%s)\n", pol.Other, percent(pol.Other, pol.Total))
	return nil
}
