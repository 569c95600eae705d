package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"armory/internal/corpus"
	"armory/internal/logging"
)

var mergeFlags struct {
	outputPath string
	prefer     string
}

var mergeCmd = &cobra.Command{
	Use:   "merge <corpus-a> <corpus-b>",
	Short: "Merge two corpora with deterministic collision handling",
	Long: `Merge combines two corpus files. When both contain the same question,
the record from the preferred side wins and the other is discarded.
Order is preferred-side records first, then the surviving records from
the other side.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	f := mergeCmd.Flags()
	f.StringVarP(&mergeFlags.outputPath, "output", "o", "", "Merged corpus output path (required)")
	f.StringVar(&mergeFlags.prefer, "prefer", "first", "Which side wins collisions: first or second")
	_ = mergeCmd.MarkFlagRequired("output")
}

func runMerge(cmd *cobra.Command, args []string) error {
	primaryPath, secondaryPath := args[0], args[1]
	switch mergeFlags.prefer {
	case "first":
	case "second":
		primaryPath, secondaryPath = secondaryPath, primaryPath
	default:
		return fmt.Errorf("merge: unknown --prefer %q (available: first, second)", mergeFlags.prefer)
	}

	primary, secondary, err := corpus.LoadPair(cmd.Context(), primaryPath, secondaryPath)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	merged, stats := corpus.Merge(primary, secondary)
	logging.New("corpus").Info("corpora merged",
		"primary", primaryPath, "secondary", secondaryPath,
		"records", len(merged), "discarded", stats.Discarded)

	if err := corpus.Save(mergeFlags.outputPath, merged); err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Merged: %d record(s)\n", len(merged))
	fmt.Fprintf(out, "  from %s: %d\n", primaryPath, stats.FromPrimary)
	fmt.Fprintf(out, "  from %s: %d\n", secondaryPath, stats.FromSecondary)
	fmt.Fprintf(out, "  discarded collisions: %d\n", stats.Discarded)
	fmt.Fprintf(out, "Corpus written to: %s\n", mergeFlags.outputPath)
	return nil
}
