package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"armory/internal/classify"
	"armory/internal/corpus"
	"armory/internal/logging"
)

var repairFlags struct {
	inputPath  string
	outputPath string
	policy     string
	normalize  bool
}

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Re-filter listing answers in an existing corpus",
	Long: `Repair loads a tagged corpus, re-extracts the item lists embedded in
inventory listing answers, drops entries the classifier no longer
accepts as weapon bodies, and reassembles the answers in place.

With --normalize, legacy records are first converted to the current
shape: instructions cleared on deterministic task types, sampled
listing task types dropped.`,
	RunE: runRepair,
}

func init() {
	f := repairCmd.Flags()
	f.StringVar(&repairFlags.inputPath, "in", "", "Corpus input path (required)")
	f.StringVarP(&repairFlags.outputPath, "output", "o", "", "Repaired corpus output path (required)")
	f.StringVar(&repairFlags.policy, "policy", "full", "Classification policy: built-in name or YAML path")
	f.BoolVar(&repairFlags.normalize, "normalize", false, "Normalize legacy records before repairing")
	_ = repairCmd.MarkFlagRequired("in")
	_ = repairCmd.MarkFlagRequired("output")
}

func runRepair(cmd *cobra.Command, _ []string) error {
	policy, err := resolvePolicy(repairFlags.policy)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	records, err := corpus.Load(repairFlags.inputPath)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	logger := logging.New("corpus")
	loaded := len(records)

	out := cmd.OutOrStdout()
	if repairFlags.normalize {
		normalized := make([]corpus.Record, 0, len(records))
		dropped := 0
		for _, rec := range records {
			norm, keep := corpus.NormalizeLegacy(rec)
			if !keep {
				dropped++
				continue
			}
			normalized = append(normalized, norm)
		}
		records = normalized
		fmt.Fprintf(out, "Normalized: %d kept, %d dropped\n", len(records), dropped)
	}

	repairer := corpus.NewRepairer(classify.New(policy))
	repaired, rewrites := repairer.RepairAll(records)
	logger.Info("corpus repaired",
		"loaded", loaded, "records", len(repaired), "rewrites", rewrites)

	if err := corpus.Save(repairFlags.outputPath, repaired); err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	fmt.Fprintf(out, "Repaired: %d record(s), %d listing(s) rewritten\n", len(repaired), rewrites)
	fmt.Fprintf(out, "Corpus written to: %s\n", repairFlags.outputPath)
	return nil
}
