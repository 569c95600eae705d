package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"armory/internal/corpus"
	"armory/internal/logging"
	"armory/internal/qagen"
	"armory/internal/taxonomy"
)

var generateFlags struct {
	inputPath  string
	outputPath string
	policy     string
	seed       int64
	keepTags   bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize a QA corpus from an item name export",
	Long: `Generate classifies the inventory, indexes the weapon and armor
population, and expands every template family the policy enables into
question/answer records. The result is deduplicated by question,
shuffled with the seed, and written as a JSON array.

The same export, policy, and seed always produce a byte-identical
corpus.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.inputPath, "in", "", "Item name export path (required)")
	f.StringVarP(&generateFlags.outputPath, "output", "o", "", "Corpus output path (required)")
	f.StringVar(&generateFlags.policy, "policy", "full", "Generation policy: built-in name or YAML path")
	f.Int64Var(&generateFlags.seed, "seed", 42, "RNG seed for sampling and the final shuffle")
	f.BoolVar(&generateFlags.keepTags, "keep-tags", false, "Keep task_type tags in the output (default strips them)")
	_ = generateCmd.MarkFlagRequired("in")
	_ = generateCmd.MarkFlagRequired("output")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	policy, err := resolvePolicy(generateFlags.policy)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger := logging.New("qagen")

	items, stats, err := classifyInventory(generateFlags.inputPath, policy)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	idx := taxonomy.Build(items)
	logger.Info("population indexed",
		"policy", policy.Name, "items", stats.Total,
		"weapons", len(idx.Weapons), "armor", len(idx.Armor), "excluded", idx.Excluded)

	engine := qagen.New(idx, policy, generateFlags.seed)
	records := engine.Generate()
	kept, dropped := qagen.Dedup(records)
	corpus.Shuffle(kept, generateFlags.seed)

	if generateFlags.keepTags {
		err = corpus.Save(generateFlags.outputPath, kept)
	} else {
		err = corpus.SaveStrict(generateFlags.outputPath, kept)
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Records per family:")
	counts := engine.Counts()
	families := make([]string, 0, len(counts))
	for family := range counts {
		families = append(families, family)
	}
	sort.Strings(families)
	for _, family := range families {
		fmt.Fprintf(out, "  %-24s %d\n", family, counts[family])
	}

	fmt.Fprintf(out, "\nGenerated: %d\n", len(records))
	fmt.Fprintf(out, "Deduplicated: %d kept, %d dropped\n", len(kept), dropped)

	pol := qagen.Polarity(kept)
	fmt.Fprintf(out, "Polarity: affirmative %d (%s), negative %d (%s), other %d (%s)\n",
		pol.Affirmative, percent(pol.Affirmative, pol.Total),
		pol.Negative, percent(pol.Negative, pol.Total),
		pol.Other, percent(pol.Other, pol.Total))
	fmt.Fprintf(out, "Corpus written to: %s\n", generateFlags.outputPath)
	return nil
}
