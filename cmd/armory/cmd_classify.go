package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"armory/internal/logging"
)

var classifyFlags struct {
	policy     string
	outputPath string
	flagged    bool
}

var classifyCmd = &cobra.Command{
	Use:   "classify <inventory-file>",
	Short: "Classify an item name export and report category counts",
	Long: `Classify reads a newline-delimited item name export, runs every name
through the policy's rule chain, and prints category counts plus the
items that fuzzy boundary rules decided. Use -o to write the full
classification table as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	f := classifyCmd.Flags()
	f.StringVar(&classifyFlags.policy, "policy", "full", "Classification policy: built-in name or YAML path")
	f.StringVarP(&classifyFlags.outputPath, "output", "o", "", "Write classification table JSON to this path")
	f.BoolVar(&classifyFlags.flagged, "flagged", false, "List only heuristic-flagged items")
}

func runClassify(cmd *cobra.Command, args []string) error {
	policy, err := resolvePolicy(classifyFlags.policy)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	items, stats, err := classifyInventory(args[0], policy)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	logging.New("classify").Info("inventory classified",
		"policy", policy.Name, "items", stats.Total, "flagged", stats.Flagged)

	out := cmd.OutOrStdout()
	if classifyFlags.flagged {
		for _, it := range items {
			if it.Heuristic {
				fmt.Fprintf(out, "%s\t%s\t%s\n", it.Name, it.Category, it.Rule)
			}
		}
		return writeClassifyOutput(items)
	}

	fmt.Fprintf(out, "Items:       %d\n", stats.Total)
	fmt.Fprintf(out, "Weapons:     %d\n", stats.Weapons)
	fmt.Fprintf(out, "Armor:       %d\n", stats.Armor)
	fmt.Fprintf(out, "Accessories: %d\n", stats.Accessories)
	fmt.Fprintf(out, "Ammunition:  %d\n", stats.Ammunition)
	fmt.Fprintf(out, "Unknown:     %d\n", stats.Unknown)
	if stats.Flagged > 0 {
		fmt.Fprintf(out, "\n%d item(s) decided by fuzzy rules; review with --flagged:\n", stats.Flagged)
		for _, it := range items {
			if it.Heuristic {
				fmt.Fprintf(out, "  %s (%s, rule %s)\n", it.Name, it.Category, it.Rule)
			}
		}
	}
	return writeClassifyOutput(items)
}

func writeClassifyOutput(items any) error {
	if classifyFlags.outputPath == "" {
		return nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("classify: marshal table: %w", err)
	}
	if err := os.WriteFile(classifyFlags.outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("classify: write table: %w", err)
	}
	return nil
}
