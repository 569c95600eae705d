package main

import (
	"fmt"
	"strings"

	"armory/internal/classify"
	"armory/internal/inventory"
	"armory/internal/vocab"
)

// resolvePolicy loads a built-in policy by name, or a policy file when
// the argument looks like a path.
func resolvePolicy(name string) (*vocab.Policy, error) {
	if strings.ContainsAny(name, `/\`) || strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return vocab.LoadPolicyFile(name)
	}
	return vocab.LoadPolicy(name)
}

// classifyInventory runs the full read-and-classify front half shared by
// classify and generate.
func classifyInventory(path string, policy *vocab.Policy) ([]classify.Classification, classify.Stats, error) {
	names, err := inventory.ReadFile(path)
	if err != nil {
		return nil, classify.Stats{}, err
	}
	items, stats := classify.New(policy).ClassifyAll(names)
	return items, stats, nil
}

// percent formats n over total for stats output, guarding the empty case.
func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
