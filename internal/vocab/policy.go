package vocab

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var policyFS embed.FS

// Policy is one taxonomy/generation configuration: a vocabulary plus the
// knobs that changed between generator versions. Policies are data, not
// code forks, so several can coexist in one process.
type Policy struct {
	Name  string     `yaml:"name"`
	Vocab Vocabulary `yaml:"vocab"`

	// IncludeArmor enables the armor branch of the classifier and the
	// armor template families.
	IncludeArmor bool `yaml:"include_armor"`
	// RequireQuality drops weapons without a recognized quality tier from
	// the generation population.
	RequireQuality bool `yaml:"require_quality"`
	// NegativeTypes and NegativeQualities bound the counter-examples
	// generated per item.
	NegativeTypes     int `yaml:"negative_types"`
	NegativeQualities int `yaml:"negative_qualities"`
	// SampleNegatives selects counter-examples with the seeded RNG instead
	// of taking the first N in enumeration order.
	SampleNegatives bool `yaml:"sample_negatives"`
	// GroupedGeneration emits records grouped per weapon (positive
	// phrasing block, negatives, bounded comparisons) instead of the
	// family-by-family sweep.
	GroupedGeneration bool `yaml:"grouped_generation"`
}

// LoadPolicy reads a built-in policy by name from the embedded YAML files.
func LoadPolicy(name string) (*Policy, error) {
	data, err := policyFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("vocab: policy %q not found (available: %s): %w",
			name, strings.Join(ListPolicies(), ", "), err)
	}
	return parsePolicy(data, name)
}

// LoadPolicyFile reads a policy from an external YAML file, for policy
// experiments that should not require a rebuild.
func LoadPolicyFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: read policy %q: %w", path, err)
	}
	return parsePolicy(data, path)
}

func parsePolicy(data []byte, src string) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("vocab: parse policy %q: %w", src, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("vocab: policy %q: %w", src, err)
	}
	return &p, nil
}

// ListPolicies returns the names of all embedded policies, sorted.
func ListPolicies() []string {
	entries, _ := policyFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Validate checks the data invariants the classifier relies on: a non-empty
// quality order with no duplicate tiers, and no keyword shared by two
// weapon subtypes (rule order must never decide a weapon match).
func (p *Policy) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(p.Vocab.QualityOrder) == 0 {
		return fmt.Errorf("empty quality order")
	}
	seen := make(map[string]bool, len(p.Vocab.QualityOrder))
	for _, q := range p.Vocab.QualityOrder {
		if seen[q] {
			return fmt.Errorf("duplicate quality tier %q", q)
		}
		seen[q] = true
	}
	for _, tier := range p.Vocab.ArmorQualities {
		if p.Vocab.QualityRank(tier) < 0 {
			return fmt.Errorf("armor quality %q outside quality order", tier)
		}
	}
	owner := make(map[string]string)
	for _, wt := range p.Vocab.WeaponTypes {
		for _, kw := range wt.Keywords {
			if prev, ok := owner[kw]; ok {
				return fmt.Errorf("keyword %q claimed by both %q and %q", kw, prev, wt.Name)
			}
			owner[kw] = wt.Name
		}
	}
	return nil
}
