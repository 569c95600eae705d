// Package classify turns raw item name strings into structured
// classifications: weapon body, armor, accessory, ammunition, or unknown.
// The decision procedure is an ordered list of predicate rules with
// short-circuit semantics; accessory and ammunition detection always
// precedes weapon matching because several accessory names textually
// contain weapon subtype tokens.
package classify

import (
	"strings"

	"armory/internal/vocab"
)

// Category is the top-level classification bucket.
type Category string

const (
	CategoryWeapon    Category = "weapon"
	CategoryArmor     Category = "armor"
	CategoryAccessory Category = "accessory"
	CategoryAmmo      Category = "ammunition"
	CategoryUnknown   Category = "unknown"
)

// Classification is the sole derived view of one item name. Exactly one
// rule produces it; unknown items are excluded from all downstream
// generation rather than reported as errors.
type Classification struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Subtype     string   `json:"subtype,omitempty"`
	Quality     string   `json:"quality,omitempty"`
	Model       string   `json:"model,omitempty"`
	Level       int      `json:"level,omitempty"`
	Special     bool     `json:"special,omitempty"`
	SpecialName string   `json:"special_name,omitempty"`

	// Rule records which rule fired; Heuristic marks the fuzzy-boundary
	// rules (grenade/launcher, caliber shell) whose matches should be
	// pulled for manual review rather than trusted blindly.
	Rule      string `json:"rule"`
	Heuristic bool   `json:"heuristic,omitempty"`
}

// Rule is one predicate in the classification chain. Match returns nil
// when the rule does not apply; the first non-nil result wins.
type Rule struct {
	ID        string
	Heuristic bool
	Match     func(c *Classifier, name string) *Classification
}

// Classifier applies an ordered rule list built from an injected policy.
// It is immutable after construction and safe for concurrent reads.
type Classifier struct {
	policy *vocab.Policy
	rules  []Rule
}

// New builds a classifier for the given policy.
func New(policy *vocab.Policy) *Classifier {
	c := &Classifier{policy: policy}
	c.rules = defaultRules()
	return c
}

// Policy returns the policy this classifier was built with.
func (c *Classifier) Policy() *vocab.Policy { return c.policy }

// RuleIDs returns the rule chain in evaluation order. The order is part of
// the classifier's contract and is asserted by tests, not re-derived.
func (c *Classifier) RuleIDs() []string {
	ids := make([]string, len(c.rules))
	for i, r := range c.rules {
		ids[i] = r.ID
	}
	return ids
}

// Classify maps a raw name to exactly one Classification.
func (c *Classifier) Classify(name string) Classification {
	for _, r := range c.rules {
		if cl := r.Match(c, name); cl != nil {
			cl.Name = name
			cl.Rule = r.ID
			cl.Heuristic = r.Heuristic
			return *cl
		}
	}
	// The chain ends with a catch-all, so this is unreachable; kept to
	// satisfy the exactly-one-classification contract.
	return Classification{Name: name, Category: CategoryUnknown, Rule: "fallback"}
}

// Stats counts classification outcomes for one population. The classified
// versus excluded split is the primary observability surface of a run.
type Stats struct {
	Total       int `json:"total"`
	Weapons     int `json:"weapons"`
	Armor       int `json:"armor"`
	Accessories int `json:"accessories"`
	Ammunition  int `json:"ammunition"`
	Unknown     int `json:"unknown"`
	Flagged     int `json:"flagged"`
}

// ClassifyAll classifies a population in input order.
func (c *Classifier) ClassifyAll(names []string) ([]Classification, Stats) {
	out := make([]Classification, 0, len(names))
	var st Stats
	for _, name := range names {
		cl := c.Classify(name)
		out = append(out, cl)
		st.Total++
		switch cl.Category {
		case CategoryWeapon:
			st.Weapons++
		case CategoryArmor:
			st.Armor++
		case CategoryAccessory:
			st.Accessories++
		case CategoryAmmo:
			st.Ammunition++
		default:
			st.Unknown++
		}
		if cl.Heuristic {
			st.Flagged++
		}
	}
	return out, st
}

// IsWeaponBody reports whether a name is a weapon body (not an accessory
// or ammunition). With a non-empty subtype the name must also carry that
// subtype's keywords. Used by corpus repair to re-filter listing answers.
func (c *Classifier) IsWeaponBody(name, subtype string) bool {
	if c.isAccessory(name) || c.isAmmo(name) || c.grenadeHeuristic(name) || c.shellHeuristic(name) {
		return false
	}
	if subtype == "" {
		for _, wt := range c.policy.Vocab.WeaponTypes {
			if containsAny(name, wt.Keywords) {
				return true
			}
		}
		return false
	}
	for _, wt := range c.policy.Vocab.WeaponTypes {
		if wt.Name == subtype {
			return containsAny(name, wt.Keywords)
		}
	}
	return strings.Contains(name, subtype)
}

// --- rule predicates ---

func (c *Classifier) isExcluded(name string) bool {
	if containsAny(name, c.policy.Vocab.ExcludeKeywords) {
		return true
	}
	for _, p := range c.policy.Vocab.ExcludePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func (c *Classifier) isAccessory(name string) bool {
	return containsAny(name, c.policy.Vocab.AccessoryKeywords)
}

func (c *Classifier) isAmmo(name string) bool {
	return containsAny(name, c.policy.Vocab.AmmoKeywords)
}

// grenadeHeuristic: 榴弹 without a launcher/cannon qualifier is a
// throwable, not a weapon. A known fuzzy boundary; preserved as-is.
func (c *Classifier) grenadeHeuristic(name string) bool {
	return strings.Contains(name, "榴弹") &&
		!strings.Contains(name, "发射器") &&
		!strings.Contains(name, "炮")
}

// shellHeuristic: 口径霰弹 is shotgun ammunition, distinct from the
// 霰弹枪 weapon pattern. Also a known fuzzy boundary; preserved as-is.
func (c *Classifier) shellHeuristic(name string) bool {
	return strings.Contains(name, "口径霰弹")
}

func (c *Classifier) matchWeapon(name string) *Classification {
	for _, wt := range c.policy.Vocab.WeaponTypes {
		if containsAny(name, wt.Keywords) {
			p := Parse(c.policy.Vocab, name)
			return &Classification{
				Category:    CategoryWeapon,
				Subtype:     wt.Name,
				Quality:     p.Quality,
				Model:       p.Model,
				Special:     p.Special,
				SpecialName: p.SpecialName,
			}
		}
	}
	return nil
}

func (c *Classifier) matchArmor(name string) *Classification {
	if !c.policy.IncludeArmor {
		return nil
	}
	for _, at := range c.policy.Vocab.ArmorTypes {
		// The level marker must bind directly to the armor token
		// (e.g. 3级头盔), not appear elsewhere in the name.
		if !strings.Contains(name, "级"+at) {
			continue
		}
		lvl, ok := extractLevel(name)
		if !ok {
			continue
		}
		cl := &Classification{
			Category: CategoryArmor,
			Subtype:  at,
			Quality:  extractArmorQuality(c.policy.Vocab, name),
			Level:    lvl,
		}
		if i := strings.Index(name, "·"); i >= 0 {
			cl.Special = true
			cl.SpecialName = name[i+len("·"):]
		}
		return cl
	}
	return nil
}

func defaultRules() []Rule {
	return []Rule{
		{ID: "exclude", Match: func(c *Classifier, name string) *Classification {
			if c.isExcluded(name) {
				return &Classification{Category: CategoryUnknown}
			}
			return nil
		}},
		{ID: "accessory", Match: func(c *Classifier, name string) *Classification {
			if c.isAccessory(name) {
				return &Classification{Category: CategoryAccessory}
			}
			return nil
		}},
		{ID: "ammunition", Match: func(c *Classifier, name string) *Classification {
			if c.isAmmo(name) {
				return &Classification{Category: CategoryAmmo}
			}
			return nil
		}},
		{ID: "grenade-no-launcher", Heuristic: true, Match: func(c *Classifier, name string) *Classification {
			if c.grenadeHeuristic(name) {
				return &Classification{Category: CategoryAmmo}
			}
			return nil
		}},
		{ID: "caliber-shell", Heuristic: true, Match: func(c *Classifier, name string) *Classification {
			if c.shellHeuristic(name) {
				return &Classification{Category: CategoryAmmo}
			}
			return nil
		}},
		{ID: "weapon-subtype", Match: func(c *Classifier, name string) *Classification {
			return c.matchWeapon(name)
		}},
		{ID: "armor", Match: func(c *Classifier, name string) *Classification {
			return c.matchArmor(name)
		}},
		{ID: "unmatched", Match: func(_ *Classifier, _ string) *Classification {
			return &Classification{Category: CategoryUnknown}
		}},
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
