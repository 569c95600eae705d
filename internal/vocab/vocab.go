// Package vocab holds the item-name vocabulary: quality tiers, weapon type
// keyword sets, accessory and ammunition keywords, and armor tables. The
// tables are plain data injected into the classifier at construction, so
// different taxonomy policies can coexist as distinct configurations.
package vocab

import "strings"

// WeaponType is one weapon subtype and the keywords that identify it.
// Most subtypes match on a single token equal to their name; 特殊武器 maps
// to a list of distinct weapon names instead.
type WeaponType struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Vocabulary is the full keyword table set for one taxonomy policy.
// Slice order is significant: weapon types are tried first match wins,
// and QualityOrder runs from the highest tier to the lowest.
type Vocabulary struct {
	QualityOrder      []string     `yaml:"quality_order"`
	WeaponTypes       []WeaponType `yaml:"weapon_types"`
	AccessoryKeywords []string     `yaml:"accessory_keywords"`
	AmmoKeywords      []string     `yaml:"ammo_keywords"`
	ExcludeKeywords   []string     `yaml:"exclude_keywords"`
	ExcludePrefixes   []string     `yaml:"exclude_prefixes"`
	ArmorTypes        []string     `yaml:"armor_types"`
	ArmorQualities    []string     `yaml:"armor_qualities"`
	ArmorLevels       []int        `yaml:"armor_levels"`
}

// QualityRank returns the position of q in the quality order, 0 being the
// highest tier. Returns -1 for a string outside the enumeration.
func (v Vocabulary) QualityRank(q string) int {
	for i, tier := range v.QualityOrder {
		if tier == q {
			return i
		}
	}
	return -1
}

// CompareQuality reports the ordering of two quality tiers: a positive
// result means a outranks b, negative means b outranks a, zero means equal
// rank. Both arguments must be members of the enumeration.
func (v Vocabulary) CompareQuality(a, b string) int {
	ra, rb := v.QualityRank(a), v.QualityRank(b)
	switch {
	case ra < rb:
		return 1
	case ra > rb:
		return -1
	default:
		return 0
	}
}

// QualityChain renders the full order as a display string,
// e.g. "轩辕 > 黑鹰 > … > 破损".
func (v Vocabulary) QualityChain() string {
	return strings.Join(v.QualityOrder, " > ")
}

// WeaponTypeNames returns the subtype names in match order.
func (v Vocabulary) WeaponTypeNames() []string {
	names := make([]string, len(v.WeaponTypes))
	for i, wt := range v.WeaponTypes {
		names[i] = wt.Name
	}
	return names
}

// GunTypeNames returns the subtypes whose sole keyword is their own name.
// These are the tokens stripped during model extraction; multi-keyword
// subtypes (特殊武器) keep their full name as the model.
func (v Vocabulary) GunTypeNames() []string {
	var names []string
	for _, wt := range v.WeaponTypes {
		if len(wt.Keywords) == 1 && wt.Keywords[0] == wt.Name {
			names = append(names, wt.Name)
		}
	}
	return names
}

// IsArmorQuality reports whether q is a valid armor tier.
func (v Vocabulary) IsArmorQuality(q string) bool {
	for _, tier := range v.ArmorQualities {
		if tier == q {
			return true
		}
	}
	return false
}
