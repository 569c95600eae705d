// Package taxonomy builds the read-only grouping index over a classified
// item population. The index is built in one pass and never mutated; a
// population change means a rebuild. The template engine treats it purely
// as a lookup source.
package taxonomy

import (
	"sort"

	"armory/internal/classify"
)

// TypeQuality keys the (subtype, quality) groupings.
type TypeQuality struct {
	Type    string
	Quality string
}

// TypeLevel keys the armor (type, level) groupings.
type TypeLevel struct {
	Type  string
	Level int
}

// Index groups one frozen classification set every way the template
// engine needs. Slice values preserve input order; first-seen order of
// keys is recorded so generation sweeps are deterministic.
type Index struct {
	Weapons       []classify.Classification
	ByType        map[string][]classify.Classification
	ByQuality     map[string][]classify.Classification
	ByModel       map[string][]classify.Classification
	ByTypeQuality map[TypeQuality][]classify.Classification
	ByBase        map[string][]classify.Classification

	Armor              []classify.Classification
	ArmorByType        map[string][]classify.Classification
	ArmorByTypeLevel   map[TypeLevel][]classify.Classification
	ArmorByTypeQuality map[TypeQuality][]classify.Classification

	// Excluded counts items that did not enter the index (accessories,
	// ammunition, unknown) — the omission side of the observability
	// counts.
	Excluded int

	typeOrder     []string
	tqOrder       []TypeQuality
	armorTypeOrder []string
}

// Build indexes a classification set. Accessories, ammunition, and
// unknown items are counted and dropped; they never reach a grouping.
func Build(items []classify.Classification) *Index {
	idx := &Index{
		ByType:             make(map[string][]classify.Classification),
		ByQuality:          make(map[string][]classify.Classification),
		ByModel:            make(map[string][]classify.Classification),
		ByTypeQuality:      make(map[TypeQuality][]classify.Classification),
		ByBase:             make(map[string][]classify.Classification),
		ArmorByType:        make(map[string][]classify.Classification),
		ArmorByTypeLevel:   make(map[TypeLevel][]classify.Classification),
		ArmorByTypeQuality: make(map[TypeQuality][]classify.Classification),
	}

	for _, it := range items {
		switch it.Category {
		case classify.CategoryWeapon:
			idx.addWeapon(it)
		case classify.CategoryArmor:
			idx.addArmor(it)
		default:
			idx.Excluded++
		}
	}
	return idx
}

func (idx *Index) addWeapon(it classify.Classification) {
	idx.Weapons = append(idx.Weapons, it)

	if _, seen := idx.ByType[it.Subtype]; !seen {
		idx.typeOrder = append(idx.typeOrder, it.Subtype)
	}
	idx.ByType[it.Subtype] = append(idx.ByType[it.Subtype], it)

	if it.Quality != "" {
		idx.ByQuality[it.Quality] = append(idx.ByQuality[it.Quality], it)
		tq := TypeQuality{it.Subtype, it.Quality}
		if _, seen := idx.ByTypeQuality[tq]; !seen {
			idx.tqOrder = append(idx.tqOrder, tq)
		}
		idx.ByTypeQuality[tq] = append(idx.ByTypeQuality[tq], it)
	}
	if it.Model != "" {
		idx.ByModel[it.Model] = append(idx.ByModel[it.Model], it)
	}
	base := classify.BaseName(it.Name)
	idx.ByBase[base] = append(idx.ByBase[base], it)
}

func (idx *Index) addArmor(it classify.Classification) {
	idx.Armor = append(idx.Armor, it)

	if _, seen := idx.ArmorByType[it.Subtype]; !seen {
		idx.armorTypeOrder = append(idx.armorTypeOrder, it.Subtype)
	}
	idx.ArmorByType[it.Subtype] = append(idx.ArmorByType[it.Subtype], it)
	idx.ArmorByTypeLevel[TypeLevel{it.Subtype, it.Level}] = append(
		idx.ArmorByTypeLevel[TypeLevel{it.Subtype, it.Level}], it)
	if it.Quality != "" {
		idx.ArmorByTypeQuality[TypeQuality{it.Subtype, it.Quality}] = append(
			idx.ArmorByTypeQuality[TypeQuality{it.Subtype, it.Quality}], it)
	}
}

// Types returns the weapon subtypes in first-seen order.
func (idx *Index) Types() []string { return idx.typeOrder }

// TypeQualities returns the populated (subtype, quality) pairs in
// first-seen order.
func (idx *Index) TypeQualities() []TypeQuality { return idx.tqOrder }

// ArmorTypes returns the armor types in first-seen order.
func (idx *Index) ArmorTypes() []string { return idx.armorTypeOrder }

// Models returns the distinct models of one subtype, sorted.
func (idx *Index) Models(subtype string) []string {
	seen := make(map[string]bool)
	var models []string
	for _, it := range idx.ByType[subtype] {
		if it.Model != "" && !seen[it.Model] {
			seen[it.Model] = true
			models = append(models, it.Model)
		}
	}
	sort.Strings(models)
	return models
}

// ArmorLevels returns the populated levels of one armor type, ascending.
func (idx *Index) ArmorLevels(armorType string) []int {
	seen := make(map[int]bool)
	var levels []int
	for _, it := range idx.ArmorByType[armorType] {
		if !seen[it.Level] {
			seen[it.Level] = true
			levels = append(levels, it.Level)
		}
	}
	sort.Ints(levels)
	return levels
}

// Names returns the deduplicated, sorted names of a group. Complete
// listing answers are built from this set and nothing else, so the stated
// count always equals the named set's size.
func Names(items []classify.Classification) []string {
	seen := make(map[string]bool, len(items))
	var names []string
	for _, it := range items {
		if !seen[it.Name] {
			seen[it.Name] = true
			names = append(names, it.Name)
		}
	}
	sort.Strings(names)
	return names
}

// First returns the stable first member of a group: the one whose name
// sorts lowest. Existence answers use it as their concrete example.
func First(items []classify.Classification) (classify.Classification, bool) {
	if len(items) == 0 {
		return classify.Classification{}, false
	}
	best := items[0]
	for _, it := range items[1:] {
		if it.Name < best.Name {
			best = it
		}
	}
	return best, true
}
