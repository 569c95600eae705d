package corpus

import (
	"strings"

	"armory/internal/classify"
)

// listing prefixes that may precede the item enumeration in a single-type
// listing answer.
var listingPrefixes = []string{"武器库中的", "武器库清单：", "有：", "清单："}

const (
	inventoryHeader     = "武器库清单如下："
	inventoryHeaderName = "武器库清单如下"
)

// Repairer re-validates listing answers against a trusted classifier. A
// corpus produced by an earlier generator may name accessories or
// ammunition in its weapon listings; Repair re-extracts the embedded name
// list, re-filters it, and reassembles the answer in its original
// template shape.
type Repairer struct {
	cls *classify.Classifier
}

// NewRepairer builds a repairer over the given classifier.
func NewRepairer(cls *classify.Classifier) *Repairer {
	return &Repairer{cls: cls}
}

// Repair routes a record by its task type. The returned bool reports
// whether a rewrite occurred; records of other task types pass through
// untouched.
func (rp *Repairer) Repair(rec Record) (Record, bool) {
	switch rec.TaskType {
	case "weapon_inventory_query":
		return rp.repairTypeListing(rec)
	case "weapon_inventory_all":
		return rp.repairFullInventory(rec)
	default:
		return rec, false
	}
}

// RepairAll repairs a whole corpus and reports the rewrite count.
func (rp *Repairer) RepairAll(records []Record) ([]Record, int) {
	out := make([]Record, len(records))
	rewritten := 0
	for i, rec := range records {
		fixed, changed := rp.Repair(rec)
		if changed {
			rewritten++
		}
		out[i] = fixed
	}
	return out, rewritten
}

// repairTypeListing fixes a one-line "武器库中的{type}有：…" answer.
func (rp *Repairer) repairTypeListing(rec Record) (Record, bool) {
	subtype := rp.subtypeFromQuestion(rec.Input)
	if subtype == "" {
		return rec, false
	}

	names := extractListedNames(rec.Output)
	filtered := filterNames(rp.cls, names, subtype)
	if len(filtered) == 0 {
		return rec, false
	}

	rebuilt := "武器库中的" + subtype + "有：" + JoinItems(filtered)
	if rebuilt == rec.Output {
		return rec, false
	}
	rec.Output = rebuilt
	return rec, true
}

// repairFullInventory fixes the multi-line full-inventory answer, one
// "类型：名、名；" line per category.
func (rp *Repairer) repairFullInventory(rec Record) (Record, bool) {
	if !strings.Contains(rec.Output, inventoryHeader) {
		return rec, false
	}

	type section struct {
		category string
		items    []string
	}
	var sections []section

	for _, line := range strings.Split(rec.Output, "\n") {
		category, itemsStr, ok := strings.Cut(line, "：")
		if !ok || strings.TrimSpace(category) == inventoryHeaderName {
			continue
		}
		itemsStr = strings.TrimSuffix(strings.TrimSpace(itemsStr), "；")
		sections = append(sections, section{
			category: strings.TrimSpace(category),
			items:    SplitItems(itemsStr),
		})
	}
	if len(sections) == 0 {
		return rec, false
	}

	changed := false
	parts := []string{inventoryHeader}
	for _, sec := range sections {
		subtype := rp.subtypeFromQuestion(sec.category)
		var kept []string
		for _, item := range sec.items {
			if subtype != "" {
				if rp.cls.IsWeaponBody(item, subtype) {
					kept = append(kept, item)
				}
			} else if rp.cls.IsWeaponBody(item, "") {
				kept = append(kept, item)
			}
		}
		if len(kept) != len(sec.items) {
			changed = true
		}
		if len(kept) > 0 {
			parts = append(parts, sec.category+"："+JoinItems(kept))
		}
	}
	if !changed {
		return rec, false
	}
	rec.Output = strings.Join(parts, "\n")
	return rec, true
}

// subtypeFromQuestion returns the first weapon subtype named in a
// question or category label.
func (rp *Repairer) subtypeFromQuestion(s string) string {
	for _, wt := range rp.cls.Policy().Vocab.WeaponTypes {
		if strings.Contains(s, wt.Name) {
			return wt.Name
		}
	}
	return ""
}

// extractListedNames pulls the enumerated names out of a listing answer,
// dropping any known lead-in prefix first.
func extractListedNames(output string) []string {
	text := output
	for _, prefix := range listingPrefixes {
		if i := strings.Index(text, prefix); i >= 0 {
			text = text[i+len(prefix):]
		}
	}
	return SplitItems(text)
}

func filterNames(cls *classify.Classifier, names []string, subtype string) []string {
	var kept []string
	for _, n := range names {
		if cls.IsWeaponBody(n, subtype) {
			kept = append(kept, n)
		}
	}
	return kept
}

// legacy task types that carry deterministic answers and survive
// normalization; sampled-listing task types are dropped because a partial
// listing cannot be verified independent of its seed.
var legacyKeep = map[string]bool{
	"item_info":       true,
	"quality_compare": true,
}

var legacyDrop = map[string]bool{
	"model_query":    true,
	"category_query": true,
	"quality_query":  true,
	"all_weapons":    true,
}

// NormalizeLegacy converts an old-format record to the current shape:
// instruction cleared, deterministic task types kept, sampled listings
// dropped. The bool reports whether the record survives.
func NormalizeLegacy(rec Record) (Record, bool) {
	switch {
	case legacyKeep[rec.TaskType]:
		rec.Instruction = ""
		return rec, true
	case legacyDrop[rec.TaskType]:
		return Record{}, false
	default:
		return Record{}, false
	}
}
