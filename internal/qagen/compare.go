package qagen

import (
	"fmt"

	"armory/internal/classify"
	"armory/internal/corpus"
)

// similarModels lists lookalike model pairs that the corpus must keep a
// model apart on. The table is fixed; it does not depend on the item
// population.
var similarModels = []struct {
	model1, model2 string
	type1, type2   string
}{
	{"M416", "M417", "突击步枪", "射手步枪"},
	{"M24", "M249", "狙击枪", "轻机枪"},
	{"MK12", "MK14", "射手步枪", "射手步枪"},
	{"P90", "P92", "冲锋枪", "手枪"},
	{"P18C", "P1911", "手枪", "手枪"},
}

// qualityOrderRecords emits both orderings of every distinct tier pair.
// Each answer restates the full chain so the order is learnable from any
// single record.
func (e *Engine) qualityOrderRecords() []corpus.Record {
	var out []corpus.Record
	chain := e.policy.Vocab.QualityChain()
	tiers := e.policy.Vocab.QualityOrder

	for i, hi := range tiers {
		for _, lo := range tiers[i+1:] {
			answer := fmt.Sprintf("%s品质更好。品质从高到低：%s。", hi, chain)
			e.emit(&out, "quality_compare",
				fmt.Sprintf("%s和%s哪个品质更好？", hi, lo), answer)
			e.emit(&out, "quality_compare",
				fmt.Sprintf("%s和%s哪个品质更好？", lo, hi), answer)
		}
	}
	return out
}

// modelComparisonRecords distinguishes model pairs within each subtype.
func (e *Engine) modelComparisonRecords() []corpus.Record {
	var out []corpus.Record

	for _, wtype := range e.idx.Types() {
		models := e.idx.Models(wtype)
		for i, m1 := range models {
			for _, m2 := range models[i+1:] {
				full1 := m1 + wtype
				full2 := m2 + wtype

				e.emit(&out, "model_compare",
					fmt.Sprintf("%s和%s有什么区别？", full1, full2),
					fmt.Sprintf("%s和%s都是%s，但它们是不同的武器型号。", full1, full2, wtype))
				e.emit(&out, "model_compare",
					fmt.Sprintf("%s是%s吗？", full1, full2),
					fmt.Sprintf("不是，%s和%s是两种不同的%s。", full1, full2, wtype))
			}
		}
	}
	return out
}

// typeDifferenceRecords contrasts every populated subtype pair, anchoring
// each side with one concrete model when the subtype has any.
func (e *Engine) typeDifferenceRecords() []corpus.Record {
	var out []corpus.Record
	types := e.idx.Types()

	for i, t1 := range types {
		for _, t2 := range types[i+1:] {
			e.emit(&out, "type_diff",
				fmt.Sprintf("%s和%s有什么区别？", t1, t2),
				fmt.Sprintf("%s和%s是两种不同的武器类型。", t1, t2))

			if models := e.idx.Models(t1); len(models) > 0 {
				full := models[0] + t1
				e.emit(&out, "type_diff",
					fmt.Sprintf("%s是%s还是%s？", full, t1, t2),
					fmt.Sprintf("%s是%s。", full, t1))
			}
			if models := e.idx.Models(t2); len(models) > 0 {
				full := models[0] + t2
				e.emit(&out, "type_diff",
					fmt.Sprintf("%s是%s还是%s？", full, t1, t2),
					fmt.Sprintf("%s是%s。", full, t2))
			}
		}
	}
	return out
}

// similarModelRecords emits the lookalike clarifications.
func (e *Engine) similarModelRecords() []corpus.Record {
	var out []corpus.Record

	for _, p := range similarModels {
		full1 := p.model1 + p.type1
		full2 := p.model2 + p.type2

		if p.type1 == p.type2 {
			e.emit(&out, "similar_clarify",
				fmt.Sprintf("%s和%s是同一种武器吗？", full1, full2),
				fmt.Sprintf("不是，%s和%s是两种不同的%s。", full1, full2, p.type1))
			continue
		}
		e.emit(&out, "similar_clarify",
			fmt.Sprintf("%s和%s是同一种武器吗？", full1, full2),
			fmt.Sprintf("不是，%s是%s，%s是%s。", full1, p.type1, full2, p.type2))
		e.emit(&out, "similar_clarify",
			fmt.Sprintf("%s和%s有什么区别？", full1, full2),
			fmt.Sprintf("%s是%s，%s是%s，它们是不同类型的武器。", full1, p.type1, full2, p.type2))
	}
	return out
}

// comparisonRecords is the grouped-generation comparison block: at most
// one variant, one same-quality, one same-type, and one cross-type
// partner per weapon, all drawn off the seeded RNG.
func (e *Engine) comparisonRecords(w classify.Classification) []corpus.Record {
	var out []corpus.Record
	base := classify.BaseName(w.Name)

	// Partner pools honor the same quality requirement as the population,
	// so an excluded weapon can never resurface as a comparison partner.
	var variants []classify.Classification
	for _, v := range e.idx.ByBase[base] {
		if v.Name != w.Name && e.inPopulation(v) {
			variants = append(variants, v)
		}
	}
	if len(variants) > 0 {
		other := variants[e.rng.Intn(len(variants))]
		e.emit(&out, "variant_compare",
			fmt.Sprintf("%s和%s是同一把枪吗？", w.Name, other.Name),
			fmt.Sprintf("不是，虽然都是%s，但%s是%s品质，%s是%s品质，是不同的武器。",
				base, w.Name, w.Quality, other.Name, other.Quality))
	}

	if other, ok := e.pickPartner(e.idx.ByQuality[w.Quality], w.Name, base); ok {
		e.emit(&out, "same_quality",
			fmt.Sprintf("%s和%s是同一品质吗？", w.Name, other.Name),
			fmt.Sprintf("是的，%s和%s都是%s品质。", w.Name, other.Name, w.Quality))
	}

	if other, ok := e.pickPartner(e.idx.ByType[w.Subtype], w.Name, base); ok {
		e.emit(&out, "same_type",
			fmt.Sprintf("%s和%s是同一类武器吗？", w.Name, other.Name),
			fmt.Sprintf("是的，%s和%s都是%s。", w.Name, other.Name, w.Subtype))
	}

	if others := e.counterTypes(w.Subtype, 1); len(others) > 0 {
		otherType := others[0]
		var guns []classify.Classification
		for _, g := range e.idx.ByType[otherType] {
			if e.inPopulation(g) {
				guns = append(guns, g)
			}
		}
		if len(guns) > 0 {
			other := guns[e.rng.Intn(len(guns))]
			e.emit(&out, "cross_type",
				fmt.Sprintf("%s和%s是同一类武器吗？", w.Name, other.Name),
				fmt.Sprintf("不是，%s是%s，%s是%s。", w.Name, w.Subtype, other.Name, otherType))
		}
	}
	return out
}

// pickPartner samples one population member of the group that is neither
// the weapon itself nor another quality variant of it.
func (e *Engine) pickPartner(group []classify.Classification, name, base string) (classify.Classification, bool) {
	var candidates []classify.Classification
	for _, g := range group {
		if g.Name != name && classify.BaseName(g.Name) != base && e.inPopulation(g) {
			candidates = append(candidates, g)
		}
	}
	if len(candidates) == 0 {
		return classify.Classification{}, false
	}
	return candidates[e.rng.Intn(len(candidates))], true
}
