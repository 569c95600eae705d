// Package qagen is the template engine and balance controller: it binds
// taxonomy facts to fixed sentence templates, producing question/answer
// records, then deduplicates and bounds the result. Every answer is a
// pure function of the question given the frozen index and the seed;
// rerunning with the same inputs reproduces the corpus byte for byte.
package qagen

import (
	"math/rand"

	"armory/internal/classify"
	"armory/internal/corpus"
	"armory/internal/taxonomy"
	"armory/internal/vocab"
)

// Engine generates QA records from a frozen taxonomy index under one
// policy. All sampling goes through the single seeded RNG; a template
// family whose taxonomy slot is empty is skipped, never failed.
type Engine struct {
	idx    *taxonomy.Index
	policy *vocab.Policy
	rng    *rand.Rand
	counts map[string]int
}

// New builds an engine. The seed pins every sampling decision
// (counter-example selection, comparison partners).
func New(idx *taxonomy.Index, policy *vocab.Policy, seed int64) *Engine {
	return &Engine{
		idx:    idx,
		policy: policy,
		rng:    rand.New(rand.NewSource(seed)),
		counts: make(map[string]int),
	}
}

// Counts returns records generated per template family so far.
func (e *Engine) Counts() map[string]int { return e.counts }

// Generate produces the full candidate record stream, before dedup.
func (e *Engine) Generate() []corpus.Record {
	if e.policy.GroupedGeneration {
		return e.generateGrouped()
	}
	return e.generateFamilies()
}

// generateFamilies sweeps the corpus family by family over the whole
// population.
func (e *Engine) generateFamilies() []corpus.Record {
	var out []corpus.Record

	weapons := e.population()
	for _, w := range weapons {
		out = append(out, e.attributeRecords(w)...)
	}
	for _, w := range weapons {
		out = append(out, e.typeConfirmRecords(w)...)
	}
	for _, w := range weapons {
		out = append(out, e.qualityConfirmRecords(w)...)
	}

	out = append(out, e.qualityOrderRecords()...)
	out = append(out, e.modelComparisonRecords()...)
	out = append(out, e.typeDifferenceRecords()...)
	out = append(out, e.similarModelRecords()...)
	out = append(out, e.existenceRecords()...)
	out = append(out, e.typeDefinitionRecords()...)
	out = append(out, e.listingRecords()...)

	if e.policy.IncludeArmor {
		out = append(out, e.armorRecords()...)
	}
	return out
}

// generateGrouped emits records grouped per weapon: the positive phrasing
// block, sampled negatives, and bounded comparisons.
func (e *Engine) generateGrouped() []corpus.Record {
	var out []corpus.Record
	for _, w := range e.population() {
		out = append(out, e.positiveRecords(w)...)
		out = append(out, e.sampledNegativeRecords(w)...)
		out = append(out, e.comparisonRecords(w)...)
	}
	return out
}

// population returns the weapons that enter generation, honoring the
// policy's quality requirement.
func (e *Engine) population() []classify.Classification {
	var out []classify.Classification
	for _, w := range e.idx.Weapons {
		if e.inPopulation(w) {
			out = append(out, w)
		}
	}
	return out
}

// inPopulation reports whether a weapon is part of the generation
// population. Comparison partner pools apply the same gate.
func (e *Engine) inPopulation(w classify.Classification) bool {
	return !e.policy.RequireQuality || w.Quality != ""
}

// presentQualities returns the quality tiers with at least one weapon, in
// rank order.
func (e *Engine) presentQualities() []string {
	var out []string
	for _, q := range e.policy.Vocab.QualityOrder {
		if len(e.idx.ByQuality[q]) > 0 {
			out = append(out, q)
		}
	}
	return out
}

func (e *Engine) emit(out *[]corpus.Record, taskType, input, output string) {
	e.counts[taskType]++
	*out = append(*out, corpus.Record{Input: input, Output: output, TaskType: taskType})
}
