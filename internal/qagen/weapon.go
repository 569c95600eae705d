package qagen

import (
	"fmt"

	"armory/internal/classify"
	"armory/internal/corpus"
)

// attributeRecords emits the direct attribute queries for one weapon.
// Quality phrasings are skipped when the name carries no quality tier.
func (e *Engine) attributeRecords(w classify.Classification) []corpus.Record {
	var out []corpus.Record

	if w.Quality != "" {
		e.emit(&out, "single_quality",
			fmt.Sprintf("%s是什么品质？", w.Name),
			fmt.Sprintf("%s是%s品质。", w.Name, w.Quality))
		e.emit(&out, "single_quality",
			fmt.Sprintf("%s的品质是什么？", w.Name),
			fmt.Sprintf("%s的品质是%s。", w.Name, w.Quality))
	}

	e.emit(&out, "single_type",
		fmt.Sprintf("%s属于什么类型？", w.Name),
		fmt.Sprintf("%s属于%s。", w.Name, w.Subtype))
	e.emit(&out, "single_type",
		fmt.Sprintf("%s是什么类型的武器？", w.Name),
		fmt.Sprintf("%s是%s。", w.Name, w.Subtype))
	e.emit(&out, "single_type",
		fmt.Sprintf("%s是哪种武器？", w.Name),
		fmt.Sprintf("%s是%s。", w.Name, w.Subtype))

	if w.Quality != "" {
		e.emit(&out, "single_combo",
			fmt.Sprintf("%s的信息", w.Name),
			fmt.Sprintf("%s是%s品质的%s。", w.Name, w.Quality, w.Subtype))
		e.emit(&out, "single_combo",
			fmt.Sprintf("介绍一下%s", w.Name),
			fmt.Sprintf("%s是%s品质的%s。", w.Name, w.Quality, w.Subtype))
	}
	return out
}

// typeConfirmRecords pairs one affirmation with counter-examples drawn
// from the other subtypes. Counter-example selection is deterministic
// head-of-list unless the policy asks for sampling.
func (e *Engine) typeConfirmRecords(w classify.Classification) []corpus.Record {
	var out []corpus.Record

	e.emit(&out, "type_confirm",
		fmt.Sprintf("%s是%s吗？", w.Name, w.Subtype),
		fmt.Sprintf("是的，%s是%s。", w.Name, w.Subtype))

	for _, wrong := range e.counterTypes(w.Subtype, e.policy.NegativeTypes) {
		e.emit(&out, "type_negate",
			fmt.Sprintf("%s是%s吗？", w.Name, wrong),
			fmt.Sprintf("不是，%s是%s，不是%s。", w.Name, w.Subtype, wrong))
	}
	return out
}

func (e *Engine) qualityConfirmRecords(w classify.Classification) []corpus.Record {
	if w.Quality == "" {
		return nil
	}
	var out []corpus.Record

	e.emit(&out, "quality_confirm",
		fmt.Sprintf("%s是%s品质吗？", w.Name, w.Quality),
		fmt.Sprintf("是的，%s是%s品质。", w.Name, w.Quality))

	var others []string
	for _, q := range e.policy.Vocab.QualityOrder {
		if q != w.Quality {
			others = append(others, q)
		}
	}
	n := e.policy.NegativeQualities
	if n > len(others) {
		n = len(others)
	}
	for _, wrong := range others[:n] {
		e.emit(&out, "quality_negate",
			fmt.Sprintf("%s是%s品质吗？", w.Name, wrong),
			fmt.Sprintf("不是，%s是%s品质，不是%s品质。", w.Name, w.Quality, wrong))
	}
	return out
}

// counterTypes picks n subtypes other than own, from the vocabulary
// order. With sampling enabled the picks come off the seeded RNG.
func (e *Engine) counterTypes(own string, n int) []string {
	var others []string
	for _, t := range e.policy.Vocab.WeaponTypeNames() {
		if t != own {
			others = append(others, t)
		}
	}
	if n > len(others) {
		n = len(others)
	}
	if !e.policy.SampleNegatives {
		return others[:n]
	}
	picked := make([]string, 0, n)
	for _, i := range e.rng.Perm(len(others))[:n] {
		picked = append(picked, others[i])
	}
	return picked
}

// positiveRecords is the grouped-generation positive block: every
// phrasing variant for one weapon, affirmations included.
func (e *Engine) positiveRecords(w classify.Classification) []corpus.Record {
	var out []corpus.Record

	e.emit(&out, "is_weapon",
		fmt.Sprintf("%s是武器吗？", w.Name),
		fmt.Sprintf("是的，%s是武器。", w.Name))

	e.emit(&out, "single_type",
		fmt.Sprintf("%s是什么武器？", w.Name),
		fmt.Sprintf("%s是%s。", w.Name, w.Subtype))
	e.emit(&out, "single_type",
		fmt.Sprintf("%s是什么类型的武器？", w.Name),
		fmt.Sprintf("%s是%s。", w.Name, w.Subtype))
	e.emit(&out, "single_type",
		fmt.Sprintf("%s属于什么类型？", w.Name),
		fmt.Sprintf("%s属于%s类型。", w.Name, w.Subtype))

	e.emit(&out, "single_quality",
		fmt.Sprintf("%s是什么品质？", w.Name),
		fmt.Sprintf("%s是%s品质。", w.Name, w.Quality))
	e.emit(&out, "single_quality",
		fmt.Sprintf("%s的品质是什么？", w.Name),
		fmt.Sprintf("%s的品质是%s。", w.Name, w.Quality))
	e.emit(&out, "single_quality",
		fmt.Sprintf("%s是什么等级？", w.Name),
		fmt.Sprintf("%s是%s品质。", w.Name, w.Quality))

	e.emit(&out, "single_combo",
		fmt.Sprintf("描述%s", w.Name),
		fmt.Sprintf("%s是%s品质的%s。", w.Name, w.Quality, w.Subtype))
	e.emit(&out, "single_combo",
		fmt.Sprintf("介绍一下%s", w.Name),
		fmt.Sprintf("%s是一把%s品质的%s。", w.Name, w.Quality, w.Subtype))

	e.emit(&out, "type_confirm",
		fmt.Sprintf("%s是%s吗？", w.Name, w.Subtype),
		fmt.Sprintf("是的，%s是%s。", w.Name, w.Subtype))
	e.emit(&out, "quality_confirm",
		fmt.Sprintf("%s是%s品质吗？", w.Name, w.Quality),
		fmt.Sprintf("是的，%s是%s品质。", w.Name, w.Quality))

	return out
}

// sampledNegativeRecords is the grouped-generation counterpart of
// typeConfirmRecords, without the affirmation.
func (e *Engine) sampledNegativeRecords(w classify.Classification) []corpus.Record {
	var out []corpus.Record
	for _, wrong := range e.counterTypes(w.Subtype, e.policy.NegativeTypes) {
		e.emit(&out, "type_negate",
			fmt.Sprintf("%s是%s吗？", w.Name, wrong),
			fmt.Sprintf("不是，%s是%s，不是%s。", w.Name, w.Subtype, wrong))
	}
	return out
}
