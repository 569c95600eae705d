package qagen

import (
	"fmt"
	"strings"

	"armory/internal/classify"
	"armory/internal/corpus"
	"armory/internal/taxonomy"
)

// armorLevelComparePairs caps the level comparison family per armor type.
const armorLevelComparePairs = 100

func (e *Engine) armorRecords() []corpus.Record {
	var out []corpus.Record
	out = append(out, e.armorLevelRecords()...)
	out = append(out, e.armorQualityRecords()...)
	out = append(out, e.armorTypeRecords()...)
	out = append(out, e.armorLevelConfirmRecords()...)
	out = append(out, e.armorQualityConfirmRecords()...)
	out = append(out, e.armorLevelCompareRecords()...)
	out = append(out, e.armorQualityCompareRecords()...)
	out = append(out, e.armorDefinitionRecords()...)
	return out
}

func (e *Engine) armorLevelRecords() []corpus.Record {
	var out []corpus.Record
	for _, a := range e.idx.Armor {
		e.emit(&out, "armor_level",
			fmt.Sprintf("%s是几级%s？", a.Name, a.Subtype),
			fmt.Sprintf("%s是%d级%s。", a.Name, a.Level, a.Subtype))
		e.emit(&out, "armor_level",
			fmt.Sprintf("%s是什么等级？", a.Name),
			fmt.Sprintf("%s是%d级。", a.Name, a.Level))
	}
	return out
}

// armorQualityRecords answers the quality query for every armor piece.
// Unmarked armor is plain quality, not unknown.
func (e *Engine) armorQualityRecords() []corpus.Record {
	var out []corpus.Record
	for _, a := range e.idx.Armor {
		answer := fmt.Sprintf("%s是普通品质。", a.Name)
		if a.Quality != "" {
			answer = fmt.Sprintf("%s是%s品质。", a.Name, a.Quality)
		}
		e.emit(&out, "armor_quality",
			fmt.Sprintf("%s是什么品质？", a.Name), answer)
	}
	return out
}

func (e *Engine) armorTypeRecords() []corpus.Record {
	var out []corpus.Record
	for _, a := range e.idx.Armor {
		other := e.otherArmorType(a.Subtype)

		e.emit(&out, "armor_type",
			fmt.Sprintf("%s是头盔还是防弹衣？", a.Name),
			fmt.Sprintf("%s是%s。", a.Name, a.Subtype))
		e.emit(&out, "armor_type",
			fmt.Sprintf("%s是%s吗？", a.Name, a.Subtype),
			fmt.Sprintf("是的，%s是%s。", a.Name, a.Subtype))
		if other != "" {
			e.emit(&out, "armor_type",
				fmt.Sprintf("%s是%s吗？", a.Name, other),
				fmt.Sprintf("不是，%s是%s，不是%s。", a.Name, a.Subtype, other))
		}
	}
	return out
}

func (e *Engine) armorLevelConfirmRecords() []corpus.Record {
	var out []corpus.Record
	for _, a := range e.idx.Armor {
		e.emit(&out, "armor_level_confirm",
			fmt.Sprintf("%s是%d级%s吗？", a.Name, a.Level, a.Subtype),
			fmt.Sprintf("是的，%s是%d级%s。", a.Name, a.Level, a.Subtype))

		picked := 0
		for _, wrong := range e.policy.Vocab.ArmorLevels {
			if wrong == a.Level || picked >= 2 {
				continue
			}
			picked++
			e.emit(&out, "armor_level_confirm",
				fmt.Sprintf("%s是%d级%s吗？", a.Name, wrong, a.Subtype),
				fmt.Sprintf("不是，%s是%d级%s。", a.Name, a.Level, a.Subtype))
		}
	}
	return out
}

func (e *Engine) armorQualityConfirmRecords() []corpus.Record {
	var out []corpus.Record
	for _, a := range e.idx.Armor {
		if a.Quality == "" {
			continue
		}
		e.emit(&out, "armor_quality_confirm",
			fmt.Sprintf("%s是%s品质吗？", a.Name, a.Quality),
			fmt.Sprintf("是的，%s是%s品质。", a.Name, a.Quality))

		for _, wrong := range e.policy.Vocab.ArmorQualities {
			if wrong == a.Quality {
				continue
			}
			e.emit(&out, "armor_quality_confirm",
				fmt.Sprintf("%s是%s品质吗？", a.Name, wrong),
				fmt.Sprintf("不是，%s是%s品质，不是%s品质。", a.Name, a.Quality, wrong))
		}
	}
	return out
}

// armorLevelCompareRecords compares levels within each armor type, in
// population order, capped so large inventories do not swamp the corpus.
func (e *Engine) armorLevelCompareRecords() []corpus.Record {
	var out []corpus.Record
	for _, atype := range e.idx.ArmorTypes() {
		group := e.idx.ArmorByType[atype]
		pairs := 0
	group:
		for i, a1 := range group {
			for _, a2 := range group[i+1:] {
				if a1.Level == a2.Level {
					continue
				}
				if pairs >= armorLevelComparePairs {
					break group
				}
				higher := a1.Name
				if a2.Level > a1.Level {
					higher = a2.Name
				}
				e.emit(&out, "armor_level_compare",
					fmt.Sprintf("%s和%s哪个等级更高？", a1.Name, a2.Name),
					fmt.Sprintf("%s等级更高。", higher))
				pairs++
			}
		}
	}
	return out
}

// armorQualityCompareRecords compares quality-marked armor of the same
// type and level.
func (e *Engine) armorQualityCompareRecords() []corpus.Record {
	var out []corpus.Record
	for _, level := range e.policy.Vocab.ArmorLevels {
		for _, atype := range e.idx.ArmorTypes() {
			var marked []classify.Classification
			for _, a := range e.idx.ArmorByTypeLevel[taxonomy.TypeLevel{Type: atype, Level: level}] {
				if a.Quality != "" {
					marked = append(marked, a)
				}
			}
			for i, a1 := range marked {
				for _, a2 := range marked[i+1:] {
					if a1.Quality == a2.Quality {
						continue
					}
					better := a1.Name
					if e.policy.Vocab.CompareQuality(a2.Quality, a1.Quality) > 0 {
						better = a2.Name
					}
					e.emit(&out, "armor_quality_compare",
						fmt.Sprintf("%s和%s哪个品质更好？", a1.Name, a2.Name),
						fmt.Sprintf("%s品质更好。", better))
				}
			}
		}
	}
	return out
}

func (e *Engine) armorDefinitionRecords() []corpus.Record {
	var out []corpus.Record
	types := e.policy.Vocab.ArmorTypes
	if len(types) == 0 {
		return nil
	}
	joined := strings.Join(types, "和")

	e.emit(&out, "armor_definition",
		"武器库有哪些防具类型？",
		fmt.Sprintf("武器库中的防具类型包括：%s。", joined))
	e.emit(&out, "armor_definition",
		"防具有哪些种类？",
		fmt.Sprintf("防具分为%s种：%s。", chineseCount(len(types)), joined))

	for _, atype := range types {
		levels := e.idx.ArmorLevels(atype)
		if len(levels) == 0 {
			continue
		}
		e.emit(&out, "armor_definition",
			fmt.Sprintf("%s有哪些等级？", atype),
			fmt.Sprintf("%s有%d级到%d级。", atype, levels[0], levels[len(levels)-1]))
	}

	if len(e.policy.Vocab.ArmorQualities) > 0 {
		e.emit(&out, "armor_definition",
			"防具有哪些品质？",
			fmt.Sprintf("防具品质从高到低为：%s。", strings.Join(e.policy.Vocab.ArmorQualities, " > ")))
	}
	return out
}

func (e *Engine) otherArmorType(own string) string {
	for _, t := range e.policy.Vocab.ArmorTypes {
		if t != own {
			return t
		}
	}
	return ""
}

// chineseCount renders small counts the way the definition answers phrase
// them.
func chineseCount(n int) string {
	digits := []string{"零", "一", "两", "三", "四", "五", "六", "七", "八", "九"}
	if n >= 0 && n < len(digits) {
		return digits[n]
	}
	return fmt.Sprintf("%d", n)
}
