package qagen

import (
	"fmt"
	"strings"

	"armory/internal/corpus"
	"armory/internal/taxonomy"
)

// existenceRecords covers every (subtype, quality) cell: populated cells
// name their stable first member as the example, empty cells over the
// full type x tier grid get the negative answer.
func (e *Engine) existenceRecords() []corpus.Record {
	var out []corpus.Record

	for _, tq := range e.idx.TypeQualities() {
		example, ok := taxonomy.First(e.idx.ByTypeQuality[tq])
		if !ok {
			continue
		}
		e.emit(&out, "combo_exists",
			fmt.Sprintf("有%s品质的%s吗？", tq.Quality, tq.Type),
			fmt.Sprintf("有，%s就是%s品质的%s。", example.Name, tq.Quality, tq.Type))
	}

	for _, wtype := range e.policy.Vocab.WeaponTypeNames() {
		for _, quality := range e.policy.Vocab.QualityOrder {
			if len(e.idx.ByTypeQuality[taxonomy.TypeQuality{Type: wtype, Quality: quality}]) > 0 {
				continue
			}
			e.emit(&out, "combo_not_exists",
				fmt.Sprintf("有%s品质的%s吗？", quality, wtype),
				fmt.Sprintf("没有，武器库中没有%s品质的%s。", quality, wtype))
		}
	}
	return out
}

// typeDefinitionRecords describes the populated subtype roster.
func (e *Engine) typeDefinitionRecords() []corpus.Record {
	var out []corpus.Record
	types := e.idx.Types()
	if len(types) == 0 {
		return nil
	}
	allTypes := strings.Join(types, "、")

	e.emit(&out, "type_definition",
		"武器库有哪些武器类型？",
		fmt.Sprintf("武器库中的武器类型包括：%s。", allTypes))
	e.emit(&out, "type_definition",
		"武器有几种类型？",
		fmt.Sprintf("武器库中有%d种武器类型：%s。", len(types), allTypes))
	return out
}

// listingRecords emits the complete listings and the count answers. The
// named set is always the sorted deduplicated group, so every stated
// count matches the names that follow it.
func (e *Engine) listingRecords() []corpus.Record {
	var out []corpus.Record

	for _, tq := range e.idx.TypeQualities() {
		names := taxonomy.Names(e.idx.ByTypeQuality[tq])
		if len(names) == 0 {
			continue
		}
		joined := corpus.JoinItems(names)
		count := len(names)

		e.emit(&out, "list_combo",
			fmt.Sprintf("列出所有%s品质的%s", tq.Quality, tq.Type),
			fmt.Sprintf("%s品质的%s共有%d个：%s。", tq.Quality, tq.Type, count, joined))
		e.emit(&out, "list_combo",
			fmt.Sprintf("有哪些%s品质的%s？", tq.Quality, tq.Type),
			fmt.Sprintf("%s品质的%s有：%s。", tq.Quality, tq.Type, joined))
		e.emit(&out, "list_combo",
			fmt.Sprintf("武器库里%s品质的%s有哪些？", tq.Quality, tq.Type),
			fmt.Sprintf("武器库中%s品质的%s包括：%s。", tq.Quality, tq.Type, joined))
		e.emit(&out, "list_combo",
			fmt.Sprintf("%s%s有哪些？", tq.Quality, tq.Type),
			fmt.Sprintf("%s品质的%s有：%s。", tq.Quality, tq.Type, joined))
	}

	for _, quality := range e.presentQualities() {
		names := taxonomy.Names(e.idx.ByQuality[quality])
		joined := corpus.JoinItems(names)
		count := len(names)

		e.emit(&out, "list_quality",
			fmt.Sprintf("列出所有%s品质的武器", quality),
			fmt.Sprintf("%s品质的武器共有%d个：%s。", quality, count, joined))
		e.emit(&out, "list_quality",
			fmt.Sprintf("有哪些%s品质的武器？", quality),
			fmt.Sprintf("%s品质的武器有：%s。", quality, joined))
		e.emit(&out, "list_quality",
			fmt.Sprintf("武器库里有哪些%s级武器？", quality),
			fmt.Sprintf("武器库中%s品质的武器包括：%s。", quality, joined))
	}

	for _, wtype := range e.idx.Types() {
		names := taxonomy.Names(e.idx.ByType[wtype])
		joined := corpus.JoinItems(names)
		count := len(names)

		e.emit(&out, "list_type",
			fmt.Sprintf("列出所有%s", wtype),
			fmt.Sprintf("武器库中的%s共有%d个：%s。", wtype, count, joined))
		e.emit(&out, "list_type",
			fmt.Sprintf("有哪些%s？", wtype),
			fmt.Sprintf("武器库中的%s有：%s。", wtype, joined))
		e.emit(&out, "list_type",
			fmt.Sprintf("武器库里有哪些%s？", wtype),
			fmt.Sprintf("武器库中的%s包括：%s。", wtype, joined))
	}

	for _, tq := range e.idx.TypeQualities() {
		count := len(taxonomy.Names(e.idx.ByTypeQuality[tq]))
		e.emit(&out, "count_combo",
			fmt.Sprintf("有多少%s品质的%s？", tq.Quality, tq.Type),
			fmt.Sprintf("武器库中有%d个%s品质的%s。", count, tq.Quality, tq.Type))
		e.emit(&out, "count_combo",
			fmt.Sprintf("%s品质的%s有几个？", tq.Quality, tq.Type),
			fmt.Sprintf("%s品质的%s有%d个。", tq.Quality, tq.Type, count))
	}
	for _, quality := range e.presentQualities() {
		count := len(taxonomy.Names(e.idx.ByQuality[quality]))
		e.emit(&out, "count_quality",
			fmt.Sprintf("有多少%s品质的武器？", quality),
			fmt.Sprintf("武器库中有%d个%s品质的武器。", count, quality))
	}
	for _, wtype := range e.idx.Types() {
		count := len(taxonomy.Names(e.idx.ByType[wtype]))
		e.emit(&out, "count_type",
			fmt.Sprintf("有多少%s？", wtype),
			fmt.Sprintf("武器库中有%d个%s。", count, wtype))
	}
	return out
}
