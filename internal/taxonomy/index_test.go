package taxonomy_test

import (
	"testing"

	"armory/internal/classify"
	"armory/internal/taxonomy"
	"armory/internal/vocab"

	"github.com/google/go-cmp/cmp"
)

func buildIndex(t *testing.T, names []string) *taxonomy.Index {
	t.Helper()
	p, err := vocab.LoadPolicy("full")
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	items, _ := classify.New(p).ClassifyAll(names)
	return taxonomy.Build(items)
}

var sampleNames = []string{
	"M24狙击枪(卓越)",
	"M24狙击枪(精制)",
	"AWM狙击枪(轩辕)",
	"UZI冲锋枪(卓越)",
	"延长枪管",
	"手雷",
	"3级头盔(黑鹰)",
	"5级头盔",
	"5级防弹衣(铁爪)",
	"神秘物品",
}

func TestBuild_Groupings(t *testing.T) {
	idx := buildIndex(t, sampleNames)

	if len(idx.Weapons) != 4 {
		t.Errorf("Weapons = %d, want 4", len(idx.Weapons))
	}
	if len(idx.Armor) != 3 {
		t.Errorf("Armor = %d, want 3", len(idx.Armor))
	}
	if idx.Excluded != 3 {
		t.Errorf("Excluded = %d, want 3 (accessory, ammo, unknown)", idx.Excluded)
	}

	if got := len(idx.ByType["狙击枪"]); got != 3 {
		t.Errorf("ByType[狙击枪] = %d, want 3", got)
	}
	if got := len(idx.ByQuality["卓越"]); got != 2 {
		t.Errorf("ByQuality[卓越] = %d, want 2", got)
	}
	if got := len(idx.ByTypeQuality[taxonomy.TypeQuality{Type: "狙击枪", Quality: "卓越"}]); got != 1 {
		t.Errorf("ByTypeQuality[狙击枪/卓越] = %d, want 1", got)
	}
	if got := len(idx.ByModel["M24"]); got != 2 {
		t.Errorf("ByModel[M24] = %d, want 2 quality variants", got)
	}
	if got := len(idx.ByBase["M24狙击枪"]); got != 2 {
		t.Errorf("ByBase[M24狙击枪] = %d, want 2", got)
	}
}

func TestBuild_ArmorGroupings(t *testing.T) {
	idx := buildIndex(t, sampleNames)

	if got := len(idx.ArmorByType["头盔"]); got != 2 {
		t.Errorf("ArmorByType[头盔] = %d, want 2", got)
	}
	if got := len(idx.ArmorByTypeLevel[taxonomy.TypeLevel{Type: "头盔", Level: 5}]); got != 1 {
		t.Errorf("ArmorByTypeLevel[头盔/5] = %d, want 1", got)
	}
	if got := len(idx.ArmorByTypeQuality[taxonomy.TypeQuality{Type: "防弹衣", Quality: "铁爪"}]); got != 1 {
		t.Errorf("ArmorByTypeQuality[防弹衣/铁爪] = %d, want 1", got)
	}
	if diff := cmp.Diff([]int{3, 5}, idx.ArmorLevels("头盔")); diff != "" {
		t.Errorf("ArmorLevels mismatch:\n%s", diff)
	}
}

func TestTypes_FirstSeenOrder(t *testing.T) {
	idx := buildIndex(t, sampleNames)

	want := []string{"狙击枪", "冲锋枪"}
	if diff := cmp.Diff(want, idx.Types()); diff != "" {
		t.Errorf("Types mismatch:\n%s", diff)
	}
}

func TestModels_SortedDeduplicated(t *testing.T) {
	idx := buildIndex(t, sampleNames)

	want := []string{"AWM", "M24"}
	if diff := cmp.Diff(want, idx.Models("狙击枪")); diff != "" {
		t.Errorf("Models mismatch:\n%s", diff)
	}
}

func TestNames_SortedDeduplicated(t *testing.T) {
	idx := buildIndex(t, append(sampleNames, "M24狙击枪(卓越)"))

	got := taxonomy.Names(idx.ByType["狙击枪"])
	want := []string{"AWM狙击枪(轩辕)", "M24狙击枪(卓越)", "M24狙击枪(精制)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Names mismatch:\n%s", diff)
	}
}

func TestFirst_StableBySort(t *testing.T) {
	idx := buildIndex(t, sampleNames)

	first, ok := taxonomy.First(idx.ByType["狙击枪"])
	if !ok {
		t.Fatal("expected a first member")
	}
	if first.Name != "AWM狙击枪(轩辕)" {
		t.Errorf("First = %q, want lowest-sorting name", first.Name)
	}

	if _, ok := taxonomy.First(nil); ok {
		t.Error("First over empty group should report false")
	}
}
