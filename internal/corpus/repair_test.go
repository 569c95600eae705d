package corpus

import (
	"strings"
	"testing"

	"armory/internal/classify"
	"armory/internal/vocab"
)

func newRepairer(t *testing.T) *Repairer {
	t.Helper()
	p, err := vocab.LoadPolicy("full")
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	return NewRepairer(classify.New(p))
}

func TestRepair_TypeListing_RemovesAccessories(t *testing.T) {
	rp := newRepairer(t)

	rec := Record{
		Input:    "武器库里有哪些狙击枪？",
		Output:   "武器库中的狙击枪有：M24狙击枪(卓越)、狙击枪消音器、AWM狙击枪(轩辕)",
		TaskType: "weapon_inventory_query",
	}
	fixed, changed := rp.Repair(rec)
	if !changed {
		t.Fatal("expected a rewrite")
	}
	want := "武器库中的狙击枪有：M24狙击枪(卓越)、AWM狙击枪(轩辕)"
	if fixed.Output != want {
		t.Errorf("Output = %q, want %q", fixed.Output, want)
	}
}

func TestRepair_TypeListing_CleanAnswerUntouched(t *testing.T) {
	rp := newRepairer(t)

	rec := Record{
		Input:    "武器库里有哪些狙击枪？",
		Output:   "武器库中的狙击枪有：M24狙击枪(卓越)、AWM狙击枪(轩辕)",
		TaskType: "weapon_inventory_query",
	}
	if _, changed := rp.Repair(rec); changed {
		t.Error("clean answer should not be rewritten")
	}
}

func TestRepair_FullInventory(t *testing.T) {
	rp := newRepairer(t)

	rec := Record{
		Input: "查询武器库所有武器",
		Output: "武器库清单如下：\n" +
			"狙击枪：M24狙击枪(卓越)、延长枪管；\n" +
			"冲锋枪：UZI冲锋枪(精制)",
		TaskType: "weapon_inventory_all",
	}
	fixed, changed := rp.Repair(rec)
	if !changed {
		t.Fatal("expected a rewrite")
	}
	if strings.Contains(fixed.Output, "延长枪管") {
		t.Errorf("accessory survived repair: %q", fixed.Output)
	}
	if !strings.Contains(fixed.Output, "UZI冲锋枪(精制)") {
		t.Errorf("weapon dropped by repair: %q", fixed.Output)
	}
	if !strings.HasPrefix(fixed.Output, inventoryHeader) {
		t.Errorf("template shape lost: %q", fixed.Output)
	}
}

func TestRepair_OtherTaskTypesPassThrough(t *testing.T) {
	rp := newRepairer(t)

	rec := Record{Input: "问", Output: "答", TaskType: "single_quality"}
	got, changed := rp.Repair(rec)
	if changed || got != rec {
		t.Errorf("pass-through changed the record: %+v", got)
	}
}

func TestRepairAll_CountsRewrites(t *testing.T) {
	rp := newRepairer(t)

	records := []Record{
		{
			Input:    "武器库里有哪些狙击枪？",
			Output:   "武器库中的狙击枪有：M24狙击枪(卓越)、狙击枪消音器",
			TaskType: "weapon_inventory_query",
		},
		{Input: "问", Output: "答", TaskType: "single_type"},
	}
	fixed, rewritten := rp.RepairAll(records)
	if rewritten != 1 {
		t.Errorf("rewritten = %d, want 1", rewritten)
	}
	if len(fixed) != 2 {
		t.Errorf("len = %d, want 2 (repair replaces, never removes)", len(fixed))
	}
}

func TestNormalizeLegacy(t *testing.T) {
	tests := []struct {
		taskType string
		keep     bool
	}{
		{"item_info", true},
		{"quality_compare", true},
		{"model_query", false},
		{"category_query", false},
		{"quality_query", false},
		{"all_weapons", false},
		{"unheard_of", false},
	}
	for _, tt := range tests {
		t.Run(tt.taskType, func(t *testing.T) {
			rec := Record{Instruction: "回答问题", Input: "问", Output: "答", TaskType: tt.taskType}
			got, keep := NormalizeLegacy(rec)
			if keep != tt.keep {
				t.Fatalf("keep = %v, want %v", keep, tt.keep)
			}
			if keep && got.Instruction != "" {
				t.Error("instruction should be cleared on kept records")
			}
		})
	}
}
