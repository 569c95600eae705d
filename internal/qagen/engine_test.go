package qagen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"armory/internal/classify"
	"armory/internal/corpus"
	"armory/internal/taxonomy"
	"armory/internal/vocab"
)

var fixtureNames = []string{
	"M24狙击枪(卓越)",
	"M24狙击枪(破损)",
	"AWM狙击枪(轩辕)",
	"UZI冲锋枪(精制)",
	"P18C手枪(完好)",
	"十字弩",
	"4级头盔(黑鹰)",
	"2级头盔",
	"5级防弹衣(轩辕)",
	"5级防弹衣(黑鹰)",
	"狙击枪消音器",
}

func fixtureEngine(t *testing.T, policyName string, seed int64) *Engine {
	t.Helper()
	policy, err := vocab.LoadPolicy(policyName)
	if err != nil {
		t.Fatalf("LoadPolicy(%q): %v", policyName, err)
	}
	cls := classify.New(policy)
	var items []classify.Classification
	for _, name := range fixtureNames {
		items = append(items, cls.Classify(name))
	}
	return New(taxonomy.Build(items), policy, seed)
}

func findOutput(t *testing.T, records []corpus.Record, input string) string {
	t.Helper()
	for _, r := range records {
		if r.Input == input {
			return r.Output
		}
	}
	t.Fatalf("no record for input %q", input)
	return ""
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, policy := range []string{"full", "guns"} {
		t.Run(policy, func(t *testing.T) {
			a := fixtureEngine(t, policy, 42).Generate()
			b := fixtureEngine(t, policy, 42).Generate()
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("same seed produced different corpora (-first +second):\n%s", diff)
			}
		})
	}
}

func TestGenerate_AttributeAnswers(t *testing.T) {
	records := fixtureEngine(t, "full", 1).Generate()

	tests := []struct {
		input, want string
	}{
		{"M24狙击枪(卓越)是什么品质？", "M24狙击枪(卓越)是卓越品质。"},
		{"M24狙击枪(卓越)的品质是什么？", "M24狙击枪(卓越)的品质是卓越。"},
		{"UZI冲锋枪(精制)属于什么类型？", "UZI冲锋枪(精制)属于冲锋枪。"},
		{"介绍一下AWM狙击枪(轩辕)", "AWM狙击枪(轩辕)是轩辕品质的狙击枪。"},
		{"十字弩是哪种武器？", "十字弩是特殊武器。"},
	}
	for _, tt := range tests {
		if got := findOutput(t, records, tt.input); got != tt.want {
			t.Errorf("output for %q = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGenerate_TypeNegation(t *testing.T) {
	records := fixtureEngine(t, "full", 1).Generate()

	// Counter-examples come head-first from the vocabulary order.
	got := findOutput(t, records, "UZI冲锋枪(精制)是狙击枪吗？")
	want := "不是，UZI冲锋枪(精制)是冲锋枪，不是狙击枪。"
	if got != want {
		t.Errorf("negation = %q, want %q", got, want)
	}

	got = findOutput(t, records, "M24狙击枪(卓越)是冲锋枪吗？")
	want = "不是，M24狙击枪(卓越)是狙击枪，不是冲锋枪。"
	if got != want {
		t.Errorf("negation = %q, want %q", got, want)
	}
}

func TestGenerate_QualityComparison(t *testing.T) {
	records := fixtureEngine(t, "full", 1).Generate()
	chain := "轩辕 > 黑鹰 > 铁爪 > 卓越 > 精制 > 改进 > 完好 > 修复 > 破损"
	want := "轩辕品质更好。品质从高到低：" + chain + "。"

	// Both orderings of the pair give the same answer.
	if got := findOutput(t, records, "轩辕和卓越哪个品质更好？"); got != want {
		t.Errorf("forward comparison = %q, want %q", got, want)
	}
	if got := findOutput(t, records, "卓越和轩辕哪个品质更好？"); got != want {
		t.Errorf("reverse comparison = %q, want %q", got, want)
	}
}

func TestGenerate_Existence(t *testing.T) {
	records := fixtureEngine(t, "full", 1).Generate()

	got := findOutput(t, records, "有轩辕品质的狙击枪吗？")
	want := "有，AWM狙击枪(轩辕)就是轩辕品质的狙击枪。"
	if got != want {
		t.Errorf("existence = %q, want %q", got, want)
	}

	got = findOutput(t, records, "有破损品质的手枪吗？")
	want = "没有，武器库中没有破损品质的手枪。"
	if got != want {
		t.Errorf("absence = %q, want %q", got, want)
	}
}

func TestGenerate_CompleteListing(t *testing.T) {
	records := fixtureEngine(t, "full", 1).Generate()

	// Names are deduplicated and sorted; the count matches the set.
	got := findOutput(t, records, "有哪些狙击枪？")
	want := "武器库中的狙击枪有：AWM狙击枪(轩辕)、M24狙击枪(卓越)、M24狙击枪(破损)。"
	if got != want {
		t.Errorf("listing = %q, want %q", got, want)
	}

	got = findOutput(t, records, "有多少狙击枪？")
	want = "武器库中有3个狙击枪。"
	if got != want {
		t.Errorf("count = %q, want %q", got, want)
	}

	got = findOutput(t, records, "列出所有轩辕品质的狙击枪")
	want = "轩辕品质的狙击枪共有1个：AWM狙击枪(轩辕)。"
	if got != want {
		t.Errorf("combo listing = %q, want %q", got, want)
	}
}

func TestGenerate_TypeDefinition(t *testing.T) {
	records := fixtureEngine(t, "full", 1).Generate()

	// First-seen population order, not vocabulary order.
	got := findOutput(t, records, "武器库有哪些武器类型？")
	want := "武器库中的武器类型包括：狙击枪、冲锋枪、手枪、特殊武器。"
	if got != want {
		t.Errorf("type roster = %q, want %q", got, want)
	}
}

func TestGenerate_Armor(t *testing.T) {
	records := fixtureEngine(t, "full", 1).Generate()

	tests := []struct {
		input, want string
	}{
		{"4级头盔(黑鹰)是几级头盔？", "4级头盔(黑鹰)是4级头盔。"},
		{"2级头盔是什么品质？", "2级头盔是普通品质。"},
		{"4级头盔(黑鹰)是防弹衣吗？", "不是，4级头盔(黑鹰)是头盔，不是防弹衣。"},
		{"5级防弹衣(轩辕)和5级防弹衣(黑鹰)哪个品质更好？", "5级防弹衣(轩辕)品质更好。"},
		{"防具有哪些品质？", "防具品质从高到低为：轩辕 > 黑鹰 > 铁爪。"},
		{"防具有哪些种类？", "防具分为两种：头盔和防弹衣。"},
	}
	for _, tt := range tests {
		if got := findOutput(t, records, tt.input); got != tt.want {
			t.Errorf("output for %q = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGenerate_GroupedPopulation(t *testing.T) {
	records := fixtureEngine(t, "guns", 42).Generate()

	// Quality is required: the quality-less crossbow never enters.
	for _, r := range records {
		if r.Input == "十字弩是武器吗？" {
			t.Fatalf("quality-less weapon entered grouped generation: %q", r.Input)
		}
	}

	got := findOutput(t, records, "M24狙击枪(卓越)是武器吗？")
	want := "是的，M24狙击枪(卓越)是武器。"
	if got != want {
		t.Errorf("grouped positive = %q, want %q", got, want)
	}

	got = findOutput(t, records, "描述UZI冲锋枪(精制)")
	want = "UZI冲锋枪(精制)是精制品质的冲锋枪。"
	if got != want {
		t.Errorf("grouped description = %q, want %q", got, want)
	}
}

func TestGenerate_GroupedVariantComparison(t *testing.T) {
	records := fixtureEngine(t, "guns", 42).Generate()

	// M24 has exactly one other variant, so sampling cannot vary the
	// partner.
	got := findOutput(t, records, "M24狙击枪(卓越)和M24狙击枪(破损)是同一把枪吗？")
	want := "不是，虽然都是M24狙击枪，但M24狙击枪(卓越)是卓越品质，M24狙击枪(破损)是破损品质，是不同的武器。"
	if got != want {
		t.Errorf("variant comparison = %q, want %q", got, want)
	}
}

func TestGenerate_GroupedPartnersHonorQualityRequirement(t *testing.T) {
	policy, err := vocab.LoadPolicy("guns")
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	cls := classify.New(policy)
	var items []classify.Classification
	for _, name := range []string{
		"M24狙击枪(卓越)",
		"M24狙击枪",
		"AWM狙击枪",
		"UZI冲锋枪(精制)",
	} {
		items = append(items, cls.Classify(name))
	}
	records := New(taxonomy.Build(items), policy, 42).Generate()

	// The quality-less variants are outside the population, so they must
	// not surface as comparison partners either.
	for _, r := range records {
		if r.Input == "M24狙击枪(卓越)和M24狙击枪是同一把枪吗？" {
			t.Errorf("quality-less variant used as comparison partner: %q", r.Input)
		}
		if strings.Contains(r.Input, "AWM狙击枪") || strings.Contains(r.Output, "AWM狙击枪") {
			t.Errorf("quality-less weapon leaked into record: %q -> %q", r.Input, r.Output)
		}
		if strings.Contains(r.Output, "是品质") {
			t.Errorf("empty quality interpolated into answer: %q", r.Output)
		}
	}
}

func TestCounts_TracksFamilies(t *testing.T) {
	e := fixtureEngine(t, "full", 1)
	e.Generate()

	counts := e.Counts()
	for _, family := range []string{"single_quality", "type_confirm", "quality_compare", "list_type", "armor_level"} {
		if counts[family] == 0 {
			t.Errorf("family %q produced no records", family)
		}
	}
}
