package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"armory/internal/corpus"
)

func writeInventory(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "items.csv")
	content := "物品名称\n" + strings.Join([]string{
		"M24狙击枪(卓越)",
		"M24狙击枪(破损)",
		"AWM狙击枪(轩辕)",
		"UZI冲锋枪(精制)",
		"狙击枪消音器",
		"4级头盔(黑鹰)",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("armory %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	inventoryPath := writeInventory(t, dir)
	tablePath := filepath.Join(dir, "table.json")

	out := execute(t, "classify", inventoryPath, "--policy", "full", "-o", tablePath)
	if !strings.Contains(out, "Weapons:     4") {
		t.Errorf("weapon count missing from output:\n%s", out)
	}
	if !strings.Contains(out, "Armor:       1") {
		t.Errorf("armor count missing from output:\n%s", out)
	}
	if _, err := os.Stat(tablePath); err != nil {
		t.Errorf("classification table not written: %v", err)
	}
}

func TestGenerateCommand_Deterministic(t *testing.T) {
	dir := t.TempDir()
	inventoryPath := writeInventory(t, dir)
	outA := filepath.Join(dir, "a.json")
	outB := filepath.Join(dir, "b.json")

	execute(t, "generate", "--in", inventoryPath, "--policy", "guns", "--seed", "42", "-o", outA)
	execute(t, "generate", "--in", inventoryPath, "--policy", "guns", "--seed", "42", "-o", outB)

	a, err := os.ReadFile(outA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outB)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different corpus files")
	}

	records, err := corpus.Load(outA)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("generated corpus is empty")
	}
	for _, r := range records {
		if r.TaskType != "" {
			t.Fatalf("strict output kept task type %q", r.TaskType)
		}
	}
}

func TestMergeAndStatsCommands(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.json")
	pathB := filepath.Join(dir, "b.json")
	merged := filepath.Join(dir, "merged.json")

	if err := corpus.Save(pathA, []corpus.Record{
		{Input: "q1", Output: "是的，对。", TaskType: "type_confirm"},
		{Input: "q2", Output: "答案二。", TaskType: "count_type"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := corpus.Save(pathB, []corpus.Record{
		{Input: "q2", Output: "不是，冲突。", TaskType: "type_negate"},
		{Input: "q3", Output: "答案三。", TaskType: "count_type"},
	}); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "merge", pathA, pathB, "-o", merged, "--prefer", "first")
	if !strings.Contains(out, "Merged: 3 record(s)") {
		t.Errorf("merge summary missing:\n%s", out)
	}

	records, err := corpus.Load(merged)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 || records[1].Output != "答案二。" {
		t.Errorf("collision not resolved toward preferred side: %+v", records)
	}

	out = execute(t, "stats", merged)
	if !strings.Contains(out, "Records: 3") || !strings.Contains(out, "count_type") {
		t.Errorf("stats output incomplete:\n%s", out)
	}
}
