package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "header dropped and order preserved",
			input: "物品名称\nM24狙击枪(卓越)\nUZI冲锋枪(精制)\n",
			want:  []string{"M24狙击枪(卓越)", "UZI冲锋枪(精制)"},
		},
		{
			name:  "blanks skipped",
			input: "物品名称\n\nM24狙击枪(卓越)\n  \nAWM狙击枪(轩辕)\n",
			want:  []string{"M24狙击枪(卓越)", "AWM狙击枪(轩辕)"},
		},
		{
			name:  "duplicates keep first occurrence",
			input: "物品名称\nM24狙击枪(卓越)\nAWM狙击枪(轩辕)\nM24狙击枪(卓越)\n",
			want:  []string{"M24狙击枪(卓越)", "AWM狙击枪(轩辕)"},
		},
		{
			name:  "whitespace trimmed",
			input: "物品名称\n M24狙击枪(卓越) \n",
			want:  []string{"M24狙击枪(卓越)"},
		},
		{
			name:  "header only",
			input: "物品名称\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	if err := os.WriteFile(path, []byte("物品名称\n十字弩\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff([]string{"十字弩"}, got); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("ReadFile on missing file succeeded")
	}
}
