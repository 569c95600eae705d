// Package corpus holds the QA record model and the assembly-stage
// operations over flat record collections: JSON stores, input-collision
// merge, listing repair, dedup-preserving shuffles.
package corpus

import "math/rand"

// Record is one question/answer pair in Alpaca form. Instruction is
// usually empty; the question lives in Input and the canonical answer in
// Output. TaskType tags the template family that produced the record; it
// drives statistics and repair routing and is stripped from the strict
// output format.
type Record struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	TaskType    string `json:"task_type,omitempty"`
}

// Strip returns a copy of the records without task type tags, the strict
// format handed to training.
func Strip(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.TaskType = ""
		out[i] = r
	}
	return out
}

// Shuffle permutes records in place with a seeded RNG, so the final
// corpus order is reproducible for a fixed seed.
func Shuffle(records []Record, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
}

// TaskTypeCounts tallies records per template family.
func TaskTypeCounts(records []Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		tt := r.TaskType
		if tt == "" {
			tt = "untagged"
		}
		counts[tt]++
	}
	return counts
}
