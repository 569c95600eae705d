package qagen

import (
	"strings"

	"armory/internal/corpus"
)

// Dedup keeps the first record for each distinct question and drops the
// rest. Generation order therefore decides which phrasing survives a
// collision.
func Dedup(records []corpus.Record) (kept []corpus.Record, dropped int) {
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.Input] {
			dropped++
			continue
		}
		seen[r.Input] = true
		kept = append(kept, r)
	}
	return kept, dropped
}

// PolarityReport counts answers by opening stance. Affirmative covers
// both 是 and 是的 openings; negative is the 不是 opening; everything
// else is declarative.
type PolarityReport struct {
	Total       int
	Affirmative int
	Negative    int
	Other       int
}

// Polarity scans the record set and tallies answer stances.
func Polarity(records []corpus.Record) PolarityReport {
	rep := PolarityReport{Total: len(records)}
	for _, r := range records {
		switch {
		case strings.HasPrefix(r.Output, "不是"):
			rep.Negative++
		case strings.HasPrefix(r.Output, "是"):
			rep.Affirmative++
		default:
			rep.Other++
		}
	}
	return rep
}

// Share returns n as a fraction of the report total, zero when empty.
func (p PolarityReport) Share(n int) float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(n) / float64(p.Total)
}
