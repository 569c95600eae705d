package corpus

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MergeStats reports where the merged records came from.
type MergeStats struct {
	FromPrimary   int `json:"from_primary"`
	FromSecondary int `json:"from_secondary"`
	Discarded     int `json:"discarded"`
}

// Merge combines two corpora with primary-wins semantics: on an input
// collision the primary record is kept and the secondary one counted as
// discarded. Order is primary records first, then the surviving secondary
// records, each side in its own original order.
func Merge(primary, secondary []Record) ([]Record, MergeStats) {
	var stats MergeStats
	seen := make(map[string]bool, len(primary))
	merged := make([]Record, 0, len(primary)+len(secondary))

	for _, r := range primary {
		if seen[r.Input] {
			stats.Discarded++
			continue
		}
		seen[r.Input] = true
		merged = append(merged, r)
		stats.FromPrimary++
	}
	for _, r := range secondary {
		if seen[r.Input] {
			stats.Discarded++
			continue
		}
		seen[r.Input] = true
		merged = append(merged, r)
		stats.FromSecondary++
	}
	return merged, stats
}

// LoadPair reads two corpus files concurrently.
func LoadPair(ctx context.Context, primaryPath, secondaryPath string) (primary, secondary []Record, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primary, err = Load(primaryPath)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = Load(secondaryPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return primary, secondary, nil
}
