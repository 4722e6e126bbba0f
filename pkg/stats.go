package demandProfiler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// SummarizeProfile function
func SummarizeProfile(
	profile *Profile) *ProfileStats {

	// allocate output stat vectors
	stats := NewProfileStats()

	// reduce each bucket sequence to mean and population std
	for b := 0; b < hrs; b++ {

		// empty buckets yield NaN statistics
		if len(profile.Buckets[b]) == 0 {
			stats.Means.Set(b, 0, math.NaN())
			stats.Stds.Set(b, 0, math.NaN())
			continue
		}

		// compute bucket statistics
		mean, std := stat.PopMeanStdDev(profile.Buckets[b], nil)

		// write values to stat vectors
		stats.Means.Set(b, 0, mean)
		stats.Stds.Set(b, 0, std)
	}

	// report the 1-D shape of the aggregated structure; bucket sequences
	// have ragged lengths, so only the bucket count is meaningful
	fmt.Printf("Shape: (%d)\n", len(profile.Buckets))

	return stats
}
