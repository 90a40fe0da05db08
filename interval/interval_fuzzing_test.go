package interval_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CytheY/merge-interval/interval"
)

// fuzzBound keeps the generated boundaries small enough that the covered
// integers can be enumerated exhaustively.
const fuzzBound = 512

func FuzzMerge(f *testing.F) {
	f.Add(uint8(0), uint64(0), uint64(0))
	f.Add(uint8(4), uint64(1), uint64(2))
	f.Add(uint8(64), uint64(3), uint64(4))

	f.Fuzz(func(
		t *testing.T,
		intervalCount uint8,
		seed1 uint64,
		seed2 uint64,
	) {
		rng := rand.New(rand.NewPCG(seed1, seed2))

		intervals := make([]interval.Interval, intervalCount)

		for i := range intervals {
			endpoint1 := rng.IntN(fuzzBound)
			endpoint2 := rng.IntN(fuzzBound)

			lower, upper := sortEndpoints(endpoint1, endpoint2)

			intervals[i] = interval.Interval{Min: lower, Max: upper}
		}

		merged := interval.Merge(intervals)

		// Coverage is preserved exactly.
		require.Equal(t, coveredIntegers(intervals), coveredIntegers(merged))

		// The output is canonical and pairwise disjoint.
		for i := 1; i < len(merged); i++ {
			require.Less(t, merged[i-1].Max, merged[i].Min)
		}

		// Re-merging a merged set changes nothing.
		require.Equal(t, merged, interval.Merge(merged))
	})
}

func coveredIntegers(intervals []interval.Interval) map[int]struct{} {
	covered := make(map[int]struct{})

	for _, i := range intervals {
		for v := i.Min; v <= i.Max; v++ {
			covered[v] = struct{}{}
		}
	}

	return covered
}

func sortEndpoints(endpoint1, endpoint2 int) (int, int) {
	if endpoint1 < endpoint2 {
		return endpoint1, endpoint2
	}

	return endpoint2, endpoint1
}
