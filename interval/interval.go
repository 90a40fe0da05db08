// Package interval merges collections of closed integer intervals into the
// minimal equivalent set of non-overlapping intervals.
package interval

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// Interval represents the closed integer interval [Min, Max].
//
// Intervals are immutable values: every operation constructs new intervals
// rather than mutating boundaries in place.
type Interval struct {
	Min int
	Max int
}

// Valid reports whether the interval is well-formed, i.e. Min <= Max.
func (i Interval) Valid() bool {
	return i.Min <= i.Max
}

// ContainedIn reports whether i lies entirely within other.
//
// An interval is contained in itself, so exact duplicates count as
// containment.
func (i Interval) ContainedIn(other Interval) bool {
	return i.Min >= other.Min && i.Max <= other.Max
}

// Overlaps reports whether i and other share at least one integer.
//
// Sharing a single endpoint counts: [1,5] overlaps [5,10]. Adjacent
// intervals with a gap of one do not: [1,4] and [5,10] are disjoint.
func (i Interval) Overlaps(other Interval) bool {
	return i.Min <= other.Max && other.Min <= i.Max
}

// Compare orders intervals ascending by Min, then ascending by Max.
func Compare(a, b Interval) int {
	if c := cmp.Compare(a.Min, b.Min); c != 0 {
		return c
	}

	return cmp.Compare(a.Max, b.Max)
}

// Merge returns the minimal set of non-overlapping intervals covering
// exactly the integers covered by the input. Overlapping intervals are
// combined, contained intervals and exact duplicates are dropped, and
// disjoint intervals pass through untouched. The input slice is never
// mutated, and the result is sorted by [Compare].
//
// Merge is total: reversed intervals (Min > Max) are not rejected, their
// boundaries take part in the merge rules as given. Callers that want
// reversed intervals rejected should run [Validate] first.
func Merge(intervals []Interval) []Interval {
	work := slices.Clone(intervals)

	// Collapsing two intervals can open a new overlap with a third, so a
	// single pass is not enough. Each collapse shrinks the working set by
	// one element, which bounds the loop.
	for {
		collapsed, ok := collapseOnce(work)
		if !ok {
			break
		}

		work = collapsed
	}

	slices.SortFunc(work, Compare)

	return work
}

// collapseOnce scans the working set for a pair of distinct intervals that
// the merge rules apply to, applies the collapse, and reports whether one
// was found.
//
// Every ordered pair (current, comp) is tried, so an overlap is detected
// regardless of which interval of the pair carries the larger minimum.
func collapseOnce(work []Interval) ([]Interval, bool) {
	for i, current := range work {
		for j, comp := range work {
			if i == j {
				continue
			}

			// current contributes nothing beyond comp.
			if current.ContainedIn(comp) {
				return slices.Delete(work, i, i+1), true
			}

			// current reaches into comp from below: widen comp downwards
			// and drop current.
			if comp.Min <= current.Max && current.Max <= comp.Max &&
				current.Min < comp.Min {
				work[j] = Interval{Min: current.Min, Max: comp.Max}

				return slices.Delete(work, i, i+1), true
			}
		}
	}

	return work, false
}

// Validate checks that every interval in the collection is well-formed,
// returning an error naming the first reversed interval found.
//
// [Merge] does not require validated input; this is the boundary check for
// callers that want reversed intervals rejected rather than merged as-is.
func Validate(intervals []Interval) error {
	for idx, i := range intervals {
		if !i.Valid() {
			return errors.Errorf("interval %d: reversed boundaries %s", idx, i)
		}
	}

	return nil
}
