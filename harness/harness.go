// Package harness runs merge fixtures and classifies the outcome of each
// one.
package harness

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/CytheY/merge-interval/interval"
)

// Case is a single merge fixture: an input sequence and the intervals
// expected to cover it after merging.
type Case struct {
	Name     string
	Input    []interval.Interval
	Expected []interval.Interval
}

// Verdict classifies the outcome of running one case.
type Verdict int

const (
	// Pass means the merged result matched the expected set.
	Pass Verdict = iota

	// SizeMismatch means the result held a different number of intervals
	// than expected.
	SizeMismatch

	// ContentMismatch means result and expectation were the same size but
	// held different boundary pairs.
	ContentMismatch
)

// String renders the verdict for reporting.
func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case SizeMismatch:
		return "size mismatch"
	case ContentMismatch:
		return "content mismatch"
	}

	return fmt.Sprintf("verdict(%d)", int(v))
}

// Outcome is the result of running a single case.
type Outcome struct {
	Case    Case
	Result  []interval.Interval
	Verdict Verdict

	// Diff describes the discrepancy for failing verdicts, empty on a pass.
	Diff string
}

// sortIntervals makes comparisons independent of sequence order: the
// expectation is a set of boundary pairs, not an ordered sequence.
var sortIntervals = cmpopts.SortSlices(func(a, b interval.Interval) bool {
	return interval.Compare(a, b) < 0
})

// Run merges the input of every case and compares it against the case's
// expectation. Failing cases never abort the run; every case produces an
// outcome.
func Run(cases []Case) []Outcome {
	outcomes := make([]Outcome, len(cases))

	for i, c := range cases {
		outcomes[i] = runCase(c)
	}

	return outcomes
}

func runCase(c Case) Outcome {
	outcome := Outcome{
		Case:   c,
		Result: interval.Merge(c.Input),
	}

	switch {
	case len(outcome.Result) != len(c.Expected):
		outcome.Verdict = SizeMismatch
		outcome.Diff = fmt.Sprintf(
			"result holds %d intervals, expected %d",
			len(outcome.Result), len(c.Expected),
		)
	case !cmp.Equal(c.Expected, outcome.Result, sortIntervals):
		outcome.Verdict = ContentMismatch
		outcome.Diff = cmp.Diff(c.Expected, outcome.Result, sortIntervals)
	}

	return outcome
}

// Battery returns the fixed battery of reference fixtures.
func Battery() []Case {
	return []Case{
		{
			Name: "empty input",
		},
		{
			Name:     "single interval",
			Input:    []interval.Interval{{Min: 3, Max: 30}},
			Expected: []interval.Interval{{Min: 3, Max: 30}},
		},
		{
			Name:     "partial overlaps around a disjoint interval",
			Input:    []interval.Interval{{Min: 25, Max: 30}, {Min: 2, Max: 19}, {Min: 14, Max: 23}, {Min: 4, Max: 8}},
			Expected: []interval.Interval{{Min: 2, Max: 23}, {Min: 25, Max: 30}},
		},
		{
			Name:     "touching endpoints merge",
			Input:    []interval.Interval{{Min: 1, Max: 5}, {Min: 5, Max: 10}},
			Expected: []interval.Interval{{Min: 1, Max: 10}},
		},
		{
			Name:     "gap of one stays split",
			Input:    []interval.Interval{{Min: 1, Max: 4}, {Min: 5, Max: 10}},
			Expected: []interval.Interval{{Min: 1, Max: 4}, {Min: 5, Max: 10}},
		},
		{
			Name:     "contained interval collapses",
			Input:    []interval.Interval{{Min: 1, Max: 4}, {Min: 2, Max: 4}},
			Expected: []interval.Interval{{Min: 1, Max: 4}},
		},
		{
			Name:     "overlap extends the upper bound",
			Input:    []interval.Interval{{Min: 1, Max: 4}, {Min: 2, Max: 5}},
			Expected: []interval.Interval{{Min: 1, Max: 5}},
		},
		{
			Name:     "equal minimum",
			Input:    []interval.Interval{{Min: 1, Max: 3}, {Min: 1, Max: 4}},
			Expected: []interval.Interval{{Min: 1, Max: 4}},
		},
		{
			Name:     "exact duplicate",
			Input:    []interval.Interval{{Min: 1, Max: 4}, {Min: 1, Max: 4}},
			Expected: []interval.Interval{{Min: 1, Max: 4}},
		},
		{
			Name:     "transitive chain",
			Input:    []interval.Interval{{Min: 1, Max: 3}, {Min: 2, Max: 4}, {Min: 3, Max: 5}},
			Expected: []interval.Interval{{Min: 1, Max: 5}},
		},
		{
			Name:     "duplicate with chained merge and disjoint survivor",
			Input:    []interval.Interval{{Min: 3, Max: 30}, {Min: 10, Max: 20}, {Min: 3, Max: 30}, {Min: 1, Max: 2}, {Min: 27, Max: 40}},
			Expected: []interval.Interval{{Min: 1, Max: 2}, {Min: 3, Max: 40}},
		},
	}
}
