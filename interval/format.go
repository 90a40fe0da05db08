package interval

import (
	"fmt"
	"strings"
)

// String renders the interval as "[min,max]".
func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d]", i.Min, i.Max)
}

// Format renders a sequence of intervals one per line, in sequence order.
//
// Purely presentational; the rendering carries no ordering or equality
// semantics of its own.
func Format(intervals []Interval) string {
	var b strings.Builder

	for _, i := range intervals {
		fmt.Fprintln(&b, i)
	}

	return b.String()
}
