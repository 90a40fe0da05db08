package interval

// CollapseOnce reexports the internal [collapseOnce] function for testing
// purposes.
func CollapseOnce(work []Interval) ([]Interval, bool) {
	return collapseOnce(work)
}
