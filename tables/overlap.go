package tables

// Overlap returns the length of the intersection of the intervals
// [aMin, aMax] and [bMin, bMax], clamped to zero for disjoint intervals.
// Both intervals are expected to be well-formed (min <= max); the
// builder validates header intervals before calling.
//
// This is the sole primitive used to decide whether a fragment belongs
// to a header column.
func Overlap(aMin, aMax, bMin, bMax float64) float64 {
	lo := aMin
	if bMin > lo {
		lo = bMin
	}
	hi := aMax
	if bMax < hi {
		hi = bMax
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}
