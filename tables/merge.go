package tables

import "github.com/pagegrid/pagegrid/model"

// MergeOverlappingRows coalesces adjacent rows whose extents along the
// given edges overlap. A cell whose content wraps to a second visual
// line comes out of the layout pass as two geometric rows; because the
// wrapped line still overlaps the first one vertically, merging the two
// recovers the logical row.
//
// The merge is destructive: later rows are folded into the current
// accumulator and discarded, and on a key collision the later row's
// fragment overwrites. This is the one place overwriting is allowed,
// since the colliding entries describe the same logical row. Callers
// must not reuse the input slice afterward.
//
// A sequence with no adjacent overlaps, including an empty one, is
// returned unchanged.
func MergeOverlappingRows(rows []model.Row, rowMin, rowMax model.Edge) []model.Row {
	if len(rows) == 0 {
		return rows
	}

	merged := make([]model.Row, 0, len(rows))
	current := rows[0]
	curMin, curMax, _ := current.Extent(rowMin, rowMax)

	for _, next := range rows[1:] {
		nextMin, nextMax, ok := next.Extent(rowMin, rowMax)
		if !ok {
			// Empty rows carry no extent and nothing to merge.
			continue
		}

		if Overlap(curMin, curMax, nextMin, nextMax) > 0 {
			for key, frag := range next {
				current[key] = frag
			}
			if nextMin < curMin {
				curMin = nextMin
			}
			if nextMax > curMax {
				curMax = nextMax
			}
			continue
		}

		merged = append(merged, current)
		current = next
		curMin, curMax = nextMin, nextMax
	}

	return append(merged, current)
}
