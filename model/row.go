package model

import "sort"

// Row maps header text to the fragment assigned to that column. Rows are
// built one fragment at a time by the table builder and may later be
// folded together by the row merger; they are plain maps so callers can
// iterate, extend, and discard them freely.
type Row map[string]TextFragment

// Extent returns the smallest and largest coordinate covered by the
// row's fragments along the given pair of edges, e.g. (EdgeY0, EdgeY1)
// for the vertical extent of a horizontal table row. The second return
// is false for an empty row.
func (r Row) Extent(minEdge, maxEdge Edge) (lo, hi float64, ok bool) {
	first := true
	for _, frag := range r {
		fmin := minEdge.Of(frag.BBox)
		fmax := maxEdge.Of(frag.BBox)
		if first {
			lo, hi = fmin, fmax
			first = false
			continue
		}
		if fmin < lo {
			lo = fmin
		}
		if fmax > hi {
			hi = fmax
		}
	}
	return lo, hi, !first
}

// Keys returns the row's header keys in sorted order.
func (r Row) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Strings converts the row to plain text values, applying the
// fragment's bold marking convention (see TextFragment.String).
func (r Row) Strings() map[string]string {
	out := make(map[string]string, len(r))
	for k, frag := range r {
		out[k] = frag.String()
	}
	return out
}
