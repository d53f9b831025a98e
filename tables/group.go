package tables

import "github.com/pagegrid/pagegrid/model"

// GroupByEdge partitions fragments by the exact coordinate of the given
// edge, e.g. all fragments sharing a top edge. Every input fragment
// appears in exactly one group, in input order within its group.
//
// The match is deliberately exact, not within a tolerance: fragments on
// the same visual line are emitted with bit-identical coordinates by a
// single layout pass, and the header count checks downstream depend on
// the resulting partition being exact. Feeding coordinates from
// heterogeneous sources with floating-point jitter will split groups.
func GroupByEdge(fragments []model.TextFragment, edge model.Edge) map[float64][]model.TextFragment {
	groups := make(map[float64][]model.TextFragment)
	for _, frag := range fragments {
		v := edge.Of(frag.BBox)
		groups[v] = append(groups[v], frag)
	}
	return groups
}

// PartitionByEdge splits fragments into those whose edge coordinate
// equals value and the rest, preserving input order. It is the usual way
// to separate the header band located by LocateHeaderGroup from the
// table body.
func PartitionByEdge(fragments []model.TextFragment, edge model.Edge, value float64) (in, out []model.TextFragment) {
	for _, frag := range fragments {
		if edge.Of(frag.BBox) == value {
			in = append(in, frag)
		} else {
			out = append(out, frag)
		}
	}
	return in, out
}
