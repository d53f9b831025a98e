package tables

import (
	"fmt"
	"sort"

	"github.com/pagegrid/pagegrid/model"
)

// LocateHeaderGroup finds the single coordinate group, along the given
// edge, in which every pattern is satisfied by at least one fragment's
// text. It returns the shared coordinate value, not the fragments;
// callers partition the full fragment list against that value (see
// PartitionByEdge).
//
// Zero matching groups yields ErrGroupNotFound. More than one yields an
// AmbiguousGroupError; the locator never silently picks one, since that
// would mean the patterns do not identify the header band uniquely.
func LocateHeaderGroup(patterns []Matcher, edge model.Edge, fragments []model.TextFragment) (float64, error) {
	groups := GroupByEdge(fragments, edge)

	var matches []float64
	for value, group := range groups {
		if groupMatches(patterns, group) {
			matches = append(matches, value)
		}
	}

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("locating header %s group: %w", edge, ErrGroupNotFound)
	case 1:
		return matches[0], nil
	default:
		sort.Float64s(matches)
		return 0, &AmbiguousGroupError{Edge: edge, Values: matches}
	}
}

// groupMatches reports whether every pattern is satisfied by at least
// one fragment in the group.
func groupMatches(patterns []Matcher, group []model.TextFragment) bool {
	for _, pattern := range patterns {
		found := false
		for _, frag := range group {
			if pattern.MatchText(frag.Text) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
