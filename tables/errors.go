package tables

import (
	"errors"
	"fmt"

	"github.com/pagegrid/pagegrid/model"
)

// ErrGroupNotFound indicates that no coordinate group satisfies all
// header patterns. Callers may recover from it, typically by treating
// the page as having no table.
var ErrGroupNotFound = errors.New("no group matching header patterns")

// AmbiguousGroupError indicates that more than one coordinate group
// satisfies the header patterns. The patterns under-specify the header
// band; the locator never silently picks one.
type AmbiguousGroupError struct {
	Edge   model.Edge
	Values []float64 // matching coordinates, ascending
}

func (e *AmbiguousGroupError) Error() string {
	return fmt.Sprintf("%d %s groups match all header patterns (at %v), want exactly one",
		len(e.Values), e.Edge, e.Values)
}

// DuplicateKeyError indicates that two fragments in the same row cluster
// were assigned to the same header. This signals malformed geometry or a
// too-coarse row grouping.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate assignment of key %q", e.Key)
}

// BiasPolicyError indicates an unrecognized heading bias value.
type BiasPolicyError struct {
	Bias Bias
}

func (e *BiasPolicyError) Error() string {
	return fmt.Sprintf("unrecognized heading bias %q", string(e.Bias))
}

// UnresolvableHeaderError indicates that the min bias found no header
// whose column minimum lies at or before the fragment's column minimum.
type UnresolvableHeaderError struct {
	Fragment model.TextFragment
}

func (e *UnresolvableHeaderError) Error() string {
	return fmt.Sprintf("no header at or before fragment %q under min bias", e.Fragment.Text)
}
