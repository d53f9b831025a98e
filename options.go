package pagegrid

import "github.com/pagegrid/pagegrid/tables"

// ExtractOptions holds configuration for table reconstruction.
type ExtractOptions struct {
	// Page selection (1-indexed)
	page int

	// Header identification
	patterns []tables.Matcher

	// Assignment policy for fragments overlapping no header
	bias tables.Bias

	// Transposed tables: headers anchor horizontal bands and "rows"
	// run vertically
	transpose bool

	// Fold adjacent rows whose extents overlap (wrapped cells)
	merge bool
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		page:      1,
		patterns:  nil,
		bias:      tables.BiasCentered,
		transpose: false,
		merge:     true,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		page:      o.page,
		bias:      o.bias,
		transpose: o.transpose,
		merge:     o.merge,
	}

	if o.patterns != nil {
		newOpts.patterns = make([]tables.Matcher, len(o.patterns))
		copy(newOpts.patterns, o.patterns)
	}

	return newOpts
}
