package tables

import (
	"fmt"
	"sort"

	"github.com/pagegrid/pagegrid/model"
)

// Bias selects how a fragment is assigned to a header when it overlaps
// no header column at all.
type Bias string

const (
	// BiasCentered picks the header whose column center is nearest the
	// fragment's column center. Ties go to the header with the smaller
	// column-minimum coordinate.
	BiasCentered Bias = "centered"

	// BiasMin picks the header with the largest column minimum at or
	// before the fragment's column minimum, i.e. the nearest header the
	// fragment starts under. Fails when no such header exists.
	BiasMin Bias = "min"
)

// BuildConfig binds the generic table builder to a pair of axes. The
// row and column specializations differ only in these bindings; the
// assignment algorithm lives in BuildTable alone.
type BuildConfig struct {
	RowMin model.Edge // edge shared by fragments of one row cluster
	RowMax model.Edge
	ColMin model.Edge // edges compared against header columns
	ColMax model.Edge

	// Descending visits row clusters from the highest row coordinate
	// down. Used for vertical row axes, where a larger Y is higher on
	// the page.
	Descending bool

	Bias Bias
}

// RowConfig returns the binding for ordinary tables: rows are
// horizontal bands, columns are vertical, and rows are visited from the
// top of the page down.
func RowConfig() BuildConfig {
	return BuildConfig{
		RowMin:     model.EdgeY0,
		RowMax:     model.EdgeY1,
		ColMin:     model.EdgeX0,
		ColMax:     model.EdgeX1,
		Descending: true,
		Bias:       BiasCentered,
	}
}

// ColumnConfig returns the transposed binding: "rows" are vertical
// bands visited left to right, and headers anchor horizontal bands.
func ColumnConfig() BuildConfig {
	return BuildConfig{
		RowMin:     model.EdgeX0,
		RowMax:     model.EdgeX1,
		ColMin:     model.EdgeY0,
		ColMax:     model.EdgeY1,
		Descending: false,
		Bias:       BiasCentered,
	}
}

// BuildRowTable reconstructs a table whose rows are horizontal bands.
func BuildRowTable(headers, fragments []model.TextFragment, bias Bias) ([]model.Row, error) {
	cfg := RowConfig()
	cfg.Bias = bias
	return BuildTable(headers, fragments, cfg)
}

// BuildColumnTable reconstructs a table whose "rows" are vertical bands.
func BuildColumnTable(headers, fragments []model.TextFragment, bias Bias) ([]model.Row, error) {
	cfg := ColumnConfig()
	cfg.Bias = bias
	return BuildTable(headers, fragments, cfg)
}

// BuildTable groups fragments into row clusters along the configured
// row edge and assigns every fragment to the header whose column it
// overlaps, producing one Row per cluster in visitation order.
//
// Assignment per fragment:
//
//   - no header overlaps: fall back to cfg.Bias
//   - one header overlaps: use it
//   - several headers overlap: use the one with the smallest column
//     minimum, favoring the header the cell visually starts under
//
// Two fragments of one cluster claiming the same header is a hard
// DuplicateKeyError, not an overwrite: it means the row grouping was
// too coarse or the input geometry is malformed.
func BuildTable(headers, fragments []model.TextFragment, cfg BuildConfig) ([]model.Row, error) {
	switch cfg.Bias {
	case BiasCentered, BiasMin:
	default:
		return nil, &BiasPolicyError{Bias: cfg.Bias}
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("no headers given")
	}

	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		if seen[h.Text] {
			return nil, fmt.Errorf("duplicate header text %q", h.Text)
		}
		seen[h.Text] = true
		if cfg.ColMin.Of(h.BBox) > cfg.ColMax.Of(h.BBox) {
			return nil, fmt.Errorf("header %q has an inverted %s..%s interval",
				h.Text, cfg.ColMin, cfg.ColMax)
		}
	}

	// Sort headers by column minimum. The ordering is only used to make
	// tie evaluation deterministic; it is not reflected in the output.
	sorted := make([]model.TextFragment, len(headers))
	copy(sorted, headers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cfg.ColMin.Of(sorted[i].BBox) < cfg.ColMin.Of(sorted[j].BBox)
	})

	clusters := GroupByEdge(fragments, cfg.RowMin)
	keys := make([]float64, 0, len(clusters))
	for key := range clusters {
		keys = append(keys, key)
	}
	sort.Float64s(keys)
	if cfg.Descending {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	rows := make([]model.Row, 0, len(keys))
	for _, key := range keys {
		row := model.Row{}
		rows = append(rows, row)

		for _, frag := range clusters[key] {
			header, err := assignHeader(sorted, frag, cfg)
			if err != nil {
				return nil, err
			}

			if _, exists := row[header.Text]; exists {
				return nil, &DuplicateKeyError{Key: header.Text}
			}
			row[header.Text] = frag
		}
	}

	return rows, nil
}

// assignHeader picks the header a fragment belongs to. headers must be
// sorted ascending by cfg.ColMin.
func assignHeader(headers []model.TextFragment, frag model.TextFragment, cfg BuildConfig) (model.TextFragment, error) {
	fmin := cfg.ColMin.Of(frag.BBox)
	fmax := cfg.ColMax.Of(frag.BBox)

	var overlapping []model.TextFragment
	for _, h := range headers {
		if Overlap(cfg.ColMin.Of(h.BBox), cfg.ColMax.Of(h.BBox), fmin, fmax) > 0 {
			overlapping = append(overlapping, h)
		}
	}

	switch {
	case len(overlapping) == 1:
		return overlapping[0], nil

	case len(overlapping) > 1:
		// Headers are sorted, so the first overlapping one has the
		// smallest column minimum.
		return overlapping[0], nil
	}

	// No overlap at all, typically a very short entry.
	switch cfg.Bias {
	case BiasCentered:
		center := (fmin + fmax) / 2
		best := headers[0]
		bestDist := centerDistance(best, center, cfg)
		for _, h := range headers[1:] {
			// Strict comparison: on an exact tie the earlier header in
			// column order keeps the assignment.
			if d := centerDistance(h, center, cfg); d < bestDist {
				best, bestDist = h, d
			}
		}
		return best, nil

	case BiasMin:
		var best model.TextFragment
		found := false
		for _, h := range headers {
			if cfg.ColMin.Of(h.BBox) <= fmin {
				best = h
				found = true
			}
		}
		if !found {
			return model.TextFragment{}, &UnresolvableHeaderError{Fragment: frag}
		}
		return best, nil
	}

	return model.TextFragment{}, &BiasPolicyError{Bias: cfg.Bias}
}

func centerDistance(h model.TextFragment, center float64, cfg BuildConfig) float64 {
	hc := (cfg.ColMin.Of(h.BBox) + cfg.ColMax.Of(h.BBox)) / 2
	if hc > center {
		return hc - center
	}
	return center - hc
}
