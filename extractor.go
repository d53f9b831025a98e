package pagegrid

import (
	"fmt"
	"sort"

	"github.com/pagegrid/pagegrid/model"
	"github.com/pagegrid/pagegrid/reader"
	"github.com/pagegrid/pagegrid/tables"
)

// Table is the result of a reconstruction: the header texts in column
// order and one Row per logical table row.
type Table struct {
	Headers []string
	Rows    []model.Row
}

// Extractor provides a fluent interface for reconstructing tables from
// PDF pages. Each configuration method returns a new Extractor
// instance, making chains safe to fork and reuse.
type Extractor struct {
	// Source
	filename string
	doc      *reader.Document

	// Lifecycle
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options, so each chain method returns an independent instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// Page selects the page to reconstruct (1-indexed). The default is the
// first page.
func (e *Extractor) Page(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		newExt.err = fmt.Errorf("page %d out of range: pages are 1-indexed", n)
		return newExt
	}
	newExt.options.page = n
	return newExt
}

// Headers sets the regular expressions identifying the header band.
// Every pattern must be satisfied by some fragment of the band; see
// tables.LocateHeaderGroup.
func (e *Extractor) Headers(patterns ...string) *Extractor {
	newExt := e.clone()
	matchers, err := tables.Patterns(patterns...)
	if err != nil {
		newExt.err = fmt.Errorf("compiling header patterns: %w", err)
		return newExt
	}
	newExt.options.patterns = matchers
	return newExt
}

// HeaderMatchers sets already-constructed header matchers, for callers
// that need substring matching or custom predicates.
func (e *Extractor) HeaderMatchers(matchers ...tables.Matcher) *Extractor {
	newExt := e.clone()
	newExt.options.patterns = matchers
	return newExt
}

// Bias sets the assignment policy for fragments that overlap no header
// column. The default is tables.BiasCentered.
func (e *Extractor) Bias(bias tables.Bias) *Extractor {
	newExt := e.clone()
	newExt.options.bias = bias
	return newExt
}

// Transpose switches to column-table mode: headers anchor horizontal
// bands and the reconstructed "rows" run vertically, left to right.
func (e *Extractor) Transpose() *Extractor {
	newExt := e.clone()
	newExt.options.transpose = true
	return newExt
}

// NoMerge disables folding of adjacent overlapping rows. Wrapped cells
// then stay split across rows exactly as the layout pass emitted them.
func (e *Extractor) NoMerge() *Extractor {
	newExt := e.clone()
	newExt.options.merge = false
	return newExt
}

// ensureDoc opens the document if not already open.
func (e *Extractor) ensureDoc() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	doc, err := reader.Open(e.filename)
	if err != nil {
		return err
	}
	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases resources associated with the Extractor. It is safe
// to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.docOpened = false
		return err
	}
	return nil
}

// Fragments extracts the raw text fragments of the selected page
// without any table reconstruction.
func (e *Extractor) Fragments() ([]model.TextFragment, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	return e.doc.Page(e.options.page)
}

// Rows reconstructs the table and returns just its rows.
func (e *Extractor) Rows() ([]model.Row, []Warning, error) {
	result, warnings, err := e.Table()
	if err != nil {
		return nil, warnings, err
	}
	return result.Rows, warnings, nil
}

// Table reconstructs the table on the selected page: locate the header
// band with the configured patterns, split the page into headers and
// body, assign body fragments to header columns, and fold rows split by
// wrapped cells.
func (e *Extractor) Table() (*Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if len(e.options.patterns) == 0 {
		return nil, nil, fmt.Errorf("no header patterns specified")
	}
	if err := e.ensureDoc(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	fragments, warnings, err := e.doc.Page(e.options.page)
	if err != nil {
		return nil, warnings, err
	}

	cfg := tables.RowConfig()
	if e.options.transpose {
		cfg = tables.ColumnConfig()
	}
	cfg.Bias = e.options.bias

	headerValue, err := tables.LocateHeaderGroup(e.options.patterns, cfg.RowMin, fragments)
	if err != nil {
		return nil, warnings, err
	}

	headerFrags, bodyFrags := tables.PartitionByEdge(fragments, cfg.RowMin, headerValue)

	rows, err := tables.BuildTable(headerFrags, bodyFrags, cfg)
	if err != nil {
		return nil, warnings, err
	}

	if e.options.merge {
		rows = tables.MergeOverlappingRows(rows, cfg.RowMin, cfg.RowMax)
	}

	return &Table{
		Headers: orderedHeaderTexts(headerFrags, cfg),
		Rows:    rows,
	}, warnings, nil
}

// orderedHeaderTexts returns the header texts in column order: left to
// right for ordinary tables, top down for transposed ones.
func orderedHeaderTexts(headers []model.TextFragment, cfg tables.BuildConfig) []string {
	sorted := make([]model.TextFragment, len(headers))
	copy(sorted, headers)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := cfg.ColMin.Of(sorted[i].BBox)
		b := cfg.ColMin.Of(sorted[j].BBox)
		if cfg.Descending {
			// Row tables read columns left to right along X.
			return a < b
		}
		// Transposed tables read header bands top down along Y.
		return a > b
	})

	texts := make([]string, len(sorted))
	for i, h := range sorted {
		texts[i] = h.Text
	}
	return texts
}
