package reader

import (
	"fmt"
	"os"
	"sort"

	"github.com/ledongthuc/pdf"

	"github.com/pagegrid/pagegrid/model"
)

// Document wraps an open PDF file and hands out per-page fragment
// lists. It must be closed when done.
type Document struct {
	file *os.File
	r    *pdf.Reader
}

// Open opens a PDF file for fragment extraction.
func Open(path string) (*Document, error) {
	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Document{file: file, r: r}, nil
}

// Close releases the underlying file. Safe to call more than once.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.r.NumPage()
}

// Page extracts the text fragments of one page (1-indexed). Runs that
// share an exact baseline Y are joined into a single line fragment; the
// exact-match grouping is what guarantees downstream coordinate
// clustering sees bit-identical values for fragments of one line.
func (d *Document) Page(n int) ([]model.TextFragment, []Warning, error) {
	if n < 1 || n > d.r.NumPage() {
		return nil, nil, fmt.Errorf("page %d out of range (document has %d pages)", n, d.r.NumPage())
	}

	page := d.r.Page(n)
	if page.V.IsNull() {
		return nil, nil, fmt.Errorf("page %d has no content", n)
	}

	fragments, warnings := assembleLines(page.Content().Text)
	for i := range warnings {
		warnings[i].Page = n
	}
	return fragments, warnings, nil
}

// assembleLines joins raw text runs into line-level fragments. Runs are
// bucketed by their exact baseline, ordered by X within a line, and
// concatenated. The dominant font of a line is the font of its first
// run; a mid-line font change is surfaced as a warning, once per line.
func assembleLines(texts []pdf.Text) ([]model.TextFragment, []Warning) {
	lines := make(map[float64][]pdf.Text)
	for _, t := range texts {
		lines[t.Y] = append(lines[t.Y], t)
	}

	baselines := make([]float64, 0, len(lines))
	for y := range lines {
		baselines = append(baselines, y)
	}
	// Top of the page first.
	sort.Sort(sort.Reverse(sort.Float64Slice(baselines)))

	var fragments []model.TextFragment
	var warnings []Warning

	for _, y := range baselines {
		runs := lines[y]
		sort.SliceStable(runs, func(i, j int) bool {
			return runs[i].X < runs[j].X
		})

		var text string
		fontName := runs[0].Font
		fontWarned := false
		maxSize := 0.0
		x1 := runs[0].X + runs[0].W

		for _, run := range runs {
			text += run.S
			if run.Font != fontName && !fontWarned {
				warnings = append(warnings, Warning{
					Message: fmt.Sprintf("font changed mid-line from %q to %q, keeping initial font",
						fontName, run.Font),
				})
				fontWarned = true
			}
			if run.FontSize > maxSize {
				maxSize = run.FontSize
			}
			if end := run.X + run.W; end > x1 {
				x1 = end
			}
		}

		fragments = append(fragments, model.TextFragment{
			Text:     text,
			FontName: fontName,
			BBox: model.BBox{
				X0: runs[0].X,
				Y0: y,
				X1: x1,
				Y1: y + maxSize,
			},
		})
	}

	return fragments, warnings
}
