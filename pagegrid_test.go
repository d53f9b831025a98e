package pagegrid

import (
	"testing"

	"github.com/pagegrid/pagegrid/model"
	"github.com/pagegrid/pagegrid/tables"
)

func TestOpenDoesNotTouchFile(t *testing.T) {
	// Open must be lazy: configuring an extractor for a missing file
	// only fails at the terminal operation.
	e := Open("does-not-exist.pdf").Page(2).Headers(`Name`)
	if e.err != nil {
		t.Errorf("configuration failed early: %v", e.err)
	}

	if _, _, err := e.Table(); err == nil {
		t.Error("Table() succeeded on a missing file")
	}
}

func TestTableRequiresPatterns(t *testing.T) {
	_, _, err := Open("whatever.pdf").Table()
	if err == nil {
		t.Fatal("Table() succeeded without header patterns")
	}
}

func TestHeadersRejectsBadPattern(t *testing.T) {
	e := Open("whatever.pdf").Headers(`([`)
	if e.err == nil {
		t.Fatal("Headers() accepted an invalid pattern")
	}

	// The accumulated error must surface at the terminal operation.
	if _, _, err := e.Table(); err == nil {
		t.Error("Table() did not surface the pattern error")
	}
}

func TestPageRejectsZero(t *testing.T) {
	e := Open("whatever.pdf").Page(0)
	if e.err == nil {
		t.Error("Page(0) accepted, want error (pages are 1-indexed)")
	}
}

func TestChainsAreIndependent(t *testing.T) {
	base := Open("whatever.pdf").Headers(`Name`)
	forked := base.Page(3).Bias(tables.BiasMin)

	if base.options.page != 1 {
		t.Errorf("base page = %d after fork, want 1", base.options.page)
	}
	if base.options.bias != tables.BiasCentered {
		t.Errorf("base bias = %q after fork, want centered", base.options.bias)
	}
	if forked.options.page != 3 || forked.options.bias != tables.BiasMin {
		t.Error("forked chain lost its configuration")
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	Must(0, errorString("boom"))
}

type errorString string

func (e errorString) Error() string { return string(e) }

func TestOrderedHeaderTexts(t *testing.T) {
	headers := []model.TextFragment{
		{Text: "C", BBox: model.BBox{X0: 70, Y0: 100, X1: 90, Y1: 110}},
		{Text: "A", BBox: model.BBox{X0: 0, Y0: 100, X1: 20, Y1: 110}},
		{Text: "B", BBox: model.BBox{X0: 30, Y0: 100, X1: 60, Y1: 110}},
	}

	got := orderedHeaderTexts(headers, tables.RowConfig())
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orderedHeaderTexts() = %v, want %v", got, want)
		}
	}
}

func TestOrderedHeaderTextsTransposed(t *testing.T) {
	headers := []model.TextFragment{
		{Text: "Bottom", BBox: model.BBox{X0: 0, Y0: 0, X1: 30, Y1: 10}},
		{Text: "Top", BBox: model.BBox{X0: 0, Y0: 40, X1: 30, Y1: 50}},
	}

	got := orderedHeaderTexts(headers, tables.ColumnConfig())
	if got[0] != "Top" || got[1] != "Bottom" {
		t.Errorf("orderedHeaderTexts() = %v, want top-down order", got)
	}
}
