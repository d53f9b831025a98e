// Package pagegrid provides a fluent API for reconstructing tabular
// data from the positioned text fragments of a PDF page.
//
// Basic usage:
//
//	result, warnings, err := pagegrid.Open("invoice.pdf").
//	    Headers(`Name`, `Qty`, `Price`).
//	    Table()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagegrid.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := pagegrid.Open("report.pdf").
//	    Page(3).
//	    Headers(`Date`, `Amount`).
//	    Bias(tables.BiasMin).
//	    Table()
//
// For advanced use cases, the lower-level reader and tables packages
// are also available.
package pagegrid

import (
	"github.com/pagegrid/pagegrid/reader"
)

// Warning is a non-fatal issue reported during extraction.
type Warning = reader.Warning

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	return reader.FormatWarnings(warnings)
}

// Open prepares an Extractor for the given PDF file. The file is not
// opened until a terminal operation runs; the Extractor must be closed
// when done, either explicitly or implicitly through a terminal
// operation's error.
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already-opened document.
// The caller stays responsible for closing the document.
func FromDocument(doc *reader.Document) *Extractor {
	return &Extractor{
		doc:       doc,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and
// tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is like Must for terminal operations that also return
// warnings. Warnings are discarded.
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
