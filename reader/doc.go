// Package reader extracts positioned text fragments from PDF files.
//
// It is the document-decoding collaborator of the reconstruction engine:
// it turns the raw text runs a PDF page carries into the line-level
// [model.TextFragment] values the tables package consumes, and knows
// nothing about tables itself.
//
// Runs sharing an exact baseline are joined into one fragment per visual
// line. Non-fatal anomalies during that assembly, such as a font change
// in the middle of a line, are reported as [Warning] values alongside
// the result rather than failing the page.
package reader
