package model

import "strings"

// TextFragment represents one positioned, already-decoded line of text.
// Fragments are produced by a reader (or any other layout pass) and are
// never mutated by the reconstruction engine.
type TextFragment struct {
	Text     string
	FontName string // dominant font on the line; informational only
	BBox     BBox
}

// String renders the fragment text, marking bold fonts with surrounding
// asterisks so downstream consumers can keep the emphasis after the
// position metadata is dropped.
func (f TextFragment) String() string {
	if strings.Contains(f.FontName, "Bold") {
		return "*" + f.Text + "*"
	}
	return f.Text
}

// Copy returns a fragment with the same font and bounding box but
// replaced text. Useful when a caller normalizes or splits cell content
// while keeping the geometry.
func (f TextFragment) Copy(text string) TextFragment {
	return TextFragment{
		Text:     text,
		FontName: f.FontName,
		BBox:     f.BBox,
	}
}
