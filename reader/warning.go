package reader

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while extracting
// fragments, such as a font change in the middle of a line. Warnings
// indicate the output may need closer inspection but are not errors.
type Warning struct {
	Page    int // 1-indexed page number, 0 if not page-specific
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
