package figcrop

import (
	"fmt"
	"strings"
)

// WarningCode classifies non-fatal issues encountered during extraction.
type WarningCode string

// Warning codes.
const (
	// WarnTextLayer indicates a page whose text layer could not be read;
	// the page was skipped.
	WarnTextLayer WarningCode = "text-layer"

	// WarnRender indicates a page whose raster could not be produced;
	// the page's captions were skipped.
	WarnRender WarningCode = "render"

	// WarnEncode indicates a figure whose crop could not be encoded.
	WarnEncode WarningCode = "encode"

	// WarnRecognize indicates a figure whose alt-text recognition failed;
	// the figure was kept without alt text.
	WarnRecognize WarningCode = "recognize"
)

// Warning describes a non-fatal issue encountered while processing a page.
// A single page's failure never aborts extraction for the rest of the
// document; it is reported as a Warning instead.
type Warning struct {
	Code    WarningCode
	Page    int
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("page %d [%s]: %s", w.Page, w.Code, w.Message)
}

// FormatWarnings joins warnings into a single semicolon-separated string
// suitable for logging.
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

func (e *Extractor) warnf(code WarningCode, page int, format string, args ...any) {
	e.warnings = append(e.warnings, Warning{
		Code:    code,
		Page:    page,
		Message: fmt.Sprintf(format, args...),
	})
}
