package model

import "fmt"

// CropRegion is the horizontal band of a rendered page believed to contain
// the figure referenced by a caption. The band always spans the full page
// width; only the vertical extent is inferred.
type CropRegion struct {
	// Width is the full page width in viewport units.
	Width float64

	// Top is the upper edge of the band (viewport Y, increasing downward).
	Top float64

	// Bottom is the lower edge of the band, normally the top of the
	// caption line the region was inferred from.
	Bottom float64
}

// Height returns the vertical extent of the region.
func (c CropRegion) Height() float64 {
	return c.Bottom - c.Top
}

// IsValid reports whether the region has a positive height. Degenerate
// regions are discarded by the pipeline rather than producing zero-size
// images.
func (c CropRegion) IsValid() bool {
	return c.Height() > 0
}

// Figure is the final output unit of extraction: one cropped figure image
// identified by its caption. Figures are immutable once created.
type Figure struct {
	// ID uniquely identifies the figure within a document
	// (e.g. "page3-figure-2").
	ID string

	// Label is the normalized caption label, always of the form
	// "Figure <N>" regardless of how the caption was written.
	Label string

	// Index is the figure number parsed from the caption (positive).
	Index int

	// Page is the 1-based page number the figure was found on.
	Page int

	// Region is the crop region the image was extracted from.
	Region CropRegion

	// Image is the cropped page raster, PNG-encoded.
	Image []byte

	// Thumbnail is a downscaled PNG preview, present only when thumbnail
	// generation was requested.
	Thumbnail []byte

	// AltText is text recovered from the figure raster by OCR, when a
	// recognizer was configured. Empty otherwise.
	AltText string
}

// FigureID builds the canonical figure identifier for a page/index pair.
func FigureID(page, index int) string {
	return fmt.Sprintf("page%d-figure-%d", page, index)
}
