// Package render defines the interfaces the figure extraction pipeline
// uses to talk to a PDF engine.
//
// Rendering and text-layer extraction are external concerns: any engine
// that can report positioned glyph runs and rasterize a page at a fixed
// scale can drive the pipeline. The pdftext package provides a text-only
// implementation of [PageSource]; rasterization is supplied by the caller.
package render

import (
	"image"

	"github.com/RobbieRao/figcrop/layout"
)

// Viewport describes the coordinate space of a page rendered at a specific
// scale factor. All glyph run geometry and crop regions are expressed in
// these units, with Y increasing downward.
type Viewport struct {
	// Width and Height are the page dimensions in viewport units.
	Width  float64
	Height float64

	// Scale is the render scale factor the viewport was computed at.
	Scale float64
}

// PageSource provides the positioned text layer of a document, one page at
// a time. Pages are numbered from 1.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the glyph runs and viewport of a page.
	PageText(page int) ([]layout.GlyphRun, Viewport, error)
}

// PageRenderer rasterizes document pages at the source's scale factor.
// Pages are numbered from 1. Implementations typically reuse a single
// rendering surface, which is why the pipeline never renders two pages
// concurrently.
type PageRenderer interface {
	// RenderPage returns the full-page raster image of a page.
	RenderPage(page int) (image.Image, error)
}
