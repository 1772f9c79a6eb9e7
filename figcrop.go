// Package figcrop extracts per-figure images from academic PDFs by pairing
// figure captions with the page region directly above them.
//
// Basic usage:
//
//	src, err := pdftext.Open("paper.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//
//	figures, warnings, err := figcrop.From(src, renderer).Figures()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", figcrop.FormatWarnings(warnings))
//	}
//
// With options:
//
//	figures, _, err := figcrop.From(src, renderer).
//	    Pages(1, 2, 3).
//	    WithThumbnails(240).
//	    Figures()
//
// The renderer is any implementation of render.PageRenderer; figcrop does
// not rasterize PDFs itself. For caption and crop-region inspection without
// rendering, use Captions().
package figcrop

import (
	"github.com/RobbieRao/figcrop/render"
)

// From creates an Extractor over a page source and renderer for fluent
// configuration. The renderer may be nil when only Captions() is used.
//
// Example:
//
//	figures, warnings, err := figcrop.From(src, renderer).Figures()
func From(source render.PageSource, renderer render.PageRenderer) *Extractor {
	e := &Extractor{
		source:   source,
		renderer: renderer,
		options:  defaultOptions(),
	}
	if source == nil {
		e.err = ErrNoSource
	}
	return e
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustFigures wraps a call to Figures() or Captions() and panics if the
// error is non-nil, discarding warnings.
//
// Example:
//
//	figures := figcrop.MustFigures(figcrop.From(src, renderer).Figures())
func MustFigures[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
