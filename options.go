package figcrop

import (
	"github.com/RobbieRao/figcrop/crop"
	"github.com/RobbieRao/figcrop/layout"
)

// TextRecognizer recovers text from an encoded raster image. The ocr
// package provides an implementation backed by Tesseract; any recognizer
// with this shape can be plugged in.
type TextRecognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// ExtractOptions holds configuration for figure extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Tuning constants for line reconstruction and crop inference
	layoutConfig layout.Config
	cropConfig   crop.Config

	// Thumbnail width in pixels; 0 disables thumbnail generation
	thumbnailWidth int

	// Optional alt-text recognizer applied to each cropped figure
	recognizer TextRecognizer
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		layoutConfig:   layout.DefaultConfig(),
		cropConfig:     crop.DefaultConfig(),
		thumbnailWidth: 0,
		recognizer:     nil,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		layoutConfig:   o.layoutConfig,
		cropConfig:     o.cropConfig,
		thumbnailWidth: o.thumbnailWidth,
		recognizer:     o.recognizer,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
