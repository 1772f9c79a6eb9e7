// Package crop infers the crop region belonging to a figure caption and
// extracts the corresponding band from a rendered page raster.
//
// # Region Inference
//
// PDFs carry no semantic figure/caption linkage, only relative text
// geometry. The inference in [Infer] exploits the near-universal convention
// that a caption sits directly below its figure:
//
//  1. The bottom of the crop is the top of the caption line.
//  2. The nearest text line above the caption marks the end of the
//     preceding paragraph; the crop top is that line's bottom edge plus a
//     small padding, skipping into the whitespace before the figure.
//  3. When no text precedes the caption on the page, a fixed fallback
//     window above the caption is used instead.
//  4. A minimum-window correction guards against text sitting immediately
//     above the caption producing an unusably thin crop.
//
// Degenerate regions (non-positive height) are reported as invalid and the
// caller drops the caption rather than emitting a zero-size image.
//
// # Raster Extraction
//
// [Extract] copies the region's band out of the page raster onto a white
// background of the full page width. [EncodePNG] and [Thumbnail] prepare
// the result for consumers.
//
// The numeric constants in [Config] are empirically tuned for a 2.0x render
// scale and deliberately exposed as configuration rather than hard-coded.
package crop
