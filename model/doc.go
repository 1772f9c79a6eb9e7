// Package model provides the data types shared across the figure
// extraction pipeline.
//
// All geometry uses viewport coordinates: the pixel coordinate system of a
// page rendered at a specific scale factor, with the origin at the top-left
// corner and Y increasing downward. This matches the raster images the crop
// stage operates on, so no coordinate flipping happens after the text layer
// has been converted.
//
// # Types
//
//   - [Rect] - axis-aligned rectangle in viewport coordinates
//   - [CropRegion] - the horizontal band of a page believed to contain a figure
//   - [Figure] - the final output unit: an identified, cropped figure image
package model
