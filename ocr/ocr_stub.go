//go:build !ocr

// Package ocr recovers text embedded in extracted figure images, such as
// axis labels and captions burned into the raster. The result is suitable
// as alt text for the extracted figure.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All functions return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client. All its methods return ErrOCRNotEnabled.
type Client struct{}

// New returns ErrOCRNotEnabled in the stub build.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op in the stub build.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrOCRNotEnabled in the stub build.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled in the stub build.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
