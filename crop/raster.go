package crop

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/RobbieRao/figcrop/model"
)

// Extract produces a new raster of the page's full width and the region's
// height, filled with a white background, containing the portion of the
// source raster between the region's top and bottom. The band is clamped
// to the source bounds; rows outside the source stay white.
func Extract(src image.Image, region model.CropRegion) *image.RGBA {
	srcBounds := src.Bounds()

	width := srcBounds.Dx()
	height := int(math.Round(region.Height()))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// Over, not Src: transparent source pixels keep the white background.
	top := int(math.Round(region.Top))
	srcStart := image.Point{X: srcBounds.Min.X, Y: srcBounds.Min.Y + top}
	draw.Draw(dst, dst.Bounds(), src, srcStart, draw.Over)

	return dst
}

// EncodePNG encodes a raster as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail downsamples a raster to at most maxWidth pixels wide,
// preserving the aspect ratio. Images already narrower than maxWidth are
// returned rescaled 1:1.
func Thumbnail(src image.Image, maxWidth int) *image.RGBA {
	srcBounds := src.Bounds()
	width := srcBounds.Dx()
	height := srcBounds.Dy()

	if width > maxWidth && maxWidth > 0 {
		height = int(math.Round(float64(height) * float64(maxWidth) / float64(width)))
		if height < 1 {
			height = 1
		}
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, srcBounds, xdraw.Src, nil)
	return dst
}
