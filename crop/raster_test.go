package crop

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/RobbieRao/figcrop/model"
)

// makePage builds a test page raster with a distinct color per row band:
// red above splitY, blue from splitY down.
func makePage(width, height, splitY int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < height; y++ {
		c := red
		if y >= splitY {
			c = blue
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtract_Dimensions(t *testing.T) {
	src := makePage(200, 400, 100)
	region := model.CropRegion{Width: 200, Top: 50, Bottom: 250}

	out := Extract(src, region)

	bounds := out.Bounds()
	if bounds.Dx() != 200 {
		t.Errorf("Expected full page width 200, got %d", bounds.Dx())
	}
	if bounds.Dy() != 200 {
		t.Errorf("Expected height 200, got %d", bounds.Dy())
	}
}

func TestExtract_CopiesRegionBand(t *testing.T) {
	src := makePage(100, 400, 100)
	region := model.CropRegion{Width: 100, Top: 50, Bottom: 250}

	out := Extract(src, region)

	// Row 0 of the crop is source row 50 (red); row 199 is source row 249 (blue).
	if got := out.RGBAAt(10, 0); got.R != 255 || got.B != 0 {
		t.Errorf("Expected red at top of crop, got %+v", got)
	}
	if got := out.RGBAAt(10, 199); got.B != 255 || got.R != 0 {
		t.Errorf("Expected blue at bottom of crop, got %+v", got)
	}
	// The transition sits at crop row 100-50 = 50.
	if got := out.RGBAAt(10, 49); got.R != 255 {
		t.Errorf("Expected red just above the split, got %+v", got)
	}
	if got := out.RGBAAt(10, 50); got.B != 255 {
		t.Errorf("Expected blue at the split, got %+v", got)
	}
}

func TestExtract_BandBeyondSourceStaysWhite(t *testing.T) {
	src := makePage(100, 120, 60)
	region := model.CropRegion{Width: 100, Top: 100, Bottom: 180}

	out := Extract(src, region)

	if out.Bounds().Dy() != 80 {
		t.Fatalf("Expected height 80, got %d", out.Bounds().Dy())
	}
	// Rows 0-19 come from the source; the rest have no source pixels.
	if got := out.RGBAAt(10, 10); got.B != 255 {
		t.Errorf("Expected source pixels at top of crop, got %+v", got)
	}
	if got := out.RGBAAt(10, 40); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Expected white below source extent, got %+v", got)
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := makePage(80, 60, 30)

	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decoding produced PNG failed: %v", err)
	}
	if decoded.Bounds().Dx() != 80 || decoded.Bounds().Dy() != 60 {
		t.Errorf("Round-trip changed dimensions: %v", decoded.Bounds())
	}
}

func TestThumbnail_Downscales(t *testing.T) {
	src := makePage(400, 200, 100)

	thumb := Thumbnail(src, 100)

	if thumb.Bounds().Dx() != 100 {
		t.Errorf("Expected width 100, got %d", thumb.Bounds().Dx())
	}
	if thumb.Bounds().Dy() != 50 {
		t.Errorf("Expected height 50 (aspect preserved), got %d", thumb.Bounds().Dy())
	}
}

func TestThumbnail_NarrowImageKeepsSize(t *testing.T) {
	src := makePage(80, 40, 20)

	thumb := Thumbnail(src, 100)

	if thumb.Bounds().Dx() != 80 || thumb.Bounds().Dy() != 40 {
		t.Errorf("Expected 80x40 unchanged, got %v", thumb.Bounds())
	}
}
