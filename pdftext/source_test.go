package pdftext

import (
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, DefaultScale); err == nil {
		t.Error("Expected error for empty content")
	}
	if _, err := New([]byte("%PDF-1.4 not really"), 0); err == nil {
		t.Error("Expected error for non-positive scale")
	}
	if _, err := New([]byte("this is not a pdf"), DefaultScale); err == nil {
		t.Error("Expected error for garbage content")
	}
}

func TestOpenWithScale_Validation(t *testing.T) {
	if _, err := OpenWithScale("missing.pdf", -1); err == nil {
		t.Error("Expected error for negative scale")
	}
	_, err := Open("testdata/does-not-exist.pdf")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "open pdf") {
		t.Errorf("Expected wrapped open error, got %v", err)
	}
}

func TestToGlyphRun_CoordinateConversion(t *testing.T) {
	// A 612x792pt page at 2.0x scale. A run with its baseline 100pt above
	// the page bottom lands at viewport Y (792-100)*2 = 1384.
	s := &Source{scale: 2.0}
	box := mediaBox{width: 612, height: 792}

	run := s.toGlyphRun(pdf.Text{
		S:        "Figure",
		X:        72,
		Y:        100,
		W:        30,
		FontSize: 10,
	}, box)

	if run.Text != "Figure" {
		t.Errorf("Expected text preserved, got %q", run.Text)
	}
	if run.Left != 144 {
		t.Errorf("Expected left 144, got %f", run.Left)
	}
	if run.Right != 204 {
		t.Errorf("Expected right 204, got %f", run.Right)
	}
	if run.Bottom != 1384 {
		t.Errorf("Expected bottom 1384, got %f", run.Bottom)
	}
	if run.Top != 1364 {
		t.Errorf("Expected top 1364 (one font size above baseline), got %f", run.Top)
	}
}

func TestToGlyphRun_OffsetMediaBox(t *testing.T) {
	// Media boxes need not start at the origin.
	s := &Source{scale: 1.0}
	box := mediaBox{originX: 10, originY: 20, width: 600, height: 800}

	run := s.toGlyphRun(pdf.Text{S: "x", X: 110, Y: 220, W: 5, FontSize: 12}, box)

	if run.Left != 100 {
		t.Errorf("Expected left 100, got %f", run.Left)
	}
	if run.Bottom != 600 {
		t.Errorf("Expected bottom 800-(220-20) = 600, got %f", run.Bottom)
	}
}

func TestYOrderInversion(t *testing.T) {
	// Higher PDF Y means closer to the page top, so a smaller viewport Y.
	s := &Source{scale: 2.0}
	box := mediaBox{width: 612, height: 792}

	upper := s.toGlyphRun(pdf.Text{S: "upper", X: 72, Y: 700, W: 30, FontSize: 10}, box)
	lower := s.toGlyphRun(pdf.Text{S: "lower", X: 72, Y: 100, W: 30, FontSize: 10}, box)

	if upper.Bottom >= lower.Bottom {
		t.Errorf("Expected upper run above lower run, got %f >= %f", upper.Bottom, lower.Bottom)
	}
}
