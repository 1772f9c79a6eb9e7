package model

import "testing"

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 70)

	if r.Width() != 100 {
		t.Errorf("Expected width 100, got %f", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Expected height 50, got %f", r.Height())
	}
	if !r.IsValid() {
		t.Error("Expected rect to be valid")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 20, 30)

	u := a.Union(b)
	want := NewRect(0, 0, 20, 30)
	if u != want {
		t.Errorf("Expected union %+v, got %+v", want, u)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(Point{X: 5, Y: 5}) {
		t.Error("Expected rect to contain interior point")
	}
	if r.Contains(Point{X: 15, Y: 5}) {
		t.Error("Expected rect not to contain exterior point")
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(8, 8, 20, 20)
	c := NewRect(11, 11, 20, 20)

	if !a.Intersects(b) {
		t.Error("Expected overlapping rects to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected disjoint rects not to intersect")
	}
}

func TestCropRegionValidity(t *testing.T) {
	tests := []struct {
		name   string
		region CropRegion
		valid  bool
	}{
		{"positive height", CropRegion{Width: 100, Top: 10, Bottom: 50}, true},
		{"zero height", CropRegion{Width: 100, Top: 50, Bottom: 50}, false},
		{"negative height", CropRegion{Width: 100, Top: 60, Bottom: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.region.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestFigureID(t *testing.T) {
	if got := FigureID(3, 2); got != "page3-figure-2" {
		t.Errorf("Expected page3-figure-2, got %s", got)
	}
}
