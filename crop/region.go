package crop

import (
	"math"

	"github.com/RobbieRao/figcrop/caption"
	"github.com/RobbieRao/figcrop/layout"
	"github.com/RobbieRao/figcrop/model"
	"github.com/RobbieRao/figcrop/render"
)

// Config holds the crop inference constants, in viewport units. The
// defaults are tuned for pages rendered at 2.0x scale.
type Config struct {
	// CaptionPadding is added below the nearest text-above line so the
	// crop starts inside the whitespace preceding the figure (default: 15).
	CaptionPadding float64

	// FallbackWindow is the crop height used when the figure is the first
	// content on the page and no text line exists above the caption
	// (default: 600).
	FallbackWindow float64

	// MinHeight is the smallest acceptable inferred window. Windows
	// thinner than this trigger the retry window instead (default: 100).
	MinHeight float64

	// RetryWindow is the crop height used when the inferred window was
	// thinner than MinHeight, typically because text sits immediately
	// above the caption (default: 450).
	RetryWindow float64
}

// DefaultConfig returns the inference constants tuned for 2.0x scale.
func DefaultConfig() Config {
	return Config{
		CaptionPadding: 15.0,
		FallbackWindow: 600.0,
		MinHeight:      100.0,
		RetryWindow:    450.0,
	}
}

// Infer computes the crop region for one caption, given the full line
// sequence of the same page. The boolean result is false when the region
// is degenerate and the caption should be dropped.
func Infer(m caption.Match, lines []layout.Line, vp render.Viewport, cfg Config) (model.CropRegion, bool) {
	bottom := m.Line.Top

	above, found := nearestLineAbove(lines, bottom)

	var top float64
	if found {
		top = above.Bottom + cfg.CaptionPadding
	} else {
		top = math.Max(0, bottom-cfg.FallbackWindow)
	}

	// Text immediately above the caption (a tight figure/caption pair or a
	// false positive) leaves an unusably thin window; fall back to a fixed
	// window instead of trusting the inferred top.
	if bottom-top < cfg.MinHeight {
		top = math.Max(0, bottom-cfg.RetryWindow)
	}

	region := model.CropRegion{
		Width:  vp.Width,
		Top:    top,
		Bottom: bottom,
	}
	return region, region.IsValid()
}

// nearestLineAbove selects the line with the greatest bottom edge among
// lines whose bottoms lie strictly between 0 and limit.
func nearestLineAbove(lines []layout.Line, limit float64) (layout.Line, bool) {
	var best layout.Line
	found := false
	for _, line := range lines {
		if line.Bottom <= 0 || line.Bottom >= limit {
			continue
		}
		if !found || line.Bottom > best.Bottom {
			best = line
			found = true
		}
	}
	return best, found
}
