// Package layout reconstructs text lines from the positioned glyph runs of
// a rendered PDF page.
//
// PDF producers fragment text arbitrarily: a single visual word may arrive
// as one run, a run per syllable, or a run per glyph. The [Reconstructor]
// merges runs that share a baseline (within a tolerance) into [Line] values,
// re-inserting word spaces where the horizontal gap between adjacent runs
// indicates a word boundary.
//
// Basic usage:
//
//	lines := layout.NewReconstructor().Lines(runs)
//	for _, line := range lines {
//	    fmt.Printf("%q top=%.0f bottom=%.0f\n", line.Text, line.Top, line.Bottom)
//	}
//
// All coordinates are viewport coordinates (Y increasing downward) at the
// scale the page was rendered at. The tolerances in [Config] are expressed
// in those units and default to values tuned for a 2.0x render scale.
package layout
