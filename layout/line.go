package layout

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/RobbieRao/figcrop/model"
)

// GlyphRun is a contiguous run of characters with a bounding box, as
// produced by a page's text layer. Bottom is the baseline-aligned lower
// edge, used as the primary vertical grouping key.
type GlyphRun struct {
	Text   string
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Line is a merged horizontal grouping of glyph runs sharing a baseline.
type Line struct {
	// Text is the assembled text content of the line.
	Text string

	// Left is the left edge of the first run in the line.
	Left float64

	// Top is the minimum top edge of the member runs.
	Top float64

	// Bottom is the maximum bottom edge of the member runs.
	Bottom float64

	// Runs are the member runs in left-to-right order.
	Runs []GlyphRun

	// Index is the line's position in the reconstructed sequence (0-based).
	Index int
}

// Bounds returns the line's aggregate bounding box.
func (l Line) Bounds() model.Rect {
	right := l.Left
	for _, r := range l.Runs {
		if r.Right > right {
			right = r.Right
		}
	}
	return model.NewRect(l.Left, l.Top, right, l.Bottom)
}

// Config holds tolerances for line reconstruction, in viewport units.
type Config struct {
	// BaselineTolerance is the maximum baseline difference for two runs
	// to be considered part of the same line (default: 8).
	BaselineTolerance float64

	// WordGapThreshold is the horizontal gap between adjacent runs above
	// which a word space is inserted (default: 5).
	WordGapThreshold float64
}

// DefaultConfig returns the reconstruction tolerances tuned for pages
// rendered at 2.0x scale.
func DefaultConfig() Config {
	return Config{
		BaselineTolerance: 8.0,
		WordGapThreshold:  5.0,
	}
}

// Reconstructor merges positioned glyph runs into text lines.
type Reconstructor struct {
	config Config
}

// NewReconstructor creates a reconstructor with default tolerances.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{config: DefaultConfig()}
}

// NewReconstructorWithConfig creates a reconstructor with custom tolerances.
func NewReconstructorWithConfig(config Config) *Reconstructor {
	return &Reconstructor{config: config}
}

// Lines reconstructs the page's text lines from its glyph runs.
// Runs with empty or whitespace-only text are discarded. The returned
// sequence follows the vertical sort order of the runs, top to bottom.
func (r *Reconstructor) Lines(runs []GlyphRun) []Line {
	filtered := make([]GlyphRun, 0, len(runs))
	for _, run := range runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		filtered = append(filtered, run)
	}
	if len(filtered) == 0 {
		return nil
	}

	sorted := r.sortRuns(filtered)
	groups := r.groupRuns(sorted)

	lines := make([]Line, 0, len(groups))
	for i, group := range groups {
		line := r.assembleLine(group)
		line.Index = i
		lines = append(lines, line)
	}
	return lines
}

// sortRuns orders runs primarily by baseline. Runs whose baselines differ
// by less than the tolerance are treated as the same line and ordered
// left to right instead.
func (r *Reconstructor) sortRuns(runs []GlyphRun) []GlyphRun {
	sorted := make([]GlyphRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if absFloat(sorted[i].Bottom-sorted[j].Bottom) < r.config.BaselineTolerance {
			return sorted[i].Left < sorted[j].Left
		}
		return sorted[i].Bottom < sorted[j].Bottom
	})
	return sorted
}

// groupRuns splits the sorted runs into per-line groups. A run joins the
// current line when its baseline is within tolerance of the line's last run.
func (r *Reconstructor) groupRuns(sorted []GlyphRun) [][]GlyphRun {
	var groups [][]GlyphRun
	var current []GlyphRun

	for _, run := range sorted {
		if len(current) == 0 {
			current = []GlyphRun{run}
			continue
		}
		last := current[len(current)-1]
		if absFloat(run.Bottom-last.Bottom) < r.config.BaselineTolerance {
			current = append(current, run)
		} else {
			groups = append(groups, current)
			current = []GlyphRun{run}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// assembleLine concatenates a group's run texts and computes the aggregate
// bounding box. A single space is inserted between two runs when the
// horizontal gap between them exceeds the word-gap threshold; otherwise the
// texts are joined directly, reconstructing words the producer split into
// per-glyph runs.
func (r *Reconstructor) assembleLine(group []GlyphRun) Line {
	first := group[0]

	var b strings.Builder
	b.WriteString(normalizeRunText(first.Text))

	top := first.Top
	bottom := first.Bottom

	for i := 1; i < len(group); i++ {
		run := group[i]
		gap := run.Left - group[i-1].Right
		if gap > r.config.WordGapThreshold {
			b.WriteString(" ")
		}
		b.WriteString(normalizeRunText(run.Text))

		if run.Top < top {
			top = run.Top
		}
		if run.Bottom > bottom {
			bottom = run.Bottom
		}
	}

	return Line{
		Text:   b.String(),
		Left:   first.Left,
		Top:    top,
		Bottom: bottom,
		Runs:   group,
	}
}

// normalizeRunText applies NFKC normalization so that ligatures and
// fullwidth forms emitted by some PDF producers compare equal to their
// plain ASCII spellings during caption matching.
func normalizeRunText(s string) string {
	return norm.NFKC.String(s)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
