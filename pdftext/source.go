// Package pdftext adapts the ledongthuc/pdf reader to the render.PageSource
// interface, exposing a PDF's text layer as positioned glyph runs in
// viewport coordinates.
//
// The adapter converts PDF user-space points (Y increasing upward) to
// viewport pixels (Y increasing downward) at a configurable render scale,
// so the resulting geometry lines up with a raster of the same page
// produced at that scale. It provides text only; rasterization comes from
// a separate render.PageRenderer supplied by the caller.
package pdftext

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/RobbieRao/figcrop/layout"
	"github.com/RobbieRao/figcrop/render"
)

// DefaultScale is the render scale the tuning constants elsewhere in this
// module are calibrated for.
const DefaultScale = 2.0

// Letter-size fallback when a page carries no resolvable MediaBox.
const (
	fallbackPageWidth  = 612.0
	fallbackPageHeight = 792.0
)

// Compile-time interface check.
var _ render.PageSource = (*Source)(nil)

// Source provides the positioned text layer of a PDF document.
type Source struct {
	file   *os.File // nil when created from memory
	reader *pdf.Reader
	scale  float64
}

// Open opens a PDF file as a page source at [DefaultScale].
// The returned Source must be closed when done.
func Open(path string) (*Source, error) {
	return OpenWithScale(path, DefaultScale)
}

// OpenWithScale opens a PDF file as a page source at a specific render
// scale. The scale must match the scale the caller's renderer uses, or the
// text geometry will not line up with the page rasters.
func OpenWithScale(path string, scale float64) (*Source, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("pdftext: invalid scale %f", scale)
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Source{file: f, reader: r, scale: scale}, nil
}

// New creates a page source from in-memory PDF content.
func New(content []byte, scale float64) (*Source, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("pdftext: invalid scale %f", scale)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("pdftext: empty content")
	}
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Source{reader: r, scale: scale}, nil
}

// Close releases the underlying file, if any. It is safe to call Close on
// a Source created from memory.
func (s *Source) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// Scale returns the render scale the source converts geometry at.
func (s *Source) Scale() float64 { return s.scale }

// PageCount returns the number of pages in the document.
func (s *Source) PageCount() int {
	return s.reader.NumPage()
}

// PageText returns the glyph runs and viewport of a page (1-based).
// The underlying reader panics on some malformed content streams; those
// panics surface as per-page errors so one bad page does not abort the
// rest of the document.
func (s *Source) PageText(pageNum int) (runs []layout.GlyphRun, vp render.Viewport, err error) {
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = fmt.Errorf("page %d: text layer panic: %v", pageNum, r)
		}
	}()

	if pageNum < 1 || pageNum > s.reader.NumPage() {
		return nil, render.Viewport{}, fmt.Errorf("page %d out of range", pageNum)
	}

	page := s.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, render.Viewport{}, fmt.Errorf("page %d: missing page object", pageNum)
	}

	box := pageBox(page)
	vp = render.Viewport{
		Width:  box.width * s.scale,
		Height: box.height * s.scale,
		Scale:  s.scale,
	}

	content := page.Content()
	runs = make([]layout.GlyphRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, s.toGlyphRun(t, box))
	}
	return runs, vp, nil
}

// toGlyphRun converts one text element from PDF user space (origin at the
// media box's bottom-left, Y up, t.Y on the baseline) to viewport
// coordinates. The run top is approximated as one font size above the
// baseline; the caption and crop heuristics only depend on baselines and
// line extents, not exact ascent metrics.
func (s *Source) toGlyphRun(t pdf.Text, box mediaBox) layout.GlyphRun {
	bottom := (box.height - (t.Y - box.originY)) * s.scale
	return layout.GlyphRun{
		Text:   t.S,
		Left:   (t.X - box.originX) * s.scale,
		Right:  (t.X + t.W - box.originX) * s.scale,
		Top:    bottom - t.FontSize*s.scale,
		Bottom: bottom,
	}
}

// mediaBox is a page's media box in points, with its lower-left origin.
type mediaBox struct {
	originX, originY float64
	width, height    float64
}

// pageBox resolves a page's MediaBox, walking up the page tree for
// inherited values and falling back to US Letter.
func pageBox(page pdf.Page) mediaBox {
	fallback := mediaBox{width: fallbackPageWidth, height: fallbackPageHeight}

	mb := findInherited(page.V, "MediaBox")
	if mb.IsNull() || mb.Len() < 4 {
		return fallback
	}
	llx := mb.Index(0).Float64()
	lly := mb.Index(1).Float64()
	urx := mb.Index(2).Float64()
	ury := mb.Index(3).Float64()

	box := mediaBox{
		originX: llx,
		originY: lly,
		width:   urx - llx,
		height:  ury - lly,
	}
	if box.width <= 0 || box.height <= 0 {
		return fallback
	}
	return box
}

// findInherited looks up a page attribute on the page dictionary, then on
// its ancestors in the page tree.
func findInherited(v pdf.Value, key string) pdf.Value {
	for i := 0; i < 32 && !v.IsNull(); i++ {
		if attr := v.Key(key); !attr.IsNull() {
			return attr
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}
