package figcrop

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/RobbieRao/figcrop/caption"
	"github.com/RobbieRao/figcrop/crop"
	"github.com/RobbieRao/figcrop/layout"
	"github.com/RobbieRao/figcrop/model"
	"github.com/RobbieRao/figcrop/render"
)

// ErrNoSource is returned when an Extractor was created without a page
// source.
var ErrNoSource = errors.New("figcrop: no page source")

// ErrNoRenderer is returned by Figures() when no renderer was supplied.
// Captions() works without one.
var ErrNoRenderer = errors.New("figcrop: no page renderer")

// Extractor provides a fluent interface for extracting figures from a
// document. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
//
// Pages are always processed strictly in document order, one at a time:
// the renderer's surface is assumed to be reused between pages, so no two
// pages are ever rendered concurrently.
type Extractor struct {
	source   render.PageSource
	renderer render.PageRenderer

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// DetectedCaption describes a caption found during a dry run, with the
// crop region that extraction would use.
type DetectedCaption struct {
	Page   int
	Label  string
	Index  int
	Region model.CropRegion
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		source:   e.source,
		renderer: e.renderer,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to process (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	figures, _, err := figcrop.From(src, r).Pages(1, 3, 5).Figures()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to process (1-indexed, inclusive).
//
// Example:
//
//	figures, _, err := figcrop.From(src, r).PageRange(5, 10).Figures()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithLayoutConfig overrides the line reconstruction tolerances.
func (e *Extractor) WithLayoutConfig(config layout.Config) *Extractor {
	newExt := e.clone()
	newExt.options.layoutConfig = config
	return newExt
}

// WithCropConfig overrides the crop inference constants.
func (e *Extractor) WithCropConfig(config crop.Config) *Extractor {
	newExt := e.clone()
	newExt.options.cropConfig = config
	return newExt
}

// WithThumbnails enables thumbnail generation at the given maximum width
// in pixels for each extracted figure.
//
// Example:
//
//	figures, _, err := figcrop.From(src, r).WithThumbnails(240).Figures()
func (e *Extractor) WithThumbnails(maxWidth int) *Extractor {
	newExt := e.clone()
	newExt.options.thumbnailWidth = maxWidth
	return newExt
}

// WithRecognizer attaches a text recognizer used to recover alt text from
// each cropped figure image. Recognition failures are reported as warnings
// and never drop the figure.
func (e *Extractor) WithRecognizer(r TextRecognizer) *Extractor {
	newExt := e.clone()
	newExt.options.recognizer = r
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Figures runs the full extraction pipeline and returns one Figure per
// caption with a usable crop region, in document order.
//
// Returns the figures, any warnings encountered during processing, and an
// error if extraction could not start. Per-page failures (unreadable text
// layer, failed render) become warnings, not errors: a single bad page
// never aborts extraction for the rest of the document.
func (e *Extractor) Figures() ([]model.Figure, []Warning, error) {
	return e.FiguresContext(context.Background())
}

// FiguresContext is Figures with cancellation between pages. The context
// is checked before each page; a page that has started is always completed.
func (e *Extractor) FiguresContext(ctx context.Context) ([]model.Figure, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if e.renderer == nil {
		return nil, nil, ErrNoRenderer
	}

	pageNums, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	var figures []model.Figure
	for _, pageNum := range pageNums {
		if err := ctx.Err(); err != nil {
			return figures, e.warnings, err
		}
		figures = append(figures, e.extractPage(pageNum)...)
	}
	return figures, e.warnings, nil
}

// Captions detects captions and infers crop regions without rendering any
// page. Useful for previewing what Figures would extract.
func (e *Extractor) Captions() ([]DetectedCaption, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	pageNums, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	var detected []DetectedCaption
	for _, pageNum := range pageNums {
		lines, vp, ok := e.pageLines(pageNum)
		if !ok {
			continue
		}
		for _, m := range caption.Detect(lines) {
			region, valid := crop.Infer(m, lines, vp, e.options.cropConfig)
			if !valid {
				continue
			}
			detected = append(detected, DetectedCaption{
				Page:   pageNum,
				Label:  m.Label,
				Index:  m.Index,
				Region: region,
			})
		}
	}
	return detected, e.warnings, nil
}

// PageCount returns the number of pages in the source document.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	return e.source.PageCount(), nil
}

// ============================================================================
// Pipeline
// ============================================================================

// extractPage runs the per-page pipeline: text layer, line reconstruction,
// caption detection, render, crop. Failures are recorded as warnings and
// yield no figures for the page.
func (e *Extractor) extractPage(pageNum int) []model.Figure {
	lines, vp, ok := e.pageLines(pageNum)
	if !ok || len(lines) == 0 {
		return nil
	}

	matches := caption.Detect(lines)
	if len(matches) == 0 {
		return nil
	}

	// Render only pages that actually carry captions.
	pageImage, err := e.renderer.RenderPage(pageNum)
	if err != nil {
		e.warnf(WarnRender, pageNum, "render failed: %v", err)
		return nil
	}

	var figures []model.Figure
	for _, m := range matches {
		region, valid := crop.Infer(m, lines, vp, e.options.cropConfig)
		if !valid {
			continue
		}

		cropped := crop.Extract(pageImage, region)
		encoded, err := crop.EncodePNG(cropped)
		if err != nil {
			e.warnf(WarnEncode, pageNum, "%s: %v", m.Label, err)
			continue
		}

		fig := model.Figure{
			ID:     model.FigureID(pageNum, m.Index),
			Label:  m.Label,
			Index:  m.Index,
			Page:   pageNum,
			Region: region,
			Image:  encoded,
		}

		if e.options.thumbnailWidth > 0 {
			thumb, err := crop.EncodePNG(crop.Thumbnail(cropped, e.options.thumbnailWidth))
			if err != nil {
				e.warnf(WarnEncode, pageNum, "%s thumbnail: %v", m.Label, err)
			} else {
				fig.Thumbnail = thumb
			}
		}

		if e.options.recognizer != nil {
			text, err := e.options.recognizer.RecognizeImage(encoded)
			if err != nil {
				e.warnf(WarnRecognize, pageNum, "%s: %v", m.Label, err)
			} else {
				fig.AltText = text
			}
		}

		figures = append(figures, fig)
	}
	return figures
}

// pageLines fetches and reconstructs a page's text lines. A false result
// means the page was skipped (with a warning when the text layer failed).
func (e *Extractor) pageLines(pageNum int) ([]layout.Line, render.Viewport, bool) {
	runs, vp, err := e.source.PageText(pageNum)
	if err != nil {
		e.warnf(WarnTextLayer, pageNum, "text layer failed: %v", err)
		return nil, render.Viewport{}, false
	}

	reconstructor := layout.NewReconstructorWithConfig(e.options.layoutConfig)
	return reconstructor.Lines(runs), vp, true
}

// resolvePages validates the configured page selection against the source
// and returns the 1-indexed pages to process, in document order. A nil
// selection means all pages.
func (e *Extractor) resolvePages() ([]int, error) {
	count := e.source.PageCount()

	if e.options.pages == nil {
		all := make([]int, count)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, p := range e.options.pages {
		if p < 1 || p > count {
			return nil, fmt.Errorf("page %d out of range (document has %d pages)", p, count)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}
	sort.Ints(pages)
	return pages, nil
}
