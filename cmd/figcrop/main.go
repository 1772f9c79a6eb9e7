// Command figcrop extracts per-figure images from an academic PDF.
//
// Without -pages it performs a dry run: captions and the crop regions
// extraction would use are printed, one per line. With -pages pointing at a
// directory of externally rendered page rasters (page-1.png, page-2.png,
// ...) at the configured scale, the cropped figure images are written to
// the output directory.
//
// Usage:
//
//	figcrop [-config figcrop.toml] [-out dir] [-pages dir] [-thumb N] <paper.pdf>
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	_ "image/jpeg"
	_ "image/png"

	"github.com/BurntSushi/toml"

	"github.com/RobbieRao/figcrop"
	"github.com/RobbieRao/figcrop/crop"
	"github.com/RobbieRao/figcrop/layout"
	"github.com/RobbieRao/figcrop/pdftext"
	"github.com/RobbieRao/figcrop/render"
)

// config mirrors the tuning constants of the extraction pipeline. All
// values are in viewport units at the configured scale.
type config struct {
	Scale  float64      `toml:"scale"`
	Layout layoutConfig `toml:"layout"`
	Crop   cropConfig   `toml:"crop"`
}

type layoutConfig struct {
	BaselineTolerance float64 `toml:"baseline_tolerance"`
	WordGapThreshold  float64 `toml:"word_gap_threshold"`
}

type cropConfig struct {
	CaptionPadding float64 `toml:"caption_padding"`
	FallbackWindow float64 `toml:"fallback_window"`
	MinHeight      float64 `toml:"min_height"`
	RetryWindow    float64 `toml:"retry_window"`
}

func defaultConfig() config {
	lc := layout.DefaultConfig()
	cc := crop.DefaultConfig()
	return config{
		Scale: pdftext.DefaultScale,
		Layout: layoutConfig{
			BaselineTolerance: lc.BaselineTolerance,
			WordGapThreshold:  lc.WordGapThreshold,
		},
		Crop: cropConfig{
			CaptionPadding: cc.CaptionPadding,
			FallbackWindow: cc.FallbackWindow,
			MinHeight:      cc.MinHeight,
			RetryWindow:    cc.RetryWindow,
		},
	}
}

// loadConfig reads a TOML config file over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.Scale <= 0 {
		return cfg, fmt.Errorf("config %s: scale must be positive", path)
	}
	return cfg, nil
}

// dirRenderer serves pre-rendered page rasters from a directory of
// page-<N>.png (or .jpg) files.
type dirRenderer struct {
	dir string
}

func (d *dirRenderer) RenderPage(page int) (image.Image, error) {
	for _, name := range []string{
		fmt.Sprintf("page-%d.png", page),
		fmt.Sprintf("page-%d.jpg", page),
	} {
		path := filepath.Join(d.dir, name)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("no raster for page %d in %s", page, d.dir)
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the tuning constants")
	pagesDir := flag.String("pages", "", "Directory of pre-rendered page rasters (page-N.png)")
	outDir := flag.String("out", "figures", "Output directory for cropped figure images")
	thumbWidth := flag.Int("thumb", 0, "Also write thumbnails at this maximum width (0 = off)")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: figcrop [-config file] [-pages dir] [-out dir] [-thumb N] <paper.pdf>")
	}
	input := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	src, err := pdftext.OpenWithScale(input, cfg.Scale)
	if err != nil {
		log.Fatalf("Open PDF: %v", err)
	}
	defer src.Close()

	var renderer render.PageRenderer
	if *pagesDir != "" {
		renderer = &dirRenderer{dir: *pagesDir}
	}

	ext := figcrop.From(src, renderer).
		WithLayoutConfig(layout.Config{
			BaselineTolerance: cfg.Layout.BaselineTolerance,
			WordGapThreshold:  cfg.Layout.WordGapThreshold,
		}).
		WithCropConfig(crop.Config{
			CaptionPadding: cfg.Crop.CaptionPadding,
			FallbackWindow: cfg.Crop.FallbackWindow,
			MinHeight:      cfg.Crop.MinHeight,
			RetryWindow:    cfg.Crop.RetryWindow,
		}).
		WithThumbnails(*thumbWidth)

	if renderer == nil {
		dryRun(ext)
		return
	}
	extract(ext, *outDir)
}

// dryRun prints the captions and crop regions extraction would use.
func dryRun(ext *figcrop.Extractor) {
	captions, warnings, err := ext.Captions()
	if err != nil {
		log.Fatalf("Scan: %v", err)
	}
	logWarnings(warnings)

	for _, c := range captions {
		fmt.Printf("page %d  %-12s crop [%.0f, %.0f] height %.0f\n",
			c.Page, c.Label, c.Region.Top, c.Region.Bottom, c.Region.Height())
	}
	if len(captions) == 0 {
		fmt.Println("no figure captions found")
	}
}

// extract writes one PNG per extracted figure to the output directory.
func extract(ext *figcrop.Extractor, outDir string) {
	figures, warnings, err := ext.Figures()
	if err != nil {
		log.Fatalf("Extract: %v", err)
	}
	logWarnings(warnings)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Create output dir: %v", err)
	}

	for _, fig := range figures {
		path := filepath.Join(outDir, fig.ID+".png")
		if err := os.WriteFile(path, fig.Image, 0o644); err != nil {
			log.Fatalf("Write %s: %v", path, err)
		}
		if fig.Thumbnail != nil {
			thumbPath := filepath.Join(outDir, fig.ID+"-thumb.png")
			if err := os.WriteFile(thumbPath, fig.Thumbnail, 0o644); err != nil {
				log.Fatalf("Write %s: %v", thumbPath, err)
			}
		}
		fmt.Printf("%s  %s (page %d)\n", path, fig.Label, fig.Page)
	}
	fmt.Printf("extracted %d figure(s)\n", len(figures))
}

func logWarnings(warnings []figcrop.Warning) {
	if len(warnings) > 0 {
		log.Println("Warnings:", figcrop.FormatWarnings(warnings))
	}
}
