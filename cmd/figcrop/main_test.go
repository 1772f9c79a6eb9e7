package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Scale != 2.0 {
		t.Errorf("Expected default scale 2.0, got %f", cfg.Scale)
	}
	if cfg.Layout.BaselineTolerance != 8 || cfg.Layout.WordGapThreshold != 5 {
		t.Errorf("Unexpected layout defaults: %+v", cfg.Layout)
	}
	if cfg.Crop.CaptionPadding != 15 || cfg.Crop.FallbackWindow != 600 ||
		cfg.Crop.MinHeight != 100 || cfg.Crop.RetryWindow != 450 {
		t.Errorf("Unexpected crop defaults: %+v", cfg.Crop)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figcrop.toml")
	content := `
scale = 1.5

[layout]
baseline_tolerance = 6.0

[crop]
caption_padding = 20.0
retry_window = 300.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Scale != 1.5 {
		t.Errorf("Expected scale 1.5, got %f", cfg.Scale)
	}
	if cfg.Layout.BaselineTolerance != 6 {
		t.Errorf("Expected baseline tolerance 6, got %f", cfg.Layout.BaselineTolerance)
	}
	// Untouched keys keep their defaults.
	if cfg.Layout.WordGapThreshold != 5 {
		t.Errorf("Expected word gap threshold default 5, got %f", cfg.Layout.WordGapThreshold)
	}
	if cfg.Crop.CaptionPadding != 20 || cfg.Crop.RetryWindow != 300 {
		t.Errorf("Unexpected crop overrides: %+v", cfg.Crop)
	}
	if cfg.Crop.FallbackWindow != 600 {
		t.Errorf("Expected fallback window default 600, got %f", cfg.Crop.FallbackWindow)
	}
}

func TestLoadConfig_InvalidScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figcrop.toml")
	if err := os.WriteFile(path, []byte("scale = -1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("Expected error for negative scale")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig("does-not-exist.toml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}
