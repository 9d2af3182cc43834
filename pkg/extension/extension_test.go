package extension

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/carousel"
	workshoperr "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadOptional_MissingFileIsEmptyConfig(t *testing.T) {
	ext, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if len(ext.Widgets) != 0 {
		t.Errorf("widgets = %d, want 0", len(ext.Widgets))
	}
}

func TestLoadOptional_ParsesWidgets(t *testing.T) {
	dir := writeConfig(t, `
name: workshop-widgets
type: customElement
widgets:
  product-carousel:
    type: carousel
    autoplay: false
    intervalMs: 6000
    perspective: 1200
    tilt: 35
    variables:
      "--cx-carousel-height": "480px"
  hero:
    type: banner
    density: 60
    palette: ["#111111", "#222222"]
  buy-now:
    type: cta
`)

	ext, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if ext.Name != "workshop-widgets" {
		t.Errorf("name = %q", ext.Name)
	}

	ids := ext.Carousels()
	if len(ids) != 1 || ids[0] != "product-carousel" {
		t.Fatalf("carousels = %v, want [product-carousel]", ids)
	}

	cfg := ext.Widgets["product-carousel"].CarouselConfig()
	want := carousel.Config{
		Autoplay:      false,
		Interval:      6 * time.Second,
		PerspectivePx: 1200,
		TiltDegrees:   35,
	}
	if cfg != want {
		t.Errorf("carousel config = %+v, want %+v", cfg, want)
	}
	if got := ext.Widgets["product-carousel"].Variables["--cx-carousel-height"]; got != "480px" {
		t.Errorf("height variable = %q, want 480px", got)
	}

	bcfg := ext.Widgets["hero"].BannerConfig()
	if bcfg.Density != 60 || len(bcfg.Palette) != 2 {
		t.Errorf("banner config = %+v", bcfg)
	}
}

func TestCarouselConfig_AbsentKeysGetDefaults(t *testing.T) {
	dir := writeConfig(t, `
widgets:
  c:
    type: carousel
`)

	ext, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	cfg := ext.Widgets["c"].CarouselConfig()
	if !cfg.Autoplay {
		t.Error("absent autoplay should default to enabled")
	}
	if cfg.Interval != carousel.DefaultInterval {
		t.Errorf("interval = %v, want %v", cfg.Interval, carousel.DefaultInterval)
	}
	if cfg.PerspectivePx != carousel.DefaultPerspective || cfg.TiltDegrees != carousel.DefaultTilt {
		t.Errorf("visual defaults not applied: %+v", cfg)
	}
}

func TestLoadOptional_UnknownWidgetTypesArePreserved(t *testing.T) {
	dir := writeConfig(t, `
widgets:
  viewer:
    type: model-viewer
`)

	ext, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	w, ok := ext.Widgets["viewer"]
	if !ok || w.Type != "model-viewer" {
		t.Errorf("unknown widget not preserved: %+v", ext.Widgets)
	}
	if len(ext.Carousels()) != 0 {
		t.Error("unknown widget type counted as carousel")
	}
}

func TestLoadOptional_MalformedYAMLIsConfigError(t *testing.T) {
	dir := writeConfig(t, "widgets: [not: a: map")

	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
	var werr *workshoperr.Error
	if !stderrors.As(err, &werr) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if werr.Kind != workshoperr.KindConfig {
		t.Errorf("kind = %v, want config", werr.Kind)
	}
}
