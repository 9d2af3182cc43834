// Package extension loads the client-extension.yaml file that configures
// the workshop widgets on the host platform.
//
// The file is optional: a missing file yields an empty configuration and
// widgets fall back to their built-in defaults. Malformed YAML is a real
// configuration error. Unknown widget types are preserved as-is so one
// config file can describe widgets this library does not render.
package extension

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/banner"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/carousel"
	workshoperr "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/errors"
)

// FileName is the well-known configuration file name.
const FileName = "client-extension.yaml"

// Widget type discriminators recognized by this library.
const (
	TypeCarousel = "carousel"
	TypeCTA      = "cta"
	TypeBanner   = "banner"
)

// ClientExtension represents a parsed client-extension.yaml.
type ClientExtension struct {
	Name    string            `yaml:"name,omitempty"`
	Type    string            `yaml:"type,omitempty"`
	Widgets map[string]Widget `yaml:"widgets,omitempty"`
}

// Widget is one widget's settings block. Only the fields matching the
// widget's Type are meaningful; the rest stay at their zero values.
type Widget struct {
	Type string `yaml:"type,omitempty"`

	// Carousel settings. Autoplay is a pointer so "absent" and "false"
	// stay distinguishable; absent means enabled.
	Autoplay    *bool   `yaml:"autoplay,omitempty"`
	IntervalMS  int     `yaml:"intervalMs,omitempty"`
	Perspective float64 `yaml:"perspective,omitempty"`
	Tilt        float64 `yaml:"tilt,omitempty"`

	// Variables carries CSS custom property overrides through to the
	// host's styling layer untouched.
	Variables map[string]string `yaml:"variables,omitempty"`

	// Banner settings.
	Density int      `yaml:"density,omitempty"`
	Palette []string `yaml:"palette,omitempty"`
}

// LoadOptional reads client-extension.yaml from dir if present.
func LoadOptional(dir string) (*ClientExtension, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &ClientExtension{}, nil
		}
		return nil, configError("extension.LoadOptional", fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var ext ClientExtension
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, configError("extension.LoadOptional", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}

	return &ext, nil
}

func configError(op string, err error) *workshoperr.Error {
	return &workshoperr.Error{
		Op:        op,
		Kind:      workshoperr.KindConfig,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// Carousels returns the widget IDs of carousel type, in no particular
// order.
func (e *ClientExtension) Carousels() []string {
	var ids []string
	for id, w := range e.Widgets {
		if w.Type == TypeCarousel {
			ids = append(ids, id)
		}
	}
	return ids
}

// CarouselConfig maps the settings block onto a carousel configuration,
// applying the documented defaults for absent keys.
func (w Widget) CarouselConfig() carousel.Config {
	cfg := carousel.DefaultConfig()
	if w.Autoplay != nil {
		cfg.Autoplay = *w.Autoplay
	}
	if w.IntervalMS > 0 {
		cfg.Interval = time.Duration(w.IntervalMS) * time.Millisecond
	}
	if w.Perspective > 0 {
		cfg.PerspectivePx = w.Perspective
	}
	if w.Tilt != 0 {
		cfg.TiltDegrees = w.Tilt
	}
	return cfg
}

// BannerConfig maps the settings block onto a banner configuration.
func (w Widget) BannerConfig() banner.Config {
	return banner.Config{
		Density: w.Density,
		Palette: w.Palette,
	}
}
