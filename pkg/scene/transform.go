package scene

import "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"

// Transform describes a node's 3D transform with explicit fields rather
// than a matrix, so orchestration code and tests can inspect intent
// ("left translation with positive tilt") directly.
type Transform struct {
	// TranslateXPercent shifts the node horizontally as a percentage of
	// its own width. Negative is toward the leading edge.
	TranslateXPercent float64

	// TiltDegrees rotates the node about its vertical axis toward the
	// viewer. Zero is flat.
	TiltDegrees float64

	// PerspectivePx is the 3D depth strength. Lower is more dramatic.
	PerspectivePx float64
}

// Identity returns the resting transform: no translation, no tilt.
func Identity(perspectivePx float64) Transform {
	return Transform{PerspectivePx: perspectivePx}
}

// TiltExit returns the exiting-slide transform: translated left by 70% of
// the node's own width and rotated toward the viewer by tiltDegrees.
func TiltExit(perspectivePx, tiltDegrees float64) Transform {
	return Transform{
		TranslateXPercent: -70,
		TiltDegrees:       tiltDegrees,
		PerspectivePx:     perspectivePx,
	}
}

// IsIdentity reports whether the transform has no translation or tilt.
func (t Transform) IsIdentity() bool {
	return t.TranslateXPercent == 0 && t.TiltDegrees == 0
}

// LerpTransform linearly interpolates between two transforms.
func LerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		TranslateXPercent: animation.LerpFloat64(a.TranslateXPercent, b.TranslateXPercent, t),
		TiltDegrees:       animation.LerpFloat64(a.TiltDegrees, b.TiltDegrees, t),
		PerspectivePx:     animation.LerpFloat64(a.PerspectivePx, b.PerspectivePx, t),
	}
}
