package scene

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// measureFace is the fixed-metric face used for text measurement. The
// scene has no real text rasterizer; basicfont gives stable advance and
// line-height numbers, which is all min-height sizing needs.
var measureFace = basicfont.Face7x13

// MeasureHeight computes the node's rendered height when laid out at the
// given width.
//
// Text nodes wrap greedily at the width using the measurement face.
// Image nodes scale their intrinsic size to the width, and contribute
// nothing until their load completes. Element nodes stack their children.
// The result is floored by the node's Style.MinHeight.
func (n *Node) MeasureHeight(width float64) float64 {
	var h float64
	switch {
	case n.kind == KindText:
		h = measureText(n.text, width)
	case n.image != nil:
		h = n.imageHeight(width)
	default:
		for _, c := range n.children {
			h += c.MeasureHeight(width)
		}
	}
	if n.Style.MinHeight > h {
		h = n.Style.MinHeight
	}
	return h
}

// measureText approximates wrapped text height: total advance divided into
// lines at the given width, times the face line height.
func measureText(s string, width float64) float64 {
	if s == "" {
		return 0
	}
	lineHeight := float64(measureFace.Metrics().Height.Ceil())
	advance := float64(font.MeasureString(measureFace, s).Ceil())
	if width <= 0 {
		return lineHeight
	}
	lines := math.Ceil(advance / width)
	if lines < 1 {
		lines = 1
	}
	return lines * lineHeight
}
