package carousel

import (
	"time"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
)

// ClassSlideContent marks a slide's injected content wrapper. Its presence
// on a slide's first child is how repeated normalization is detected.
const ClassSlideContent = "cx-slide-content"

// transitionDuration is the wrapper's transform transition length. A
// visual constant of the exit choreography, not part of the configuration
// surface.
const transitionDuration = 600 * time.Millisecond

// ensureWrapper idempotently gives a slide exactly one content wrapper
// owning all of the slide's original content (container mode only).
//
// The slide element itself becomes a stacked opacity toggle; the wrapper
// is the element whose transform animates, with its origin at the leading
// edge so the exit tilt pivots where the slide leaves the stage. Calling
// this twice on the same slide reuses the existing wrapper — never nested
// wrappers, never duplicated content.
func (c *Controller) ensureWrapper(slide *scene.Node) *scene.Node {
	if first := slide.FirstChild(); first != nil &&
		first.Kind() == scene.KindElement && first.HasClass(ClassSlideContent) {
		return first
	}

	wrapper := scene.NewElement("div")
	wrapper.AddClass(ClassSlideContent)

	// Move the slide's original content into the wrapper, in order.
	for _, child := range slide.Children() {
		wrapper.AppendChild(child)
	}
	slide.AppendChild(wrapper)

	slide.Style.Absolute = true

	wrapper.Style.TransitionDuration = transitionDuration
	wrapper.Style.TransformOrigin = scene.OriginLeading
	wrapper.SetTransformImmediate(scene.Identity(c.cfg.PerspectivePx))

	return wrapper
}

// wrapperOf returns a slide's content wrapper if it has been normalized.
func wrapperOf(slide *scene.Node) *scene.Node {
	if first := slide.FirstChild(); first != nil &&
		first.Kind() == scene.KindElement && first.HasClass(ClassSlideContent) {
		return first
	}
	return nil
}
