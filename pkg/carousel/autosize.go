package carousel

import "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"

// autoSizer keeps the shared container's minimum height in step with the
// active slide so differently sized slide content doesn't snap.
//
// Measurement is deferred to the next frame because content just made
// active may not have a final box yet. The sizer owns one persistent
// resize observer, rebound to the active slide on every transition, and
// one-shot load listeners for any images still loading inside it. The
// measurement pass is idempotent against whichever slide it was invoked
// with, so a second advance landing before an earlier pass runs is
// harmless.
type autoSizer struct {
	scn       *scene.Scene
	container *scene.Node
	observer  *scene.ResizeObserver

	imgCancels []func()
	disposed   bool
}

func newAutoSizer(scn *scene.Scene, container *scene.Node) *autoSizer {
	z := &autoSizer{
		scn:       scn,
		container: container,
	}
	z.observer = scene.NewResizeObserver(func(n *scene.Node) {
		z.measure(n)
	})
	return z
}

// schedule queues a measurement of the slide for the next frame.
func (z *autoSizer) schedule(slide *scene.Node) {
	if z.scn == nil || slide == nil {
		return
	}
	z.scn.RequestFrame(func() {
		z.measure(slide)
	})
}

// measure applies the slide's rendered height as the container minimum,
// rebinds the observer, and re-arms image load listeners.
func (z *autoSizer) measure(slide *scene.Node) {
	if z.disposed || slide == nil {
		return
	}

	z.cancelImageListeners()

	width := slide.Width()
	if width <= 0 && z.container != nil {
		width = z.container.Width()
	}
	if h := slide.MeasureHeight(width); h > 0 && z.container != nil {
		z.container.Style.MinHeight = h
	}

	z.observer.Observe(slide)

	slide.Visit(func(n *scene.Node) {
		if n.IsImage() && !n.ImageLoaded() {
			cancel := n.OnLoad(func() {
				z.measure(slide)
			})
			z.imgCancels = append(z.imgCancels, cancel)
		}
	})
}

func (z *autoSizer) cancelImageListeners() {
	for _, cancel := range z.imgCancels {
		cancel()
	}
	z.imgCancels = nil
}

func (z *autoSizer) dispose() {
	if z.disposed {
		return
	}
	z.disposed = true
	z.observer.Disconnect()
	z.cancelImageListeners()
}
