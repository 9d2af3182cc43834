// Package carousel implements the tilt carousel's slide transition
// controller.
//
// The widget operates in one of two mutually exclusive modes, decided once
// at first render by inspecting its assigned content:
//
//   - Container mode: one wrapper root was projected in; the controller
//     descends through single-child ancestors to the first branching node,
//     whose element children become the slides. Each slide is augmented
//     with an injected content wrapper that receives the animated 3D
//     transform, while the slide itself stays a plain opacity toggle so
//     fade and tilt never fight over the same element.
//
//   - MultiRoot mode: several top-level nodes were projected in; each is a
//     slide, toggled purely via CSS-style classes.
//
// Advances come from autoplay, arrow keys, or direct Next/Previous calls,
// and both modes resolve to the same index arithmetic: wrap modulo slide
// count, no-op when one slide or fewer.
package carousel

import (
	"time"

	"github.com/google/uuid"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"
	workshoperr "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/errors"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
)

// Defaults for the configuration surface.
const (
	DefaultInterval    = 4 * time.Second
	DefaultPerspective = 900.0
	DefaultTilt        = 20.0
)

// Styling variables consumed by the host page's styling layer.
const (
	VarContainerHeight = "--cx-carousel-height"
	VarContainerWidth  = "--cx-carousel-width"
	VarDepthFallback   = "--cx-carousel-perspective"
)

// Config is the carousel's recognized configuration surface. Visual
// parameters affect only the transition's appearance, never its logic.
type Config struct {
	// Autoplay enables the recurring advance timer.
	Autoplay bool
	// Interval is the autoplay period. Zero means DefaultInterval.
	Interval time.Duration
	// PerspectivePx is the 3D depth strength for container-mode
	// transforms; lower is more dramatic. Zero means DefaultPerspective.
	PerspectivePx float64
	// TiltDegrees is the rotation applied to exiting slides in container
	// mode. Zero means DefaultTilt.
	TiltDegrees float64
}

// DefaultConfig returns the documented defaults: autoplay on, 4s interval,
// 900px perspective, 20 degree tilt.
func DefaultConfig() Config {
	return Config{
		Autoplay:      true,
		Interval:      DefaultInterval,
		PerspectivePx: DefaultPerspective,
		TiltDegrees:   DefaultTilt,
	}
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.PerspectivePx <= 0 {
		c.PerspectivePx = DefaultPerspective
	}
	if c.TiltDegrees == 0 {
		c.TiltDegrees = DefaultTilt
	}
	return c
}

// Mount describes where the carousel lives in a scene and what content
// was projected into it.
type Mount struct {
	// Scene provides the frame scheduler for deferred sizing passes.
	Scene *scene.Scene
	// Host is the widget's own container element.
	Host *scene.Node
	// DropZone holds the named projection slot's assigned nodes. It takes
	// precedence over Default when non-empty.
	DropZone []*scene.Node
	// Default holds the default projection slot's assigned nodes.
	Default []*scene.Node
}

// Event is the "slide changed" notification payload.
type Event struct {
	// WidgetID identifies the carousel instance that advanced.
	WidgetID string
	// Index is the new active slide index.
	Index int
}

// Controller owns a mounted carousel's state: the detected mode, the
// slide list, the active index, the autoplay timer, and the single resize
// observer the auto-sizer rebinds between slides. Dispose releases all of
// them; no background work continues after teardown.
type Controller struct {
	cfg  Config
	id   string
	scn  *scene.Scene
	host *scene.Node

	mode        Mode
	slideParent *scene.Node
	slides      []*scene.Node

	active     int
	exitCancel func()
	sizer      *autoSizer
	autoplay   *animation.Interval

	changeSubs map[int]func(Event)
	nextSubID  int
	disposed   bool
}

// New mounts a controller over the given content. Mode detection runs
// once, here; it is never re-evaluated. With no projected content the
// controller renders an empty shell: zero slides, no timer, and every
// advance a no-op.
func New(cfg Config, m Mount) *Controller {
	c := &Controller{
		cfg:        cfg.withDefaults(),
		id:         uuid.NewString(),
		scn:        m.Scene,
		host:       m.Host,
		changeSubs: make(map[int]func(Event)),
	}

	det := Detect(m.DropZone, m.Default)
	c.mode = det.Mode
	c.slideParent = det.SlideParent
	c.slides = det.Slides

	sizeTarget := c.host
	if c.mode == ModeContainer && c.slideParent != nil {
		sizeTarget = c.slideParent
	}
	c.sizer = newAutoSizer(c.scn, sizeTarget)

	c.applyInitial()
	c.startAutoplay()
	return c
}

// InstanceID returns the controller's unique widget ID, carried on every
// change event.
func (c *Controller) InstanceID() string { return c.id }

// ActiveIndex returns the currently visible slide's index.
func (c *Controller) ActiveIndex() int { return c.active }

// SlideCount returns the number of detected slides.
func (c *Controller) SlideCount() int { return len(c.slides) }

// Mode returns the operating mode decided at first render.
func (c *Controller) Mode() Mode { return c.mode }

// Slides returns the detected slide nodes in order.
func (c *Controller) Slides() []*scene.Node {
	out := make([]*scene.Node, len(c.slides))
	copy(out, c.slides)
	return out
}

// Next advances to the following slide, wrapping past the end.
func (c *Controller) Next() { c.advance(1) }

// Previous advances to the preceding slide, wrapping past the start.
func (c *Controller) Previous() { c.advance(-1) }

// advance resolves the index arithmetic and drives the transition.
// Advancing with one slide or fewer is a no-op and fires no event,
// guarding against autoplay or key-repeat on single-slide content.
func (c *Controller) advance(delta int) {
	count := len(c.slides)
	if c.disposed || count <= 1 {
		return
	}
	old := c.active
	next := ((old+delta)%count + count) % count
	if next == old {
		return
	}

	switch c.mode {
	case ModeContainer:
		c.applyContainer(old, next)
	case ModeMultiRoot:
		c.applyMultiRoot(old, next)
	}

	c.active = next
	c.emitChange(next)
}

// OnSlideChange registers a callback fired after every effective advance,
// in both modes. Returns an unsubscribe function.
func (c *Controller) OnSlideChange(fn func(Event)) func() {
	if c.changeSubs == nil || fn == nil {
		return func() {}
	}
	id := c.nextSubID
	c.nextSubID++
	c.changeSubs[id] = fn
	return func() {
		delete(c.changeSubs, id)
	}
}

// emitChange notifies subscribers. A panicking subscriber is reported and
// skipped; the widget itself degrades silently rather than breaking the
// page it is embedded in.
func (c *Controller) emitChange(index int) {
	ev := Event{WidgetID: c.id, Index: index}
	for _, fn := range c.changeSubs {
		c.notify(fn, ev)
	}
}

func (c *Controller) notify(fn func(Event), ev Event) {
	defer workshoperr.Recover("carousel.OnSlideChange")
	fn(ev)
}

// Dispose tears the controller down: the autoplay timer stops, the resize
// observer disconnects, and any pending exit subscription is cancelled.
// Slide source nodes are not owned by the widget and are left untouched.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.stopAutoplay()
	if c.exitCancel != nil {
		c.exitCancel()
		c.exitCancel = nil
	}
	c.sizer.dispose()
	c.changeSubs = nil
}
