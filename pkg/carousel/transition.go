package carousel

import "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"

// Class names toggled in multi-root mode; the host stylesheet drives the
// actual fade from these.
const (
	ClassActive  = "active"
	ClassExiting = "exiting"
)

// Stacking order for container-mode slides.
const (
	zIndexHidden  = 0
	zIndexExiting = 1
	zIndexActive  = 2
)

// SlideState is a slide's visual state as observable from its node.
type SlideState int

const (
	// SlideHidden: opacity 0, stacked below, hidden from assistive tech.
	SlideHidden SlideState = iota
	// SlideActive: fully visible, stacked above its siblings.
	SlideActive
	// SlideExiting: still visible while its tilt-out animation runs.
	SlideExiting
)

// applyInitial renders the steady state for the detected slides: the first
// slide active, every other slide hidden, no exit choreography and no
// change event.
func (c *Controller) applyInitial() {
	switch c.mode {
	case ModeContainer:
		for i, s := range c.slides {
			c.ensureWrapper(s)
			if i == c.active {
				s.Style.Opacity = 1
				s.Style.ZIndex = zIndexActive
				s.Style.Hidden = false
			} else {
				c.hideSlide(s)
			}
		}
		if len(c.slides) > 0 {
			c.sizer.schedule(c.slides[c.active])
		}
	case ModeMultiRoot:
		for i, s := range c.slides {
			s.ToggleClass(ClassActive, i == c.active)
			s.RemoveClass(ClassExiting)
		}
		if len(c.slides) > 0 {
			c.sizer.schedule(c.slides[c.active])
		}
	}
}

// applyContainer drives the crossfade-plus-tilt transition from slide old
// to slide next.
//
// The incoming and bystander updates are synchronous so the renderer
// observes a consistent start state before the outgoing animation begins;
// only then does the exit transform start.
func (c *Controller) applyContainer(old, next int) {
	// A newer transition owns the outgoing slide now; the previous exit's
	// completion callback must not fire later ("hidden wins").
	if c.exitCancel != nil {
		c.exitCancel()
		c.exitCancel = nil
	}

	in := c.slides[next]
	inWrapper := c.ensureWrapper(in)
	in.Style.Opacity = 1
	in.Style.ZIndex = zIndexActive
	in.Style.Hidden = false
	inWrapper.SetTransform(scene.Identity(c.cfg.PerspectivePx))

	// Everything that is neither old nor next goes straight to hidden.
	// Rapid repeated advances must never leave stale slides visible.
	for i, s := range c.slides {
		if i == old || i == next {
			continue
		}
		c.hideSlide(s)
	}

	out := c.slides[old]
	outWrapper := c.ensureWrapper(out)
	out.Style.Opacity = 1
	out.Style.ZIndex = zIndexExiting
	out.Style.Hidden = false
	outWrapper.SetTransform(scene.TiltExit(c.cfg.PerspectivePx, c.cfg.TiltDegrees))
	c.exitCancel = outWrapper.OnTransitionEnd(func() {
		out.Style.Opacity = 0
		out.Style.Hidden = true
		c.exitCancel = nil
	})

	c.sizer.schedule(in)
}

// hideSlide puts a container-mode slide into the hidden state with no
// transition.
func (c *Controller) hideSlide(s *scene.Node) {
	s.Style.Opacity = 0
	s.Style.ZIndex = zIndexHidden
	s.Style.Hidden = true
	if w := wrapperOf(s); w != nil {
		w.SetTransformImmediate(scene.Identity(c.cfg.PerspectivePx))
	}
}

// applyMultiRoot toggles per-slide classes. The exiting class goes on
// after the active toggles so the outgoing slide's exit style never
// momentarily matches entering selectors.
func (c *Controller) applyMultiRoot(old, next int) {
	for i, s := range c.slides {
		s.ToggleClass(ClassActive, i == next)
		if i != old {
			s.RemoveClass(ClassExiting)
		}
	}
	c.slides[old].AddClass(ClassExiting)

	c.sizer.schedule(c.slides[next])
}

// SlideStates reports every slide's visual state, derived from the nodes
// themselves rather than controller bookkeeping so tests and hosts can
// verify the steady-state invariant: exactly one active slide, at most
// one exiting, all others hidden.
func (c *Controller) SlideStates() []SlideState {
	states := make([]SlideState, len(c.slides))
	for i, s := range c.slides {
		states[i] = c.slideState(s)
	}
	return states
}

func (c *Controller) slideState(s *scene.Node) SlideState {
	if c.mode == ModeMultiRoot {
		switch {
		case s.HasClass(ClassActive):
			return SlideActive
		case s.HasClass(ClassExiting):
			return SlideExiting
		default:
			return SlideHidden
		}
	}
	switch {
	case s.Style.Opacity <= 0:
		return SlideHidden
	case s.Style.ZIndex == zIndexActive:
		return SlideActive
	default:
		return SlideExiting
	}
}
