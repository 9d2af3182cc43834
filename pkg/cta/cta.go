// Package cta implements the workshop's animated call-to-action button.
//
// The button idles with a gentle pulse (opacity and scale breathing on a
// repeating animation) and pops to full prominence while hovered. Both
// effects run on the shared animation clock, so the test harness can step
// them deterministically.
package cta

import (
	"time"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
)

// Defaults for the pulse and hover effects.
const (
	DefaultPulsePeriod   = 2400 * time.Millisecond
	DefaultHoverDuration = 200 * time.Millisecond
	DefaultRestOpacity   = 0.85
	DefaultRestScale     = 0.97
	DefaultHoverScale    = 1.05
)

// Config tunes the call-to-action's idle and hover behavior.
type Config struct {
	// PulsePeriod is the length of one full breathe cycle (dim and back).
	// Zero means DefaultPulsePeriod; negative disables the pulse.
	PulsePeriod time.Duration
	// HoverDuration is the length of the hover pop transition. Zero means
	// DefaultHoverDuration.
	HoverDuration time.Duration
	// RestOpacity is the dimmest point of the pulse. Zero means
	// DefaultRestOpacity.
	RestOpacity float64
	// HoverScale is the scale while hovered. Zero means DefaultHoverScale.
	HoverScale float64
	// OnClick fires on activation.
	OnClick func()
}

func (c Config) withDefaults() Config {
	if c.PulsePeriod == 0 {
		c.PulsePeriod = DefaultPulsePeriod
	}
	if c.HoverDuration <= 0 {
		c.HoverDuration = DefaultHoverDuration
	}
	if c.RestOpacity <= 0 {
		c.RestOpacity = DefaultRestOpacity
	}
	if c.HoverScale <= 0 {
		c.HoverScale = DefaultHoverScale
	}
	return c
}

// Button is a mounted call-to-action. It owns two animations: a repeating
// pulse that ping-pongs between the prominent and rest looks, and a hover
// controller that overrides the pulse while the pointer is over the button.
type Button struct {
	cfg  Config
	node *scene.Node

	pulse *animation.AnimationController
	hover *animation.AnimationController

	opacityTween *animation.Tween[float64]
	scaleTween   *animation.Tween[float64]

	scale    float64
	hovered  bool
	cancels  []func()
	disposed bool
}

// New mounts a call-to-action over the given node. The node's opacity is
// animated in place; scale is exposed via Scale for the renderer.
func New(cfg Config, node *scene.Node) *Button {
	b := &Button{
		cfg:   cfg.withDefaults(),
		node:  node,
		scale: 1,
	}

	// Pulse value 0 is the prominent look, 1 the rest look.
	b.opacityTween = animation.TweenFloat64(1, b.cfg.RestOpacity)
	b.scaleTween = animation.TweenFloat64(1, DefaultRestScale)

	// Half a period out, half back; ping-pong on the status listener.
	b.pulse = animation.NewAnimationController(b.cfg.PulsePeriod / 2)
	b.pulse.Curve = animation.EaseInOut
	b.cancels = append(b.cancels, b.pulse.AddListener(b.applyPulse))
	b.cancels = append(b.cancels, b.pulse.AddStatusListener(func(s animation.AnimationStatus) {
		if b.hovered {
			return
		}
		switch s {
		case animation.AnimationCompleted:
			b.pulse.Reverse()
		case animation.AnimationDismissed:
			b.pulse.Forward()
		}
	}))

	b.hover = animation.NewAnimationController(b.cfg.HoverDuration)
	b.hover.Curve = animation.EaseOut
	b.cancels = append(b.cancels, b.hover.AddListener(b.applyHover))

	if b.cfg.PulsePeriod > 0 {
		b.pulse.Forward()
	}
	return b
}

// applyPulse writes the pulse's current look onto the node. Hover owns the
// look while active, so the pulse stays silent until the pointer leaves.
func (b *Button) applyPulse() {
	if b.hovered || b.node == nil {
		return
	}
	t := b.pulse.Value
	b.node.Style.Opacity = b.opacityTween.Evaluate(t)
	b.scale = b.scaleTween.Evaluate(t)
}

// applyHover writes the hover transition's current look onto the node.
func (b *Button) applyHover() {
	if b.node == nil {
		return
	}
	t := b.hover.Value
	b.node.Style.Opacity = animation.LerpFloat64(b.cfg.RestOpacity, 1, t)
	b.scale = animation.LerpFloat64(1, b.cfg.HoverScale, t)
}

// Scale returns the current render scale.
func (b *Button) Scale() float64 { return b.scale }

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Pulsing reports whether the idle pulse animation is running. The pulse
// is considered paused while hovered even though the controller keeps its
// last direction.
func (b *Button) Pulsing() bool {
	return !b.disposed && !b.hovered && b.pulse.IsAnimating()
}

// HoverEnter pauses the pulse and animates to the prominent hover look.
func (b *Button) HoverEnter() {
	if b.disposed || b.hovered {
		return
	}
	b.hovered = true
	b.pulse.Stop()
	b.hover.Forward()
}

// HoverLeave animates back to the rest look, then resumes the pulse.
func (b *Button) HoverLeave() {
	if b.disposed || !b.hovered {
		return
	}
	b.hovered = false
	b.hover.Reverse()
	if b.cfg.PulsePeriod > 0 {
		b.pulse.Forward()
	}
}

// Click fires the configured activation callback.
func (b *Button) Click() {
	if b.disposed || b.cfg.OnClick == nil {
		return
	}
	b.cfg.OnClick()
}

// Dispose stops both animations and drops all listeners.
func (b *Button) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
	b.pulse.Dispose()
	b.hover.Dispose()
}
