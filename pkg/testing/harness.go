package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
)

// ErrSettleTimeout is returned when Settle exceeds its timeout.
var ErrSettleTimeout = errors.New("Settle timed out: widgets did not go idle")

// FrameDuration is the simulated frame period used by PumpFor and Settle.
const FrameDuration = 16 * time.Millisecond

// Harness drives the workshop widgets without a real host loop. It owns a
// scene and a fake clock, and installs the clock as the animation time
// source for the duration of the test.
type Harness struct {
	scene     *scene.Scene
	clock     *FakeClock
	prevClock animation.Clock
}

// NewHarness creates a harness with a fresh scene and fake clock.
// Call Cleanup() when done, or use NewHarnessWithT() instead.
func NewHarness() *Harness {
	clk := NewFakeClock()
	h := &Harness{
		scene: scene.New(),
		clock: clk,
	}
	h.prevClock = animation.SetClock(clk)
	return h
}

// NewHarnessWithT creates a harness that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T) *Harness {
	h := NewHarness()
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the previous animation clock. Must be called if not
// using NewHarnessWithT.
func (h *Harness) Cleanup() {
	animation.SetClock(h.prevClock)
}

// Scene returns the harness's scene.
func (h *Harness) Scene() *scene.Scene {
	return h.scene
}

// Clock returns the fake clock for advancing time directly.
func (h *Harness) Clock() *FakeClock {
	return h.clock
}

// Pump runs a single frame: deferred frame callbacks first, then active
// tickers, matching the host loop's ordering.
func (h *Harness) Pump() {
	h.scene.FlushFrames()
	animation.StepTickers()
}

// PumpFor advances the clock in FrameDuration steps until d has elapsed,
// pumping a frame at each step.
func (h *Harness) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameDuration {
		h.clock.Advance(FrameDuration)
		h.Pump()
	}
}

// Settle pumps frames until no tickers are active and no frame callbacks
// are pending, or the timeout is reached.
func (h *Harness) Settle(timeout time.Duration) error {
	for elapsed := time.Duration(0); elapsed < timeout; elapsed += FrameDuration {
		h.Pump()
		if !h.needsWork() {
			return nil
		}
		h.clock.Advance(FrameDuration)
	}
	return ErrSettleTimeout
}

func (h *Harness) needsWork() bool {
	return animation.HasActiveTickers() || h.scene.HasPendingFrames()
}
