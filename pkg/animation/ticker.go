// Package animation provides the timing primitives that drive the workshop
// widgets: slide transitions, autoplay intervals, and the decorative
// particle and call-to-action effects.
//
// # Core Components
//
//   - [AnimationController]: drives a value from 0.0 to 1.0 over a duration
//     with an easing curve. Slide transitions are controllers under the hood.
//
//   - [Tween]: maps the controller's 0-1 value onto another range or type.
//
//   - [Interval]: fires a callback on a recurring period. The carousel's
//     autoplay orchestrator is built on it.
//
//   - Curves: easing functions ([Ease], [EaseIn], [EaseOut], [EaseInOut],
//     [CubicBezier]) matching their CSS equivalents, since these widgets are
//     ports of CSS-transition-driven components.
//
// All timing flows through the package [Clock], so tests can substitute a
// fake clock and step frames deterministically via [StepTickers].
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController]
// and [Interval]. Most code should use those rather than Ticker directly.
//
// The callback receives the elapsed time since Start was called. Tickers
// are advanced by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame by the host loop or test harness.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
