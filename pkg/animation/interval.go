package animation

import "time"

// Interval fires a callback each time a full period elapses.
//
// Interval is the recurring analogue of [AnimationController]: it is driven
// by the same frame loop via [StepTickers] and the same replaceable [Clock],
// so tests can advance it deterministically. The carousel's autoplay
// orchestrator owns one Interval and restarts it whenever its settings
// change.
//
// If more than one period elapses between frames, the callback fires once
// and the missed periods are dropped, matching timer coalescing in the
// event-loop environments these widgets were ported from.
type Interval struct {
	period time.Duration
	fn     func()
	ticker *Ticker
	fired  int64
}

// NewInterval creates an interval timer with the given period and callback.
func NewInterval(period time.Duration, fn func()) *Interval {
	return &Interval{
		period: period,
		fn:     fn,
	}
}

// Period returns the configured period.
func (iv *Interval) Period() time.Duration {
	return iv.period
}

// Start activates the interval. A non-positive period or an already
// running interval makes Start a no-op.
func (iv *Interval) Start() {
	if iv.period <= 0 || iv.ticker != nil {
		return
	}
	iv.fired = 0
	iv.ticker = NewTicker(iv.tick)
	iv.ticker.Start()
}

// Stop deactivates the interval. Safe to call repeatedly, and safe to
// call from within the interval's own callback.
func (iv *Interval) Stop() {
	if iv.ticker == nil {
		return
	}
	iv.ticker.Stop()
	iv.ticker = nil
}

// IsActive returns whether the interval is currently running.
func (iv *Interval) IsActive() bool {
	return iv.ticker != nil
}

func (iv *Interval) tick(elapsed time.Duration) {
	n := int64(elapsed / iv.period)
	if n > iv.fired {
		iv.fired = n
		if iv.fn != nil {
			iv.fn()
		}
	}
}
