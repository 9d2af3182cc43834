package animation

import (
	"testing"
	"time"
)

// stepClock is a manually advanced clock for driving tickers in tests.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func withStepClock(t *testing.T) *stepClock {
	t.Helper()
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestAnimationController_ForwardCompletes(t *testing.T) {
	clk := withStepClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	if got := c.Status(); got != AnimationForward {
		t.Fatalf("status after Forward = %v, want forward", got)
	}

	clk.advance(50 * time.Millisecond)
	StepTickers()
	if c.Value <= 0 || c.Value >= 1 {
		t.Errorf("mid-animation value = %v, want in (0, 1)", c.Value)
	}

	clk.advance(60 * time.Millisecond)
	StepTickers()
	if c.Value != 1 {
		t.Errorf("final value = %v, want 1", c.Value)
	}
	if !c.IsCompleted() {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if HasActiveTickers() {
		t.Error("completed controller should leave no active tickers")
	}
}

func TestAnimationController_StatusListenerUnsubscribe(t *testing.T) {
	clk := withStepClock(t)

	c := NewAnimationController(10 * time.Millisecond)
	defer c.Dispose()

	var statuses []AnimationStatus
	cancel := c.AddStatusListener(func(s AnimationStatus) {
		statuses = append(statuses, s)
	})

	c.Forward()
	clk.advance(20 * time.Millisecond)
	StepTickers()

	if len(statuses) != 2 || statuses[0] != AnimationForward || statuses[1] != AnimationCompleted {
		t.Fatalf("statuses = %v, want [forward completed]", statuses)
	}

	cancel()
	c.Reverse()
	clk.advance(20 * time.Millisecond)
	StepTickers()
	if len(statuses) != 2 {
		t.Errorf("listener fired after unsubscribe: %v", statuses)
	}
}

func TestAnimationController_ZeroDurationSnapsToTarget(t *testing.T) {
	clk := withStepClock(t)

	c := NewAnimationController(0)
	defer c.Dispose()

	c.Forward()
	clk.advance(time.Millisecond)
	StepTickers()
	if c.Value != 1 || !c.IsCompleted() {
		t.Errorf("value = %v status = %v, want 1/completed", c.Value, c.Status())
	}
}

func TestInterval_FiresOncePerPeriod(t *testing.T) {
	clk := withStepClock(t)

	fires := 0
	iv := NewInterval(4*time.Second, func() { fires++ })
	iv.Start()
	defer iv.Stop()

	// Under one period: nothing.
	clk.advance(3 * time.Second)
	StepTickers()
	if fires != 0 {
		t.Fatalf("fired %d times before first period", fires)
	}

	clk.advance(time.Second)
	StepTickers()
	if fires != 1 {
		t.Fatalf("fires = %d after one period, want 1", fires)
	}

	// A stall spanning several periods coalesces into one fire.
	clk.advance(10 * time.Second)
	StepTickers()
	if fires != 2 {
		t.Errorf("fires = %d after stall, want 2 (coalesced)", fires)
	}
}

func TestInterval_StopIsIdempotent(t *testing.T) {
	withStepClock(t)

	iv := NewInterval(time.Second, func() {})
	iv.Start()
	iv.Stop()
	iv.Stop()
	if iv.IsActive() {
		t.Error("interval active after Stop")
	}
	if HasActiveTickers() {
		t.Error("stopped interval should leave no active tickers")
	}
}

func TestInterval_NonPositivePeriodNeverStarts(t *testing.T) {
	withStepClock(t)

	iv := NewInterval(0, func() { t.Error("zero-period interval fired") })
	iv.Start()
	if iv.IsActive() {
		t.Error("zero-period interval should not start")
	}
}

func TestCubicBezier_Endpoints(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	if got := curve(0); got != 0 {
		t.Errorf("curve(0) = %v, want 0", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("curve(1) = %v, want 1", got)
	}
	mid := curve(0.5)
	if mid <= 0 || mid >= 1 {
		t.Errorf("curve(0.5) = %v, want in (0, 1)", mid)
	}
}
