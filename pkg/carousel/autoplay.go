package carousel

import (
	"time"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"
)

// startAutoplay arms the recurring advance timer. Disabled or
// single-slide widgets never start one.
func (c *Controller) startAutoplay() {
	if c.disposed || !c.cfg.Autoplay || len(c.slides) <= 1 || c.autoplay != nil {
		return
	}
	c.autoplay = animation.NewInterval(c.cfg.Interval, c.Next)
	c.autoplay.Start()
}

func (c *Controller) stopAutoplay() {
	if c.autoplay == nil {
		return
	}
	c.autoplay.Stop()
	c.autoplay = nil
}

// SetAutoplay toggles the timer. Re-enabling restarts it with a fresh
// period honoring the current interval setting.
func (c *Controller) SetAutoplay(enabled bool) {
	if c.cfg.Autoplay == enabled {
		return
	}
	c.cfg.Autoplay = enabled
	c.stopAutoplay()
	c.startAutoplay()
}

// SetInterval changes the autoplay period. A running timer restarts on
// the new period; a stopped one stays stopped. Non-positive durations
// fall back to the default.
func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	if c.cfg.Interval == d {
		return
	}
	c.cfg.Interval = d
	if c.autoplay != nil {
		c.stopAutoplay()
		c.startAutoplay()
	}
}

// AutoplayRunning reports whether the advance timer is armed.
func (c *Controller) AutoplayRunning() bool {
	return c.autoplay != nil && c.autoplay.IsActive()
}
