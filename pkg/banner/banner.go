// Package banner implements the workshop's particle-effects hero banner.
//
// A Field maintains a set of drifting, fading particles advanced once per
// frame by a ticker on the shared animation clock. The field is headless:
// it owns the simulation only, and a renderer reads Particles each frame.
package banner

import (
	"math/rand"
	"time"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"
)

// Defaults for the particle field.
const (
	DefaultDensity = 40
	DefaultWidth   = 1200.0
	DefaultHeight  = 400.0
	DefaultLife    = 3 * time.Second
)

// DefaultPalette is the workshop's hero accent palette.
var DefaultPalette = []string{"#0b5fff", "#4fc3f7", "#80d8ff", "#ffffff"}

// Particle is one drifting spark. Life runs from 1 (just spawned) down to
// 0 (culled); renderers use it directly as opacity.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  string
}

// Config tunes the particle field.
type Config struct {
	// Density is the target particle count. Zero means DefaultDensity;
	// negative disables spawning.
	Density int
	// Palette holds the particle colors, picked uniformly per spawn.
	// Empty means DefaultPalette.
	Palette []string
	// Width and Height bound the spawn area. Zero means the defaults.
	Width, Height float64
	// Life is how long a particle takes to fade out. Zero means
	// DefaultLife.
	Life time.Duration
	// Seed fixes the random sequence. Zero seeds from the current time.
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.Density == 0 {
		c.Density = DefaultDensity
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Life <= 0 {
		c.Life = DefaultLife
	}
	return c
}

// Field is a running particle simulation.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	particles []Particle
	ticker    *animation.Ticker
	last      time.Duration
	disposed  bool
}

// New creates and starts a particle field.
func New(cfg Config) *Field {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f := &Field{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	f.ticker = animation.NewTicker(f.step)
	f.ticker.Start()
	return f
}

// Particles returns a snapshot of the live particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Running reports whether the simulation ticker is active.
func (f *Field) Running() bool {
	return f.ticker != nil && f.ticker.IsActive()
}

// step advances the simulation by the time since the previous frame:
// integrate positions, fade lifetimes, cull dead particles, then top the
// field back up to the configured density.
func (f *Field) step(elapsed time.Duration) {
	dt := (elapsed - f.last).Seconds()
	f.last = elapsed
	if dt <= 0 {
		return
	}

	fade := dt / f.cfg.Life.Seconds()
	live := f.particles[:0]
	for _, p := range f.particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= fade
		if p.Life > 0 && p.X >= 0 && p.X <= f.cfg.Width && p.Y >= 0 && p.Y <= f.cfg.Height {
			live = append(live, p)
		}
	}
	f.particles = live

	for len(f.particles) < f.cfg.Density {
		f.particles = append(f.particles, f.spawn())
	}
}

// spawn creates a particle at a random position drifting gently upward.
func (f *Field) spawn() Particle {
	return Particle{
		X:     f.rng.Float64() * f.cfg.Width,
		Y:     f.rng.Float64() * f.cfg.Height,
		VX:    (f.rng.Float64() - 0.5) * 30,
		VY:    -10 - f.rng.Float64()*20,
		Life:  1,
		Color: f.cfg.Palette[f.rng.Intn(len(f.cfg.Palette))],
	}
}

// Dispose stops the simulation ticker and drops the particles.
func (f *Field) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.ticker.Stop()
	f.ticker = nil
	f.particles = nil
}
