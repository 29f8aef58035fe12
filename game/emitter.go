package game

import (
	"math"
	"math/rand/v2"
)

// Emitter releases particles at a fixed rate regardless of frame rate.
// Slow frames emit a catch-up batch; fast frames are gated by the
// time since the last emission.
type Emitter struct {
	cfg      EmitterConfig
	lifespan Range
	last     uint64
}

// NewEmitter creates an emitter whose gate opens from now
func NewEmitter(cfg EmitterConfig, lifespan Range, now uint64) *Emitter {
	return &Emitter{cfg: cfg, lifespan: lifespan, last: now}
}

// Count returns how many particles are owed this tick and updates the gate
func (e *Emitter) Count(now uint64, dt float64) int {
	if e.cfg.Rate <= 0 {
		return 0
	}

	if dt > 0 {
		fps := 1 / dt
		if e.cfg.Rate > fps {
			e.last = now
			return int(math.Ceil(e.cfg.Rate / fps))
		}
	}

	interval := 1000 / e.cfg.Rate
	if now >= e.last && float64(now-e.last) >= interval {
		e.last = now
		return 1
	}

	return 0
}

// Emit returns the particles owed this tick.
// They leave src opposite to heading, scattered by the configured
// spread, and inherit src's velocity.
func (e *Emitter) Emit(now uint64, dt float64, src Body, heading float64, rng *rand.Rand) []Particle {
	n := e.Count(now, dt)
	if n == 0 {
		return nil
	}

	particles := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := heading + math.Pi + (rng.Float64()*2-1)*e.cfg.AngleOffset
		body := polarBody(src.X, src.Y, angle, e.cfg.Speed.Sample(rng))
		body.VX += src.VX
		body.VY += src.VY
		particles = append(particles, NewParticle(body, now, e.lifespan, rng))
	}
	return particles
}

// Reset restarts the gate at now
func (e *Emitter) Reset(now uint64) {
	e.last = now
}
