package game

import (
	"math"
	"math/rand/v2"
)

// Particle is a cosmetic point that drifts until it expires
type Particle struct {
	Body

	// Death is the timestamp after which the particle is removed
	Death uint64
}

// NewParticle creates a particle with a random lifespan
func NewParticle(body Body, now uint64, lifespan Range, rng *rand.Rand) Particle {
	return Particle{
		Body:  body,
		Death: now + uint64(lifespan.Sample(rng)),
	}
}

// Update moves the particle and wraps it
func (p *Particle) Update(dt float64, field Playfield) {
	p.Integrate(dt)
	p.WrapInto(field)
}

// Alive reports whether the particle is still visible at now
func (p *Particle) Alive(now uint64) bool {
	return p.Death >= now
}

// Explosion returns a burst of particles flying out of (x, y)
func Explosion(x, y float64, now uint64, cfg ParticleConfig, rng *rand.Rand) []Particle {
	count := int(cfg.ExplosionCount.Sample(rng))
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.ExplosionSpeed.Sample(rng)
		particles = append(particles, NewParticle(polarBody(x, y, angle, speed), now, cfg.LifespanMs, rng))
	}
	return particles
}
