package game

import (
	"math/rand/v2"

	"wraproids/geom"
)

// Bullet is a projectile fired by the player or an alien
type Bullet struct {
	Body

	// PlayerShot is true for bullets fired by the player
	PlayerShot bool

	// Death is the expiry timestamp
	Death uint64

	trail *Emitter

	// unwrapped segment travelled during the last update
	from, to geom.Point
}

// NewBullet creates a bullet at (x, y) travelling along angle
func NewBullet(x, y, angle float64, playerShot bool, now uint64, cfg *Config) *Bullet {
	body := polarBody(x, y, angle, cfg.Bullet.Speed)
	pos := body.Position()
	return &Bullet{
		Body:       body,
		PlayerShot: playerShot,
		Death:      now + cfg.Bullet.LifespanMs,
		trail:      NewEmitter(cfg.Particle.Trail, cfg.Particle.LifespanMs, now),
		from:       pos,
		to:         pos,
	}
}

// Update moves the bullet, records its swept segment and returns trail particles
func (b *Bullet) Update(now uint64, dt float64, field Playfield, rng *rand.Rand) []Particle {
	b.from = b.Position()
	b.Integrate(dt)
	b.to = b.Position()

	particles := b.trail.Emit(now, dt, b.Body, b.Heading(), rng)

	b.WrapInto(field)
	return particles
}

// Trail returns the segment swept during the last update.
// Collision tests use it so fast bullets cannot tunnel through thin targets.
func (b *Bullet) Trail() geom.Polygon {
	return geom.Polygon{b.from, b.to}
}

// Alive reports whether the bullet has not yet expired at now
func (b *Bullet) Alive(now uint64) bool {
	return b.Death >= now
}
