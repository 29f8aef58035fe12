package game

import (
	"math/rand/v2"

	"wraproids/geom"
)

// Alien is a saucer that crosses the field and shoots at the player
type Alien struct {
	Body

	// Strategy is fixed at spawn
	Strategy Strategy

	// NextShot is the earliest timestamp of the next shot attempt
	NextShot uint64

	shape geom.Polygon
}

// UnlockedStrategies returns the strategies available at a score
func UnlockedStrategies(score uint64, cfg AlienConfig) []Strategy {
	var out []Strategy
	for _, s := range Strategies {
		if score >= cfg.Tier(s).MinScore {
			out = append(out, s)
		}
	}
	return out
}

// SpawnAlien creates an alien on a random edge heading into the field.
// It returns nil when the score has not unlocked any strategy.
func SpawnAlien(score, now uint64, field Playfield, cfg AlienConfig, rng *rand.Rand) *Alien {
	unlocked := UnlockedStrategies(score, cfg)
	if len(unlocked) == 0 {
		return nil
	}

	strategy := unlocked[rng.IntN(len(unlocked))]
	tier := cfg.Tier(strategy)

	var x, y, dx, dy float64
	switch rng.IntN(4) {
	case 0: // top
		x, y, dy = rng.Float64()*field.Width, 0, 1
	case 1: // left
		x, y, dx = 0, rng.Float64()*field.Height, 1
	case 2: // bottom
		x, y, dy = rng.Float64()*field.Width, field.Height, -1
	default: // right
		x, y, dx = field.Width, rng.Float64()*field.Height, -1
	}

	speed := tier.Speed.Sample(rng)
	a := &Alien{
		Body:     Body{X: x, Y: y, VX: dx * speed, VY: dy * speed},
		Strategy: strategy,
		NextShot: now + cfg.FirstShotDelayMs,
		shape:    tier.Shape,
	}
	a.WrapInto(field)
	return a
}

// Update moves the alien and, when its shot is due, returns a bullet.
// A failed intercept leaves NextShot untouched so the alien retries next tick.
func (a *Alien) Update(now uint64, dt float64, field Playfield, score uint64, target Target, cfg *Config, rng *rand.Rand) *Bullet {
	a.Integrate(dt)
	a.WrapInto(field)

	if now < a.NextShot {
		return nil
	}

	shot, ok := a.Strategy.Aim(a.X, a.Y, target, cfg.Alien.MuzzleOffset, cfg.Bullet.Speed, rng)
	if !ok {
		return nil
	}

	a.NextShot = now + shotInterval(score, cfg.Alien.Tier(a.Strategy).ShotsPerSecondPerPoint)
	return NewBullet(shot.X, shot.Y, shot.Angle, false, now, cfg)
}

// Hitbox returns the outline in world space
func (a *Alien) Hitbox() geom.Polygon {
	return a.shape.Translate(a.X, a.Y)
}

// Outlines returns the nine wrapped copies of the hitbox for drawing
func (a *Alien) Outlines(field Playfield) []geom.Polygon {
	return field.Replicate(a.Hitbox())
}
