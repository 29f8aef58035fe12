package game

import (
	"math"
	"math/rand/v2"

	"wraproids/geom"
)

// Player is the ship under keyboard control
type Player struct {
	Body

	// Angle is the heading in radians; -Pi/2 points up
	Angle float64

	// Input flags set by HandleKey
	Left, Right, Thrust bool

	// firing latches a press until the shot is taken
	firing bool

	// held blocks auto-fire while the key stays down
	held bool

	exhaust *Emitter
	cfg     PlayerConfig
}

// NewPlayer creates a ship at rest at (x, y) pointing up
func NewPlayer(x, y float64, now uint64, cfg *Config) *Player {
	return &Player{
		Body:    Body{X: x, Y: y},
		Angle:   -math.Pi / 2,
		exhaust: NewEmitter(cfg.Particle.Thrust, cfg.Particle.LifespanMs, now),
		cfg:     cfg.Player,
	}
}

// Update moves the ship, applies thrust, damping and turning, and returns
// exhaust particles
func (p *Player) Update(now uint64, dt float64, field Playfield, rng *rand.Rand) []Particle {
	p.Integrate(dt)
	p.WrapInto(field)

	var particles []Particle
	if p.Thrust {
		p.VX += p.cfg.Acceleration * math.Cos(p.Angle) * dt
		p.VY += p.cfg.Acceleration * math.Sin(p.Angle) * dt
		particles = p.exhaust.Emit(now, dt, p.Body, p.Angle, rng)
	}

	damp := math.Pow(p.cfg.Deceleration, dt)
	p.VX *= damp
	p.VY *= damp

	if p.Left != p.Right {
		if p.Left {
			p.Angle -= p.cfg.TurnSpeed * dt
		} else {
			p.Angle += p.cfg.TurnSpeed * dt
		}
	}

	return particles
}

// Hitbox returns the silhouette rotated to the heading in world space
func (p *Player) Hitbox() geom.Polygon {
	rotated := make(geom.Polygon, len(p.cfg.Shape))
	for i, pt := range p.cfg.Shape {
		rotated[i] = pt.Rotate(p.Angle + math.Pi/2)
	}
	return rotated.Translate(p.X, p.Y)
}

// Outlines returns the nine wrapped copies of the hitbox for drawing
func (p *Player) Outlines(field Playfield) []geom.Polygon {
	return field.Replicate(p.Hitbox())
}

// Nose returns the tip of the ship, where bullets leave
func (p *Player) Nose() geom.Point {
	if len(p.cfg.Shape) == 0 {
		return p.Position()
	}
	return p.cfg.Shape[0].Rotate(p.Angle+math.Pi/2).Add(p.X, p.Y)
}

// Shoot returns a bullet if a fire press is pending
func (p *Player) Shoot(now uint64, cfg *Config) *Bullet {
	if !p.firing {
		return nil
	}
	p.firing = false
	nose := p.Nose()
	return NewBullet(nose.X, nose.Y, p.Angle, true, now, cfg)
}

// Fire registers a key press or release. Each press yields one shot.
func (p *Player) Fire(pressed bool) {
	if pressed && !p.held {
		p.firing = true
	}
	p.held = pressed
}

// ApplyImpulse adds a velocity change
func (p *Player) ApplyImpulse(dvx, dvy float64) {
	p.VX += dvx
	p.VY += dvy
}

// Reset puts the ship back at (x, y) at rest and pointing up.
// Held input flags are kept so a key still down keeps working.
func (p *Player) Reset(x, y float64, now uint64) {
	p.Body = Body{X: x, Y: y}
	p.Angle = -math.Pi / 2
	p.firing = false
	p.exhaust.Reset(now)
}

// Target returns the state aliens aim at
func (p *Player) Target() Target {
	return Target{X: p.X, Y: p.Y, VX: p.VX, VY: p.VY}
}
