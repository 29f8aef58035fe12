package game

import (
	"math"
	"math/rand/v2"

	"wraproids/geom"
)

type wellPhase int

const (
	wellGrowing wellPhase = iota
	wellHolding
	wellShrinking
)

// BlackHole is a gravity well that pulls the player while it lives.
// It grows to its max radius, holds until ShrinkAt, then shrinks away.
type BlackHole struct {
	X, Y float64

	Radius    float64
	MaxRadius float64

	// ShrinkAt is when the well starts collapsing
	ShrinkAt uint64

	// Angle spins the drawn arms
	Angle float64

	phase wellPhase
}

// NewBlackHole creates a well at a random position
func NewBlackHole(now uint64, field Playfield, cfg BlackHoleConfig, rng *rand.Rand) *BlackHole {
	maxRadius := cfg.MaxRadius.Sample(rng)
	growMs := 1000 * maxRadius / cfg.GrowthRate

	return &BlackHole{
		X:         rng.Float64() * field.Width,
		Y:         rng.Float64() * field.Height,
		MaxRadius: maxRadius,
		ShrinkAt:  now + uint64(growMs) + uint64(cfg.HoldMs.Sample(rng)),
	}
}

// Update animates the radius and spin
func (b *BlackHole) Update(now uint64, dt float64, cfg BlackHoleConfig) {
	if b.phase != wellShrinking && now >= b.ShrinkAt {
		b.phase = wellShrinking
	}

	switch b.phase {
	case wellGrowing:
		b.Radius += cfg.GrowthRate * dt
		if b.Radius >= b.MaxRadius {
			b.Radius = b.MaxRadius
			b.phase = wellHolding
		}
	case wellHolding:
	case wellShrinking:
		b.Radius -= cfg.ShrinkRate * dt
	}

	b.Angle += cfg.RotationRate * dt
}

// Alive reports whether the well still exists
func (b *BlackHole) Alive() bool {
	return b.phase != wellShrinking || b.Radius > 0
}

// Force returns the velocity change for a body at (x, y) over dt.
// The pull is inverse-square, scaled by the current radius, and comes
// from the nearest wrapped copy of the well.
func (b *BlackHole) Force(x, y, dt float64, field Playfield, cfg BlackHoleConfig) (float64, float64) {
	var dx, dy float64
	best := math.Inf(1)
	for _, c := range field.Points(b.X, b.Y) {
		ddx, ddy := c.X-x, c.Y-y
		if d2 := ddx*ddx + ddy*ddy; d2 < best {
			best = d2
			dx, dy = ddx, ddy
		}
	}

	d := math.Sqrt(best)
	if d < geom.Epsilon || d > cfg.RangeFactor*b.Radius {
		return 0, 0
	}

	pull := b.Radius * cfg.ForceFactor / (d * d)
	fac := dt * pull / d
	return fac * dx, fac * dy
}

// Arms returns the spiral line segments used to draw the well, for every
// wrapped copy
func (b *BlackHole) Arms(field Playfield, cfg BlackHoleConfig) [][2]geom.Point {
	if cfg.Arms <= 0 || cfg.ArmSegments < 2 {
		return nil
	}

	res := float64(cfg.ArmSegments)
	local := make([][2]geom.Point, 0, cfg.Arms*(cfg.ArmSegments-1))
	for i := 0; i < cfg.Arms; i++ {
		base := float64(i)*2*math.Pi/float64(cfg.Arms) + b.Angle
		for j := 1; j < cfg.ArmSegments; j++ {
			a0 := base + float64(j-1)*cfg.ArmTwist/res
			a1 := base + float64(j)*cfg.ArmTwist/res
			d0 := float64(j-1) * b.Radius / res
			d1 := float64(j) * b.Radius / res
			local = append(local, [2]geom.Point{
				{X: d0 * math.Cos(a0), Y: d0 * math.Sin(a0)},
				{X: d1 * math.Cos(a1), Y: d1 * math.Sin(a1)},
			})
		}
	}

	out := make([][2]geom.Point, 0, len(local)*len(wrapOffsets))
	for _, c := range field.Points(b.X, b.Y) {
		for _, seg := range local {
			out = append(out, [2]geom.Point{seg[0].Add(c.X, c.Y), seg[1].Add(c.X, c.Y)})
		}
	}
	return out
}
