package game

import (
	"math"
	"math/rand/v2"

	"wraproids/geom"
)

// Asteroid is a drifting rock with a jittered outline
type Asteroid struct {
	Body

	// Radius is the nominal radius before jitter
	Radius float64

	// Shape is the outline relative to the centre, generated once
	Shape geom.Polygon
}

// VertexCount returns the number of outline points for a radius
func VertexCount(radius, pointsPerRadius float64) int {
	return max(3, int(math.Floor(radius*pointsPerRadius)))
}

// NewAsteroid creates a rock at (x, y) with a random outline and drift
func NewAsteroid(x, y, radius float64, cfg AsteroidConfig, rng *rand.Rand) *Asteroid {
	n := VertexCount(radius, cfg.PointsPerRadius)
	shape := make(geom.Polygon, n)
	jitter := Range{Min: 1 - cfg.Jitter, Max: 1 + cfg.Jitter}
	for i := range shape {
		angle := float64(i) * 2 * math.Pi / float64(n)
		r := radius * jitter.Sample(rng)
		shape[i] = geom.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}

	angle := rng.Float64() * 2 * math.Pi
	return &Asteroid{
		Body:   polarBody(x, y, angle, cfg.Speed.Sample(rng)),
		Radius: radius,
		Shape:  shape,
	}
}

// Update drifts and wraps the rock
func (a *Asteroid) Update(dt float64, field Playfield) {
	a.Integrate(dt)
	a.WrapInto(field)
}

// Hitbox returns the outline in world space
func (a *Asteroid) Hitbox() geom.Polygon {
	return a.Shape.Translate(a.X, a.Y)
}

// Outlines returns the nine wrapped copies of the hitbox for drawing
func (a *Asteroid) Outlines(field Playfield) []geom.Polygon {
	return field.Replicate(a.Hitbox())
}

// Split returns the two half-size children, or nil below the minimum radius
func (a *Asteroid) Split(cfg AsteroidConfig, rng *rand.Rand) []*Asteroid {
	r := a.Radius / 2
	if r < cfg.MinRadius {
		return nil
	}
	return []*Asteroid{
		NewAsteroid(a.X, a.Y, r, cfg, rng),
		NewAsteroid(a.X, a.Y, r, cfg, rng),
	}
}

// Score returns the points for destroying the rock; smaller rocks pay more
func (a *Asteroid) Score(scorePerRadius float64) uint64 {
	return uint64(scorePerRadius / a.Radius)
}

// SpawnLocation samples candidate points and keeps the one farthest from
// (px, py). It stops early once a candidate is at least minDistSq away;
// when the budget runs out the best candidate so far is used.
func SpawnLocation(px, py float64, field Playfield, attempts int, minDistSq float64, rng *rand.Rand) (float64, float64) {
	var bestX, bestY, bestSq float64

	for i := 0; i < attempts && bestSq < minDistSq; i++ {
		x := float64(rng.IntN(max(1, int(field.Width))))
		y := float64(rng.IntN(max(1, int(field.Height))))

		dx := px - x
		dy := py - y
		if sq := dx*dx + dy*dy; sq > bestSq {
			bestSq = sq
			bestX, bestY = x, y
		}
	}

	return bestX, bestY
}
