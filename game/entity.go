package game

import (
	"math"

	"wraproids/geom"
)

// Body is the kinematic state shared by every moving entity
type Body struct {
	// Position in playfield coordinates
	X, Y float64

	// Velocity in pixels per second
	VX, VY float64
}

// Integrate advances the position by one step without wrapping
func (b *Body) Integrate(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// WrapInto folds the position back onto the playfield
func (b *Body) WrapInto(field Playfield) {
	b.X, b.Y = field.Wrap(b.X, b.Y)
}

// Position returns the body's position as a point
func (b *Body) Position() geom.Point {
	return geom.Point{X: b.X, Y: b.Y}
}

// Heading returns the direction of travel in radians
func (b *Body) Heading() float64 {
	return math.Atan2(b.VY, b.VX)
}

// DistanceSqTo returns the squared distance to a point
func (b *Body) DistanceSqTo(x, y float64) float64 {
	dx := b.X - x
	dy := b.Y - y
	return dx*dx + dy*dy
}

// polarBody builds a body at (x, y) moving at speed along angle
func polarBody(x, y, angle, speed float64) Body {
	return Body{
		X:  x,
		Y:  y,
		VX: speed * math.Cos(angle),
		VY: speed * math.Sin(angle),
	}
}
