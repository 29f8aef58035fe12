package game

import (
	"math"

	"wraproids/geom"
)

// wrapOffsets are the nine tile offsets a shape is replicated into.
// The untranslated copy comes first so most hits short-circuit early.
var wrapOffsets = [9][2]float64{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// Playfield is the toroidal area every entity lives on
type Playfield struct {
	Width, Height float64
}

// Wrap folds a position back into [0,Width)x[0,Height)
func (f Playfield) Wrap(x, y float64) (float64, float64) {
	return wrapAxis(x, f.Width), wrapAxis(y, f.Height)
}

func wrapAxis(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// tiny negatives round up to size
	if v >= size {
		v = 0
	}
	return v
}

// Center returns the middle of the field
func (f Playfield) Center() (float64, float64) {
	return f.Width / 2, f.Height / 2
}

// Replicate returns the nine wrap-translated copies of a world-space polygon
func (f Playfield) Replicate(poly geom.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, 0, len(wrapOffsets))
	for _, o := range wrapOffsets {
		out = append(out, poly.Translate(o[0]*f.Width, o[1]*f.Height))
	}
	return out
}

// Points returns the nine wrap-translated copies of a single position
func (f Playfield) Points(x, y float64) []geom.Point {
	out := make([]geom.Point, 0, len(wrapOffsets))
	for _, o := range wrapOffsets {
		out = append(out, geom.Point{X: x + o[0]*f.Width, Y: y + o[1]*f.Height})
	}
	return out
}

// Collide reports whether any wrapped copy of hitbox overlaps other.
// Translating one side is enough; both sides share the same lattice.
func (f Playfield) Collide(hitbox, other geom.Polygon) bool {
	for _, o := range wrapOffsets {
		if geom.PolygonsIntersect(hitbox.Translate(o[0]*f.Width, o[1]*f.Height), other) {
			return true
		}
	}
	return false
}

// Contains reports whether p lies inside any wrapped copy of hitbox
func (f Playfield) Contains(hitbox geom.Polygon, p geom.Point) bool {
	for _, o := range wrapOffsets {
		if geom.PointInPolygon(p, hitbox.Translate(o[0]*f.Width, o[1]*f.Height)) {
			return true
		}
	}
	return false
}
