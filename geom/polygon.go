// Package geom holds the 2D collision primitives shared by every entity.
// Nothing in here knows about wrapping; callers translate shapes first.
package geom

import "math"

// Epsilon guards the orientation test and the crossing denominator
const Epsilon = 1e-9

// Point is a 2D position or offset
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rotate rotates p around the origin by angle radians
func (p Point) Rotate(angle float64) Point {
	sinA, cosA := math.Sincos(angle)
	return Point{
		X: p.X*cosA - p.Y*sinA,
		Y: p.X*sinA + p.Y*cosA,
	}
}

// Polygon is a closed loop of points; the last point connects back to the first
type Polygon []Point

// Translate returns a copy of the polygon moved by (dx, dy)
func (poly Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = p.Add(dx, dy)
	}
	return out
}

// PointInPolygon reports whether p lies inside poly using ray-casting parity.
// A horizontal ray is cast towards +X and every edge it crosses is counted.
func PointInPolygon(p Point, poly Polygon) bool {
	n := len(poly)
	if n < 2 {
		return false
	}

	crossings := 0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]

		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}

		// x of the edge at the ray's height
		ix := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y+Epsilon) + a.X
		if p.X < ix {
			crossings++
		}
	}

	return crossings%2 == 1
}

type turn int

const (
	collinear turn = iota
	clockwise
	counterClockwise
)

func orientation(p, q, r Point) turn {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case math.Abs(val) < Epsilon:
		return collinear
	case val > 0:
		return clockwise
	default:
		return counterClockwise
	}
}

// onSegment reports whether q lies within the bounding box of segment pr.
// Only meaningful when p, q and r are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segment a1-a2 touches segment b1-b2
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	o1 := orientation(a1, a2, b1)
	o2 := orientation(a1, a2, b2)
	o3 := orientation(b1, b2, a1)
	o4 := orientation(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	return (o1 == collinear && onSegment(a1, b1, a2)) ||
		(o2 == collinear && onSegment(a1, b2, a2)) ||
		(o3 == collinear && onSegment(b1, a1, b2)) ||
		(o4 == collinear && onSegment(b1, a2, b2))
}

// PolygonsIntersect reports whether two polygons overlap.
// Vertex containment catches full nesting, the edge sweep catches
// overlaps where every vertex sits outside the other shape.
// A two-point polygon is treated as a segment.
func PolygonsIntersect(a, b Polygon) bool {
	for _, p := range a {
		if PointInPolygon(p, b) {
			return true
		}
	}
	for _, p := range b {
		if PointInPolygon(p, a) {
			return true
		}
	}

	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if SegmentsIntersect(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}

	return false
}
