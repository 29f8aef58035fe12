package game

import (
	"math"
	"testing"
)

func TestVertexCount(t *testing.T) {
	tests := []struct {
		radius, density float64
		want            int
	}{
		{100, 0.1, 10},
		{55, 0.1, 5},
		{20, 0.1, 3},
		{0, 0.1, 3},
	}
	for _, tt := range tests {
		if got := VertexCount(tt.radius, tt.density); got != tt.want {
			t.Errorf("VertexCount(%v, %v) = %d, want %d", tt.radius, tt.density, got, tt.want)
		}
	}
}

func TestNewAsteroidShape(t *testing.T) {
	cfg := DefaultConfig().Asteroid
	rng := newRand(1)

	for _, radius := range []float64{20, 50, 100} {
		a := NewAsteroid(10, 20, radius, cfg, rng)
		if len(a.Shape) != VertexCount(radius, cfg.PointsPerRadius) {
			t.Errorf("radius %v: %d vertices", radius, len(a.Shape))
		}
		for i, p := range a.Shape {
			d := math.Hypot(p.X, p.Y)
			if d < radius*(1-cfg.Jitter)-1e-9 || d > radius*(1+cfg.Jitter)+1e-9 {
				t.Errorf("radius %v vertex %d at distance %v outside jitter band", radius, i, d)
			}
		}
		speed := math.Hypot(a.VX, a.VY)
		if speed < cfg.Speed.Min-1e-9 || speed > cfg.Speed.Max+1e-9 {
			t.Errorf("speed %v outside %v", speed, cfg.Speed)
		}
	}
}

func TestSplit(t *testing.T) {
	cfg := DefaultConfig().Asteroid
	rng := newRand(2)

	tests := []struct {
		radius   float64
		children int
	}{
		{2 * cfg.MinRadius, 2},
		{100, 2},
		{2*cfg.MinRadius - 0.01, 0},
		{cfg.MinRadius, 0},
	}

	for _, tt := range tests {
		parent := NewAsteroid(300, 400, tt.radius, cfg, rng)
		kids := parent.Split(cfg, rng)
		if len(kids) != tt.children {
			t.Fatalf("radius %v: %d children, want %d", tt.radius, len(kids), tt.children)
		}
		for _, k := range kids {
			if k.Radius != tt.radius/2 {
				t.Errorf("child radius %v, want %v", k.Radius, tt.radius/2)
			}
			if k.X != parent.X || k.Y != parent.Y {
				t.Errorf("child at (%v, %v), want parent position", k.X, k.Y)
			}
		}
	}
}

func TestAsteroidScore(t *testing.T) {
	big := &Asteroid{Radius: 100}
	small := &Asteroid{Radius: 25}
	if big.Score(5000) != 50 || small.Score(5000) != 200 {
		t.Errorf("scores %d, %d; want 50, 200", big.Score(5000), small.Score(5000))
	}
}

func TestSpawnLocationKeepsFarthest(t *testing.T) {
	f := Playfield{Width: 1000, Height: 800}
	const px, py = 500, 400

	// replay the same samples to find the expected winner
	ref := newRand(7)
	var wantX, wantY, best float64
	for i := 0; i < 10; i++ {
		x := float64(ref.IntN(1000))
		y := float64(ref.IntN(800))
		if d := (x-px)*(x-px) + (y-py)*(y-py); d > best {
			best, wantX, wantY = d, x, y
		}
	}

	x, y := SpawnLocation(px, py, f, 10, math.Inf(1), newRand(7))
	if x != wantX || y != wantY {
		t.Errorf("SpawnLocation = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
}

func TestSpawnLocationStopsEarly(t *testing.T) {
	f := Playfield{Width: 1000, Height: 800}

	ref := newRand(3)
	wantX := float64(ref.IntN(1000))
	wantY := float64(ref.IntN(800))

	// any non-zero distance satisfies the threshold, so the first sample wins
	x, y := SpawnLocation(-1, -1, f, 10, 1e-12, newRand(3))
	if x != wantX || y != wantY {
		t.Errorf("SpawnLocation = (%v, %v), want first sample (%v, %v)", x, y, wantX, wantY)
	}
}
