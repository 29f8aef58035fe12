package game

import (
	"math"
	"testing"
)

func TestEmitterSlowFrameCatchesUp(t *testing.T) {
	e := NewEmitter(EmitterConfig{Rate: 30}, Range{Min: 100, Max: 100}, 0)

	// 4 fps against 30 per second owes ceil(7.5) particles
	if got := e.Count(250, 0.25); got != 8 {
		t.Errorf("Count = %d, want 8", got)
	}
	if got := e.Count(500, 0.25); got != 8 {
		t.Errorf("second Count = %d, want 8", got)
	}
}

func TestEmitterFastFrameGated(t *testing.T) {
	e := NewEmitter(EmitterConfig{Rate: 10}, Range{Min: 100, Max: 100}, 0)
	const dt = 1.0 / 64

	steps := []struct {
		now  uint64
		want int
	}{
		{16, 0},
		{99, 0},
		{100, 1},
		{150, 0},
		{199, 0},
		{200, 1},
		{50, 0}, // clock behind the gate
		{300, 1},
	}
	for _, s := range steps {
		if got := e.Count(s.now, dt); got != s.want {
			t.Errorf("Count(%d) = %d, want %d", s.now, got, s.want)
		}
	}
}

func TestEmitterRateOverTime(t *testing.T) {
	e := NewEmitter(EmitterConfig{Rate: 20}, Range{Min: 100, Max: 100}, 0)

	// one simulated second at 100 fps
	total := 0
	for now := uint64(10); now <= 1000; now += 10 {
		total += e.Count(now, 0.01)
	}
	if total != 20 {
		t.Errorf("emitted %d particles in one second, want 20", total)
	}
}

func TestEmitInheritsVelocity(t *testing.T) {
	cfg := EmitterConfig{Rate: 100, Speed: Range{Min: 200, Max: 200}}
	e := NewEmitter(cfg, Range{Min: 500, Max: 500}, 0)

	src := Body{X: 10, Y: 20, VX: 100, VY: 0}
	particles := e.Emit(1000, 0.5, src, 0, newRand(1))
	if len(particles) != 50 {
		t.Fatalf("got %d particles, want 50", len(particles))
	}

	for _, p := range particles {
		approx(t, "vx", p.VX, -100, 1e-9)
		approx(t, "vy", p.VY, 0, 1e-9)
		if p.X != 10 || p.Y != 20 {
			t.Errorf("particle at (%v, %v), want emitter position", p.X, p.Y)
		}
		if p.Death != 1500 {
			t.Errorf("death %d, want 1500", p.Death)
		}
	}
}

func TestEmitSpread(t *testing.T) {
	cfg := EmitterConfig{Rate: 1000, Speed: Range{Min: 50, Max: 60}, AngleOffset: 0.3}
	e := NewEmitter(cfg, Range{Min: 500, Max: 500}, 0)

	for _, p := range e.Emit(100, 0.1, Body{}, math.Pi/2, newRand(5)) {
		// heading down, so particles leave upwards within the spread
		angle := math.Atan2(p.VY, p.VX)
		if d := math.Abs(angle - (-math.Pi / 2)); d > 0.3+1e-9 {
			t.Errorf("angle %v is %v from straight back", angle, d)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 50-1e-9 || speed > 60+1e-9 {
			t.Errorf("speed %v outside range", speed)
		}
	}
}

func TestParticleExpiry(t *testing.T) {
	p := NewParticle(Body{}, 100, Range{Min: 50, Max: 50}, newRand(1))
	if !p.Alive(150) {
		t.Error("particle should live until its deadline")
	}
	if p.Alive(151) {
		t.Error("particle should expire after its deadline")
	}
}

func TestExplosionCount(t *testing.T) {
	cfg := DefaultConfig().Particle
	rng := newRand(8)
	for i := 0; i < 20; i++ {
		n := len(Explosion(0, 0, 0, cfg, rng))
		if n < int(cfg.ExplosionCount.Min) || n >= int(cfg.ExplosionCount.Max) {
			t.Fatalf("explosion of %d particles outside %v", n, cfg.ExplosionCount)
		}
	}
}
