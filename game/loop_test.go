package game

import "testing"

func TestLoopStep(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), Options{Rand: newRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	clock := &ManualClock{Now: 1000}
	loop := NewLoop(w, clock)

	clock.Advance(16)
	approx(t, "dt", loop.Step(), 0.016, 1e-12)
	if w.now != 1016 {
		t.Errorf("world time %d, want 1016", w.now)
	}

	clock.Advance(5000)
	approx(t, "capped dt", loop.Step(), DefaultMaxDelta, 1e-12)

	if dt := loop.Step(); dt != 0 {
		t.Errorf("dt = %v with a stopped clock", dt)
	}

	loop.MaxDelta = 0
	clock.Advance(2000)
	approx(t, "uncapped dt", loop.Step(), 2, 1e-12)
}

func TestLoopStartsSessionAtClockTime(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), Options{Rand: newRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	clock := &ManualClock{Now: 60_000}
	loop := NewLoop(w, clock)

	loop.Step()
	w.HandleKey(KeyStart, true)

	// first asteroid waits a full tier delay from the start of play
	clock.Advance(3999)
	loop.MaxDelta = 0
	loop.Step()
	if len(w.Asteroids()) != 0 {
		t.Fatal("asteroid spawned before its delay")
	}
	clock.Advance(1)
	loop.Step()
	if len(w.Asteroids()) != 1 {
		t.Errorf("%d asteroids, want 1", len(w.Asteroids()))
	}
}
