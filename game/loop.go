package game

// DefaultMaxDelta caps a frame's delta so a stall does not teleport entities
const DefaultMaxDelta = 0.1

// Loop turns clock readings into ticks of a world
type Loop struct {
	world *World
	clock Clock
	last  uint64

	// MaxDelta bounds dt in seconds; zero disables the cap
	MaxDelta float64
}

// NewLoop creates a loop whose first step measures from the clock's
// current reading
func NewLoop(world *World, clock Clock) *Loop {
	return &Loop{
		world:    world,
		clock:    clock,
		last:     clock.NowMillis(),
		MaxDelta: DefaultMaxDelta,
	}
}

// Step reads the clock and ticks the world once.
// It returns the delta that was used.
func (l *Loop) Step() float64 {
	now := l.clock.NowMillis()

	var dt float64
	if now > l.last {
		dt = float64(now-l.last) / 1000
	}
	l.last = now

	if l.MaxDelta > 0 && dt > l.MaxDelta {
		dt = l.MaxDelta
	}

	l.world.Tick(now, dt)
	return dt
}

// World returns the driven world
func (l *Loop) World() *World {
	return l.world
}
