package game

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// degenerateEpsilon rejects intercept quadratics whose leading term vanishes
const degenerateEpsilon = 1e-9

// Strategy is how an alien picks its aim
type Strategy int

const (
	// StrategyRandom fires in a uniformly random direction
	StrategyRandom Strategy = iota
	// StrategyCurrent fires at the player's present position
	StrategyCurrent
	// StrategyFuture leads the player using an intercept solve
	StrategyFuture
)

// Strategies lists every strategy in unlock order
var Strategies = [...]Strategy{StrategyRandom, StrategyCurrent, StrategyFuture}

func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategyCurrent:
		return "current"
	case StrategyFuture:
		return "future"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Shot is a resolved firing solution: muzzle position and heading
type Shot struct {
	X, Y  float64
	Angle float64
}

// Target is the kinematic state an alien aims at
type Target struct {
	X, Y   float64
	VX, VY float64
}

// Aim computes a firing solution from an alien at (x, y).
// The muzzle sits muzzle pixels from the centre. ok is false when no
// solution exists; the caller should retry on a later tick.
func (s Strategy) Aim(x, y float64, target Target, muzzle, bulletSpeed float64, rng *rand.Rand) (Shot, bool) {
	switch s {
	case StrategyRandom:
		angle := rng.Float64() * 2 * math.Pi
		return muzzleShot(x, y, angle, muzzle), true

	case StrategyCurrent:
		angle := math.Atan2(target.Y-y, target.X-x)
		return muzzleShot(x, y, angle, muzzle), true

	case StrategyFuture:
		// muzzle faces the player's present position
		toward := math.Atan2(target.Y-y, target.X-x)
		mx := x + muzzle*math.Cos(toward)
		my := y + muzzle*math.Sin(toward)

		aimX, aimY, ok := PredictiveAim(mx, my, target, bulletSpeed)
		if !ok {
			return Shot{}, false
		}
		return Shot{X: mx, Y: my, Angle: math.Atan2(aimY-my, aimX-mx)}, true

	default:
		panic(fmt.Sprintf("unknown strategy %d", s))
	}
}

func muzzleShot(x, y, angle, muzzle float64) Shot {
	return Shot{
		X:     x + muzzle*math.Cos(angle),
		Y:     y + muzzle*math.Sin(angle),
		Angle: angle,
	}
}

// PredictiveAim returns the point a projectile fired from (shooterX, shooterY)
// must aim at to meet the target, assuming the target keeps its velocity
func PredictiveAim(shooterX, shooterY float64, target Target, projectileSpeed float64) (float64, float64, bool) {
	rx := target.X - shooterX
	ry := target.Y - shooterY

	t, ok := SolveIntercept(rx, ry, target.VX, target.VY, projectileSpeed)
	if !ok {
		return 0, 0, false
	}

	return target.X + target.VX*t, target.Y + target.VY*t, true
}

// SolveIntercept returns the earliest positive time at which a projectile of
// the given speed can meet a target at relative position (rx, ry) moving with
// velocity (vx, vy). It solves (|V|²-s²)t² + 2(R·V)t + |R|² = 0.
func SolveIntercept(rx, ry, vx, vy, speed float64) (float64, bool) {
	rDotV := rx*vx + ry*vy
	r2 := rx*rx + ry*ry
	a := vx*vx + vy*vy - speed*speed

	discriminant := rDotV*rDotV - a*r2
	if discriminant < 0 {
		return 0, false
	}

	if math.Abs(a) < degenerateEpsilon {
		return 0, false
	}

	root := math.Sqrt(discriminant)
	t1 := (-rDotV + root) / a
	t2 := (-rDotV - root) / a

	best := math.Inf(1)
	for _, t := range [2]float64{t1, t2} {
		if t > 0 && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}

	return best, true
}

// shotInterval returns milliseconds until the next shot for a score
func shotInterval(score uint64, shotsPerSecondPerPoint float64) uint64 {
	rate := float64(score) * shotsPerSecondPerPoint
	if rate <= 0 {
		return 1000
	}
	return uint64(1000 / rate)
}
