package game

import "math"

// Never marks a spawner with no qualifying tier
const Never uint64 = math.MaxUint64

// Tier is one step of a spawn escalation table
type Tier struct {
	// Score is the minimum score at which the tier applies
	Score uint64 `yaml:"score"`

	// DelayMs is the wait between spawns while the tier applies
	DelayMs uint64 `yaml:"delay_ms"`
}

// TierTable maps score to spawn delay
type TierTable []Tier

// Delay returns the shortest delay among the tiers the score qualifies for
func (t TierTable) Delay(score uint64) (uint64, bool) {
	delay := Never
	for _, tier := range t {
		if score >= tier.Score && tier.DelayMs < delay {
			delay = tier.DelayMs
		}
	}
	return delay, delay != Never
}

// NextSpawn returns the timestamp of the next eligible spawn, or Never
func (t TierTable) NextSpawn(now, score uint64) uint64 {
	delay, ok := t.Delay(score)
	if !ok {
		return Never
	}
	return now + delay
}

// Spawner tracks the next-spawn deadline for one hazard type
type Spawner struct {
	tiers TierTable
	next  uint64
}

// NewSpawner creates a spawner whose first spawn is due at first
func NewSpawner(tiers TierTable, first uint64) *Spawner {
	return &Spawner{tiers: tiers, next: first}
}

// Due reports whether a spawn may happen now.
// A disabled spawner re-arms as soon as the score reaches a tier.
func (s *Spawner) Due(now, score uint64) bool {
	if s.next == Never {
		_, ok := s.tiers.Delay(score)
		return ok
	}
	return now >= s.next
}

// Spawned records a successful spawn and schedules the next one
func (s *Spawner) Spawned(now, score uint64) {
	s.next = s.tiers.NextSpawn(now, score)
}

// Next returns the current deadline
func (s *Spawner) Next() uint64 {
	return s.next
}

// Reset overrides the current deadline
func (s *Spawner) Reset(next uint64) {
	s.next = next
}
