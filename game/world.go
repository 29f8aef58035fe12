package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the top-level screen the world is in
type State int

const (
	StateMenu State = iota
	StatePlaying
)

// ScoreStore persists the best score between runs
type ScoreStore interface {
	Load() (uint64, error)
	Save(score uint64) error
}

// Options carries the collaborators of a World.
// The zero value gives a quiet logger, a time-seeded random source and no
// persistence.
type Options struct {
	Logger zerolog.Logger
	Rand   *rand.Rand
	Store  ScoreStore
}

// World owns every entity and advances them one tick at a time
type World struct {
	cfg   Config
	field Playfield
	base  zerolog.Logger
	log   zerolog.Logger
	rng   *rand.Rand
	store ScoreStore

	session uuid.UUID
	state   State
	paused  bool
	now     uint64

	player     *Player
	asteroids  []*Asteroid
	aliens     []*Alien
	bullets    []*Bullet
	particles  []Particle
	blackHoles []*BlackHole

	score     uint64
	highScore uint64
	lives     int
	nextLife  uint64

	asteroidSpawn  *Spawner
	alienSpawn     *Spawner
	blackHoleSpawn *Spawner
}

// NewWorld validates cfg and creates a world sitting in the menu.
// A high score that cannot be loaded is logged and treated as zero.
func NewWorld(cfg Config, opts Options) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	w := &World{
		cfg:   cfg,
		field: Playfield{Width: cfg.Width, Height: cfg.Height},
		base:  opts.Logger,
		log:   opts.Logger,
		rng:   rng,
		store: opts.Store,
		lives: cfg.Player.StartLives,
	}

	if w.store != nil {
		best, err := w.store.Load()
		if err != nil {
			w.log.Warn().Err(err).Msg("high score unavailable")
		}
		w.highScore = best
	}

	cx, cy := w.field.Center()
	w.player = NewPlayer(cx, cy, 0, &w.cfg)
	w.resetRun(0)
	return w, nil
}

// Start leaves the menu and begins a fresh session at the current time
func (w *World) Start() {
	w.session = uuid.New()
	w.log = w.base.With().Str("session", w.session.String()).Logger()

	w.clearEntities()
	w.resetRun(w.now)

	cx, cy := w.field.Center()
	w.player.Reset(cx, cy, w.now)

	w.state = StatePlaying
	w.paused = false
	w.log.Info().Uint64("best", w.highScore).Msg("session started")
}

func (w *World) resetRun(now uint64) {
	w.score = 0
	w.lives = w.cfg.Player.StartLives
	w.nextLife = w.cfg.Player.PointsPerLife

	w.asteroidSpawn = NewSpawner(w.cfg.Asteroid.Spawn, w.cfg.Asteroid.Spawn.NextSpawn(now, 0))
	w.alienSpawn = NewSpawner(w.cfg.Alien.Spawn, now)
	w.blackHoleSpawn = NewSpawner(w.cfg.BlackHole.Spawn, now)
}

// Tick advances the world to now, dt seconds after the previous tick.
// Nothing moves in the menu or while paused.
func (w *World) Tick(now uint64, dt float64) {
	w.now = now
	if w.state != StatePlaying || w.paused {
		return
	}

	w.update(now, dt)
	w.resolve(w.collide())
	w.spawn(now)
	w.applyGravity(dt)
}

func (w *World) update(now uint64, dt float64) {
	live := w.particles[:0]
	for i := range w.particles {
		p := w.particles[i]
		p.Update(dt, w.field)
		if p.Alive(now) {
			live = append(live, p)
		}
	}
	w.particles = live

	w.particles = append(w.particles, w.player.Update(now, dt, w.field, w.rng)...)
	if b := w.player.Shoot(now, &w.cfg); b != nil {
		w.bullets = append(w.bullets, b)
	}

	bullets := w.bullets[:0]
	for _, b := range w.bullets {
		w.particles = append(w.particles, b.Update(now, dt, w.field, w.rng)...)
		if b.Alive(now) {
			bullets = append(bullets, b)
		}
	}
	w.bullets = bullets

	for _, a := range w.asteroids {
		a.Update(dt, w.field)
	}

	target := w.player.Target()
	for _, a := range w.aliens {
		if b := a.Update(now, dt, w.field, w.score, target, &w.cfg, w.rng); b != nil {
			w.bullets = append(w.bullets, b)
		}
	}

	holes := w.blackHoles[:0]
	for _, h := range w.blackHoles {
		h.Update(now, dt, w.cfg.BlackHole)
		if h.Alive() {
			holes = append(holes, h)
		}
	}
	w.blackHoles = holes
}

func (w *World) spawn(now uint64) {
	if w.asteroidSpawn.Due(now, w.score) {
		x, y := SpawnLocation(w.player.X, w.player.Y, w.field,
			w.cfg.Asteroid.SpawnAttempts, w.cfg.Asteroid.MinSpawnDistSq, w.rng)
		radius := w.cfg.Asteroid.SpawnRadius.Sample(w.rng)
		w.asteroids = append(w.asteroids, NewAsteroid(x, y, radius, w.cfg.Asteroid, w.rng))
		w.asteroidSpawn.Spawned(now, w.score)
	}

	if len(w.aliens) < w.cfg.Alien.MaxAliens && w.alienSpawn.Due(now, w.score) {
		if a := SpawnAlien(w.score, now, w.field, w.cfg.Alien, w.rng); a != nil {
			w.aliens = append(w.aliens, a)
			w.alienSpawn.Spawned(now, w.score)
			w.log.Debug().Stringer("strategy", a.Strategy).Msg("alien spawned")
		}
	}

	if w.score >= w.cfg.BlackHole.MinScore && w.blackHoleSpawn.Due(now, w.score) {
		w.blackHoles = append(w.blackHoles, NewBlackHole(now, w.field, w.cfg.BlackHole, w.rng))
		w.blackHoleSpawn.Spawned(now, w.score)
		w.log.Debug().Msg("black hole spawned")
	}
}

func (w *World) applyGravity(dt float64) {
	for _, h := range w.blackHoles {
		w.player.ApplyImpulse(h.Force(w.player.X, w.player.Y, dt, w.field, w.cfg.BlackHole))
	}
}

func (w *World) addScore(points uint64) {
	w.score += points
	for w.cfg.Player.PointsPerLife > 0 && w.score > w.nextLife {
		w.nextLife += w.cfg.Player.PointsPerLife
		w.lives++
	}
}

// die costs a life, clears the field and recentres the ship.
// Losing the last life records the high score and restarts the run.
func (w *World) die() {
	w.clearEntities()
	cx, cy := w.field.Center()
	w.player.Reset(cx, cy, w.now)

	if w.lives > 1 {
		w.lives--
		w.log.Info().Int("lives", w.lives).Uint64("score", w.score).Msg("life lost")
		return
	}

	w.log.Info().Uint64("score", w.score).Uint64("best", w.highScore).Msg("game over")
	if w.score > w.highScore {
		if w.store != nil {
			if err := w.store.Save(w.score); err != nil {
				w.log.Warn().Err(err).Msg("saving high score")
			}
		}
		w.highScore = w.score
	}

	w.score = 0
	w.lives = w.cfg.Player.StartLives
	w.nextLife = w.cfg.Player.PointsPerLife
}

func (w *World) clearEntities() {
	w.asteroids = nil
	w.aliens = nil
	w.bullets = nil
	w.particles = nil
	w.blackHoles = nil
}

// State returns the current screen
func (w *World) State() State { return w.state }

// Paused reports whether the pause overlay is up
func (w *World) Paused() bool { return w.paused }

// Score returns the running score
func (w *World) Score() uint64 { return w.score }

// HighScore returns the best score seen so far
func (w *World) HighScore() uint64 { return w.highScore }

// Lives returns the remaining lives
func (w *World) Lives() int { return w.lives }

// Session returns the id of the current play session
func (w *World) Session() uuid.UUID { return w.session }

// Field returns the playfield
func (w *World) Field() Playfield { return w.field }

// Config returns the world's configuration
func (w *World) Config() Config { return w.cfg }

// Player returns the ship
func (w *World) Player() *Player { return w.player }

// Asteroids returns the live rocks
func (w *World) Asteroids() []*Asteroid { return w.asteroids }

// Aliens returns the live saucers
func (w *World) Aliens() []*Alien { return w.aliens }

// Bullets returns the live projectiles
func (w *World) Bullets() []*Bullet { return w.bullets }

// Particles returns the live particles
func (w *World) Particles() []Particle { return w.particles }

// BlackHoles returns the live gravity wells
func (w *World) BlackHoles() []*BlackHole { return w.blackHoles }
