package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"wraproids/geom"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Range is an interval sampled uniformly
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample returns a uniform value in [Min, Max)
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) validate(name string) error {
	if r.Max < r.Min {
		return fmt.Errorf("%w: %s range min %v exceeds max %v", ErrInvalidConfig, name, r.Min, r.Max)
	}
	return nil
}

// PlayerConfig holds ship handling and life rules
type PlayerConfig struct {
	// TurnSpeed is the heading change in radians per second
	TurnSpeed float64 `yaml:"turn_speed"`

	// Acceleration is the thrust in pixels per second^2
	Acceleration float64 `yaml:"acceleration"`

	// Deceleration is the fraction of velocity kept after one second
	Deceleration float64 `yaml:"deceleration"`

	// Shape is the ship silhouette pointing up; Shape[0] is the nose
	Shape geom.Polygon `yaml:"shape"`

	StartLives    int    `yaml:"start_lives"`
	PointsPerLife uint64 `yaml:"points_per_life"`
}

// BulletConfig holds projectile constants shared by player and aliens
type BulletConfig struct {
	Speed      float64 `yaml:"speed"`
	LifespanMs uint64  `yaml:"lifespan_ms"`
}

// EmitterConfig describes a continuous particle stream
type EmitterConfig struct {
	// Rate is particles per second
	Rate float64 `yaml:"rate"`

	// Speed is the particle speed relative to the emitter
	Speed Range `yaml:"speed"`

	// AngleOffset is the half-width of the random spread in radians
	AngleOffset float64 `yaml:"angle_offset"`
}

// ParticleConfig holds cosmetic particle settings
type ParticleConfig struct {
	LifespanMs     Range         `yaml:"lifespan_ms"`
	Thrust         EmitterConfig `yaml:"thrust"`
	Trail          EmitterConfig `yaml:"trail"`
	ExplosionCount Range         `yaml:"explosion_count"`
	ExplosionSpeed Range         `yaml:"explosion_speed"`
}

// AsteroidConfig holds rock generation, placement and scoring
type AsteroidConfig struct {
	MinRadius       float64   `yaml:"min_radius"`
	SpawnRadius     Range     `yaml:"spawn_radius"`
	Jitter          float64   `yaml:"jitter"`
	PointsPerRadius float64   `yaml:"points_per_radius"`
	Speed           Range     `yaml:"speed"`
	SpawnAttempts   int       `yaml:"spawn_attempts"`
	MinSpawnDistSq  float64   `yaml:"min_spawn_dist_sq"`
	ScorePerRadius  float64   `yaml:"score_per_radius"`
	Spawn           TierTable `yaml:"spawn"`
}

// AlienTierConfig holds the settings of one shooting strategy
type AlienTierConfig struct {
	// MinScore unlocks the strategy
	MinScore uint64 `yaml:"min_score"`

	// Points are awarded for destroying an alien of this strategy
	Points uint64 `yaml:"points"`

	Speed Range `yaml:"speed"`

	// ShotsPerSecondPerPoint scales fire rate with the player's score
	ShotsPerSecondPerPoint float64 `yaml:"shots_per_second_per_point"`

	Shape geom.Polygon `yaml:"shape"`
}

// AlienConfig holds hostile saucer settings
type AlienConfig struct {
	MaxAliens        int             `yaml:"max_aliens"`
	MuzzleOffset     float64         `yaml:"muzzle_offset"`
	FirstShotDelayMs uint64          `yaml:"first_shot_delay_ms"`
	Random           AlienTierConfig `yaml:"random"`
	Current          AlienTierConfig `yaml:"current"`
	Future           AlienTierConfig `yaml:"future"`
	Spawn            TierTable       `yaml:"spawn"`
}

// Tier returns the settings for a strategy
func (c AlienConfig) Tier(s Strategy) AlienTierConfig {
	switch s {
	case StrategyRandom:
		return c.Random
	case StrategyCurrent:
		return c.Current
	case StrategyFuture:
		return c.Future
	default:
		panic(fmt.Sprintf("unknown strategy %d", s))
	}
}

// BlackHoleConfig holds gravity well settings
type BlackHoleConfig struct {
	MinScore     uint64    `yaml:"min_score"`
	MaxRadius    Range     `yaml:"max_radius"`
	HoldMs       Range     `yaml:"hold_ms"`
	GrowthRate   float64   `yaml:"growth_rate"`
	ShrinkRate   float64   `yaml:"shrink_rate"`
	RotationRate float64   `yaml:"rotation_rate"`
	RangeFactor  float64   `yaml:"range_factor"`
	ForceFactor  float64   `yaml:"force_factor"`
	Arms         int       `yaml:"arms"`
	ArmSegments  int       `yaml:"arm_segments"`
	ArmTwist     float64   `yaml:"arm_twist"`
	Spawn        TierTable `yaml:"spawn"`
}

// Config holds game configuration
type Config struct {
	// Width of the wrapping playfield in pixels
	Width float64 `yaml:"width"`

	// Height of the wrapping playfield in pixels
	Height float64 `yaml:"height"`

	// HighScorePath is the file the best score is persisted to
	HighScorePath string `yaml:"high_score_path"`

	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Particle  ParticleConfig  `yaml:"particle"`
	Asteroid  AsteroidConfig  `yaml:"asteroid"`
	Alien     AlienConfig     `yaml:"alien"`
	BlackHole BlackHoleConfig `yaml:"black_hole"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:         1280,
		Height:        720,
		HighScorePath: "highscore.dat",
		Player: PlayerConfig{
			TurnSpeed:     7.0,
			Acceleration:  1000.0,
			Deceleration:  0.7,
			Shape:         geom.Polygon{{X: 0, Y: -40}, {X: 15, Y: 15}, {X: 0, Y: 0}, {X: -15, Y: 15}},
			StartLives:    3,
			PointsPerLife: 5000,
		},
		Bullet: BulletConfig{
			Speed:      1000.0,
			LifespanMs: 1000,
		},
		Particle: ParticleConfig{
			LifespanMs: Range{Min: 500, Max: 2000},
			Thrust: EmitterConfig{
				Rate:        10.0,
				Speed:       Range{Min: 300, Max: 500},
				AngleOffset: 0.5,
			},
			Trail: EmitterConfig{
				Rate:        30.0,
				Speed:       Range{Min: 50, Max: 150},
				AngleOffset: 0.3,
			},
			ExplosionCount: Range{Min: 10, Max: 20},
			ExplosionSpeed: Range{Min: 50, Max: 200},
		},
		Asteroid: AsteroidConfig{
			MinRadius:       20.0,
			SpawnRadius:     Range{Min: 50, Max: 100},
			Jitter:          0.7,
			PointsPerRadius: 0.1,
			Speed:           Range{Min: 10, Max: 50},
			SpawnAttempts:   10,
			MinSpawnDistSq:  500.0 * 500.0,
			ScorePerRadius:  5000.0,
			Spawn: TierTable{
				{Score: 0, DelayMs: 4000},
				{Score: 1000, DelayMs: 3000},
				{Score: 3000, DelayMs: 2000},
				{Score: 6000, DelayMs: 1500},
				{Score: 10000, DelayMs: 1000},
			},
		},
		Alien: AlienConfig{
			MaxAliens:        3,
			MuzzleOffset:     30.0,
			FirstShotDelayMs: 1000,
			Random: AlienTierConfig{
				MinScore:               500,
				Points:                 200,
				Speed:                  Range{Min: 50, Max: 100},
				ShotsPerSecondPerPoint: 0.0002,
				Shape: geom.Polygon{
					{X: -20, Y: 0}, {X: -8, Y: -6}, {X: -5, Y: -12}, {X: 5, Y: -12},
					{X: 8, Y: -6}, {X: 20, Y: 0}, {X: 8, Y: 7}, {X: -8, Y: 7},
				},
			},
			Current: AlienTierConfig{
				MinScore:               2000,
				Points:                 500,
				Speed:                  Range{Min: 75, Max: 125},
				ShotsPerSecondPerPoint: 0.00015,
				Shape: geom.Polygon{
					{X: -16, Y: 0}, {X: -6, Y: -8}, {X: 6, Y: -8},
					{X: 16, Y: 0}, {X: 6, Y: 8}, {X: -6, Y: 8},
				},
			},
			Future: AlienTierConfig{
				MinScore:               5000,
				Points:                 1000,
				Speed:                  Range{Min: 100, Max: 150},
				ShotsPerSecondPerPoint: 0.0001,
				Shape: geom.Polygon{
					{X: 0, Y: -16}, {X: 6, Y: -4}, {X: 18, Y: 0}, {X: 6, Y: 4},
					{X: 0, Y: 16}, {X: -6, Y: 4}, {X: -18, Y: 0}, {X: -6, Y: -4},
				},
			},
			Spawn: TierTable{
				{Score: 500, DelayMs: 15000},
				{Score: 2000, DelayMs: 10000},
				{Score: 5000, DelayMs: 7000},
			},
		},
		BlackHole: BlackHoleConfig{
			MinScore:     3000,
			MaxRadius:    Range{Min: 60, Max: 120},
			HoldMs:       Range{Min: 3000, Max: 8000},
			GrowthRate:   30.0,
			ShrinkRate:   40.0,
			RotationRate: 2.0,
			RangeFactor:  6.0,
			ForceFactor:  150000.0,
			Arms:         6,
			ArmSegments:  12,
			ArmTwist:     3.0,
			Spawn: TierTable{
				{Score: 3000, DelayMs: 20000},
				{Score: 8000, DelayMs: 12000},
			},
		},
	}
}

// LoadConfig reads a YAML file over the defaults.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	if len(c.Player.Shape) < 3 {
		return fmt.Errorf("%w: player shape needs at least 3 points", ErrInvalidConfig)
	}
	if c.Player.StartLives < 1 {
		return fmt.Errorf("%w: start lives %d", ErrInvalidConfig, c.Player.StartLives)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("%w: bullet speed %v", ErrInvalidConfig, c.Bullet.Speed)
	}
	if c.Particle.Thrust.Rate <= 0 || c.Particle.Trail.Rate <= 0 {
		return fmt.Errorf("%w: emission rates must be positive", ErrInvalidConfig)
	}
	if c.Asteroid.MinRadius <= 0 {
		return fmt.Errorf("%w: asteroid min radius %v", ErrInvalidConfig, c.Asteroid.MinRadius)
	}
	if c.Asteroid.Jitter < 0 || c.Asteroid.Jitter >= 1 {
		return fmt.Errorf("%w: asteroid jitter %v outside [0,1)", ErrInvalidConfig, c.Asteroid.Jitter)
	}
	if c.BlackHole.GrowthRate <= 0 || c.BlackHole.ShrinkRate <= 0 {
		return fmt.Errorf("%w: black hole growth and shrink rates must be positive", ErrInvalidConfig)
	}

	ranges := map[string]Range{
		"particle lifespan":   c.Particle.LifespanMs,
		"thrust speed":        c.Particle.Thrust.Speed,
		"trail speed":         c.Particle.Trail.Speed,
		"explosion count":     c.Particle.ExplosionCount,
		"explosion speed":     c.Particle.ExplosionSpeed,
		"asteroid radius":     c.Asteroid.SpawnRadius,
		"asteroid speed":      c.Asteroid.Speed,
		"black hole radius":   c.BlackHole.MaxRadius,
		"black hole hold":     c.BlackHole.HoldMs,
		"random alien speed":  c.Alien.Random.Speed,
		"current alien speed": c.Alien.Current.Speed,
		"future alien speed":  c.Alien.Future.Speed,
	}
	for name, r := range ranges {
		if err := r.validate(name); err != nil {
			return err
		}
	}

	for _, s := range Strategies {
		if len(c.Alien.Tier(s).Shape) < 3 {
			return fmt.Errorf("%w: %s alien shape needs at least 3 points", ErrInvalidConfig, s)
		}
	}

	return nil
}
