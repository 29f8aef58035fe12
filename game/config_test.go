package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
width: 800
height: 600
player:
  start_lives: 5
asteroid:
  spawn:
    - score: 0
      delay_ms: 2500
alien:
  random:
    min_score: 100
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	def := DefaultConfig()
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("field %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Player.StartLives != 5 {
		t.Errorf("start lives %d", cfg.Player.StartLives)
	}
	if cfg.Player.TurnSpeed != def.Player.TurnSpeed {
		t.Errorf("turn speed %v lost its default", cfg.Player.TurnSpeed)
	}
	if len(cfg.Asteroid.Spawn) != 1 || cfg.Asteroid.Spawn[0].DelayMs != 2500 {
		t.Errorf("asteroid tiers %v", cfg.Asteroid.Spawn)
	}
	if cfg.Alien.Random.MinScore != 100 || cfg.Alien.Random.Points != def.Alien.Random.Points {
		t.Errorf("random alien tier %+v", cfg.Alien.Random)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid width: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"two point ship", func(c *Config) { c.Player.Shape = c.Player.Shape[:2] }},
		{"no lives", func(c *Config) { c.Player.StartLives = 0 }},
		{"still bullets", func(c *Config) { c.Bullet.Speed = 0 }},
		{"no trail rate", func(c *Config) { c.Particle.Trail.Rate = 0 }},
		{"full jitter", func(c *Config) { c.Asteroid.Jitter = 1 }},
		{"inverted range", func(c *Config) { c.Asteroid.Speed = Range{Min: 5, Max: 1} }},
		{"no shrink", func(c *Config) { c.BlackHole.ShrinkRate = 0 }},
		{"flat alien", func(c *Config) { c.Alien.Future.Shape = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
