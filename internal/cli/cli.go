// Package cli holds the flag handling shared by the entry points.
package cli

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"wraproids/game"
	"wraproids/highscore"
)

// Flags are the command line options of every front end
type Flags struct {
	Config     string
	Seed       uint64
	Fullscreen bool
	HighScore  string
	LogLevel   string
	LogFile    string
	ProfileDir string
}

// Register binds the flags to fs
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "YAML file overriding the default tuning")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "start fullscreen (window front end only)")
	fs.StringVar(&f.HighScore, "highscore", "", "high score file (overrides the config)")
	fs.StringVar(&f.LogLevel, "log-level", "info", "log level: debug, info, warn, error, disabled")
	fs.StringVar(&f.LogFile, "log-file", "", "append logs to this file instead of stderr")
	fs.StringVar(&f.ProfileDir, "profile-dir", "", "capture CPU profiles here when the frame rate drops")
}

// Logger builds a console logger at the requested level
func (f *Flags) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(f.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", f.LogLevel, err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// World loads the configuration and builds a world from the flags
func (f *Flags) World(logger zerolog.Logger) (*game.World, error) {
	cfg := game.DefaultConfig()
	if f.Config != "" {
		var err error
		if cfg, err = game.LoadConfig(f.Config); err != nil {
			return nil, err
		}
	}
	if f.HighScore != "" {
		cfg.HighScorePath = f.HighScore
	}

	seed := f.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug().Uint64("seed", seed).Str("high_score_path", cfg.HighScorePath).Msg("configured")

	return game.NewWorld(cfg, game.Options{
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(seed, seed>>1)),
		Store:  highscore.NewStore(cfg.HighScorePath),
	})
}

// Setup parses args and returns the logger and world, exiting with usage on
// bad flags
func Setup(name string, args []string) (*Flags, zerolog.Logger, *game.World, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, zerolog.Nop(), nil, err
	}

	var out io.Writer = os.Stderr
	if f.LogFile != "" {
		file, err := os.OpenFile(f.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, zerolog.Nop(), nil, fmt.Errorf("log file: %w", err)
		}
		out = file
	}

	logger, err := f.Logger(out)
	if err != nil {
		return nil, logger, nil, err
	}

	world, err := f.World(logger)
	if err != nil {
		return nil, logger, nil, err
	}
	return &f, logger, world, nil
}
