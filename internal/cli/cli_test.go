package cli

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"wraproids/game"
	"wraproids/highscore"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return &f
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := parse(t, "-log-level", "warn").Logger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Errorf("log output %q", out)
	}

	if _, err := parse(t, "-log-level", "shouty").Logger(&buf); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestWorldFromFlags(t *testing.T) {
	dir := t.TempDir()
	hs := filepath.Join(dir, "best.dat")
	if err := highscore.Save(hs, 321); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(cfgPath, []byte("width: 640\nheight: 480\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := parse(t, "-config", cfgPath, "-highscore", hs, "-seed", "7")
	w, err := f.World(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if w.Field().Width != 640 || w.Field().Height != 480 {
		t.Errorf("field %+v", w.Field())
	}
	if w.HighScore() != 321 {
		t.Errorf("HighScore = %d, want 321", w.HighScore())
	}
	if w.Config().HighScorePath != hs {
		t.Errorf("high score path %q", w.Config().HighScorePath)
	}
}

func TestWorldBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("player:\n  start_lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := parse(t, "-config", path).World(zerolog.Nop()); !errors.Is(err, game.ErrInvalidConfig) {
		t.Errorf("World = %v, want ErrInvalidConfig", err)
	}
}
