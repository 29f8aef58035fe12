package game

import (
	"errors"
	"testing"

	"wraproids/geom"
)

type recordSurface struct {
	w, h  float64
	loops int
	lines int
	dots  int
	texts []string
}

func (s *recordSurface) Size() (float64, float64)      { return s.w, s.h }
func (s *recordSurface) Clear()                        { *s = recordSurface{w: s.w, h: s.h} }
func (s *recordSurface) Loop(geom.Polygon)             { s.loops++ }
func (s *recordSurface) Line(_, _, _, _ float64)       { s.lines++ }
func (s *recordSurface) Dot(_, _ float64)              { s.dots++ }
func (s *recordSurface) Text(str string, _, _ float64) { s.texts = append(s.texts, str) }
func (s *recordSurface) TextSize(str string) (float64, float64) {
	return float64(len(str) * 7), 13
}

func TestDrawMenu(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), Options{Rand: newRand(1)})
	if err != nil {
		t.Fatal(err)
	}

	s := &recordSurface{w: 800, h: 600}
	if err := w.Draw(s); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(s.texts) != 1 || s.texts[0] != startText {
		t.Errorf("texts = %q", s.texts)
	}

	small := &recordSurface{w: 50, h: 600}
	if err := w.Draw(small); !errors.Is(err, ErrWindowTooSmall) {
		t.Errorf("Draw on a narrow surface = %v, want ErrWindowTooSmall", err)
	}
}

func TestDrawPlaying(t *testing.T) {
	w := newTestWorld(t, nil)
	w.score = 42
	w.highScore = 99
	stillAsteroid(w, 300, 300, 50)
	w.bullets = append(w.bullets, NewBullet(10, 10, 0, true, 0, &w.cfg))

	s := &recordSurface{w: w.cfg.Width, h: w.cfg.Height}
	if err := w.Draw(s); err != nil {
		t.Fatal(err)
	}

	// 9 asteroid copies, 9 ship copies and one icon per life
	if want := 9 + 9 + w.Lives(); s.loops != want {
		t.Errorf("loops = %d, want %d", s.loops, want)
	}
	if s.dots != 1 {
		t.Errorf("dots = %d, want 1", s.dots)
	}
	if len(s.texts) != 2 || s.texts[0] != "42" || s.texts[1] != "99" {
		t.Errorf("hud = %q", s.texts)
	}

	w.HandleKey(KeyPause, true)
	if err := w.Draw(s); err != nil {
		t.Fatal(err)
	}
	if s.texts[len(s.texts)-1] != pausedText {
		t.Errorf("paused overlay missing: %q", s.texts)
	}
}
