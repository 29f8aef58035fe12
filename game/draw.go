package game

import (
	"errors"
	"fmt"
	"math"

	"wraproids/geom"
)

// ErrWindowTooSmall is returned by Draw when the menu prompt does not fit
var ErrWindowTooSmall = errors.New("window too small")

const (
	startText  = "PRESS SPACE TO START"
	pausedText = "PAUSED"

	hudMargin    = 10.0
	lifeIconSize = 0.5
)

// Surface is what a front end draws the world onto.
// Coordinates are playfield pixels; the surface scales as it sees fit.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Loop(points geom.Polygon)
	Line(x1, y1, x2, y2 float64)
	Dot(x, y float64)
	Text(s string, x, y float64)
	TextSize(s string) (w, h float64)
}

// Draw renders the current state. Errors are not fatal; the frame is still
// presented.
func (w *World) Draw(s Surface) error {
	s.Clear()

	if w.state == StateMenu {
		return drawMenu(s)
	}

	for _, p := range w.particles {
		s.Dot(p.X, p.Y)
	}
	for _, b := range w.bullets {
		s.Dot(b.X, b.Y)
	}
	for _, h := range w.blackHoles {
		for _, seg := range h.Arms(w.field, w.cfg.BlackHole) {
			s.Line(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
		}
	}
	for _, a := range w.asteroids {
		drawOutlines(s, a.Outlines(w.field))
	}
	for _, a := range w.aliens {
		drawOutlines(s, a.Outlines(w.field))
	}
	drawOutlines(s, w.player.Outlines(w.field))

	w.drawHUD(s)

	if w.paused {
		sw, sh := s.Size()
		tw, th := s.TextSize(pausedText)
		s.Text(pausedText, (sw-tw)/2, (sh-th)/2)
	}
	return nil
}

func drawMenu(s Surface) error {
	sw, sh := s.Size()
	tw, th := s.TextSize(startText)
	if sw < tw || sh/2 < th {
		return fmt.Errorf("menu %.0fx%.0f: %w", sw, sh, ErrWindowTooSmall)
	}
	s.Text(startText, (sw-tw)/2, sh/2-th)
	return nil
}

func drawOutlines(s Surface, outlines []geom.Polygon) {
	for _, o := range outlines {
		s.Loop(o)
	}
}

func (w *World) drawHUD(s Surface) {
	sw, _ := s.Size()

	score := fmt.Sprintf("%d", w.score)
	s.Text(score, hudMargin, hudMargin)

	best := fmt.Sprintf("%d", w.highScore)
	bw, bh := s.TextSize(best)
	s.Text(best, sw-bw-hudMargin, hudMargin)

	// remaining lives as small ships under the score
	shape := w.cfg.Player.Shape
	var extent float64
	for _, p := range shape {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	step := 2*extent*lifeIconSize + hudMargin
	y := hudMargin + bh + hudMargin + extent*lifeIconSize
	for i := 0; i < w.lives; i++ {
		x := hudMargin + extent*lifeIconSize + float64(i)*step
		icon := make(geom.Polygon, len(shape))
		for j, p := range shape {
			icon[j] = geom.Point{X: x + p.X*lifeIconSize, Y: y + p.Y*lifeIconSize}
		}
		s.Loop(icon)
	}
}
