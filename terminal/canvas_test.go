package terminal

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"wraproids/game"
	"wraproids/geom"
)

func rowString(c *Canvas, row int) string {
	var b strings.Builder
	for col := 0; col < c.cols; col++ {
		b.WriteRune(c.Cell(col, row))
	}
	return b.String()
}

func TestCanvasHorizontalLine(t *testing.T) {
	c := NewCanvas(10, 5, 100, 50)
	c.Line(0, 20, 95, 20)
	if got := rowString(c, 2); got != "**********" {
		t.Errorf("row 2 = %q", got)
	}
	if got := rowString(c, 1); strings.TrimSpace(got) != "" {
		t.Errorf("row 1 = %q, want blank", got)
	}
}

func TestCanvasDiagonal(t *testing.T) {
	c := NewCanvas(5, 5, 50, 50)
	c.Line(0, 0, 45, 45)
	for i := 0; i < 5; i++ {
		if c.Cell(i, i) != runeLine {
			t.Errorf("cell (%d, %d) not drawn", i, i)
		}
	}
}

func TestCanvasClipsOffGrid(t *testing.T) {
	c := NewCanvas(10, 5, 100, 50)
	c.Line(-100, 20, 50, 20)
	c.Line(200, 0, 300, 40)
	c.Loop(geom.Polygon{{X: -50, Y: -50}, {X: -10, Y: -50}, {X: -10, Y: -10}})

	if got := rowString(c, 2); got != "******    " {
		t.Errorf("row 2 = %q", got)
	}
}

func TestCanvasDotAndText(t *testing.T) {
	c := NewCanvas(10, 5, 100, 50)
	c.Dot(55, 5)
	c.Text("hi", 10, 40)

	if c.Cell(5, 0) != runeDot {
		t.Errorf("dot cell = %q", c.Cell(5, 0))
	}
	if got := rowString(c, 4); got != " hi       " {
		t.Errorf("row 4 = %q", got)
	}

	w, h := c.TextSize("hello")
	if w != 50 || h != 10 {
		t.Errorf("TextSize = %v x %v, want 50 x 10", w, h)
	}

	c.Clear()
	if strings.TrimSpace(rowString(c, 4)) != "" {
		t.Error("Clear left text behind")
	}
}

func TestCanvasMenuTooSmall(t *testing.T) {
	world, err := game.NewWorld(game.DefaultConfig(), game.Options{Rand: rand.New(rand.NewPCG(1, 2))})
	if err != nil {
		t.Fatal(err)
	}
	field := world.Field()

	if err := world.Draw(NewCanvas(80, 24, field.Width, field.Height)); err != nil {
		t.Errorf("80x24 menu: %v", err)
	}
	if err := world.Draw(NewCanvas(10, 24, field.Width, field.Height)); !errors.Is(err, game.ErrWindowTooSmall) {
		t.Errorf("10x24 menu = %v, want ErrWindowTooSmall", err)
	}
	if err := world.Draw(NewCanvas(0, 0, field.Width, field.Height)); !errors.Is(err, game.ErrWindowTooSmall) {
		t.Errorf("empty menu = %v, want ErrWindowTooSmall", err)
	}
}
