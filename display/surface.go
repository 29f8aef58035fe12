package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"wraproids/geom"
)

const (
	strokeWidth = 1.5
	dotSize     = 2
)

var (
	colorBackground = colornames.Black
	colorForeground = colornames.White
)

// screen draws the world onto an ebiten image in playfield pixels
type screen struct {
	dst  *ebiten.Image
	face *text.GoXFace
	w, h float64
}

func newScreen(w, h float64) *screen {
	return &screen{
		face: text.NewGoXFace(basicfont.Face7x13),
		w:    w,
		h:    h,
	}
}

func (s *screen) Size() (float64, float64) {
	return s.w, s.h
}

func (s *screen) Clear() {
	s.dst.Fill(colorBackground)
}

func (s *screen) Loop(points geom.Polygon) {
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		s.Line(a.X, a.Y, b.X, b.Y)
	}
}

func (s *screen) Line(x1, y1, x2, y2 float64) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), strokeWidth, colorForeground, true)
}

func (s *screen) Dot(x, y float64) {
	vector.DrawFilledRect(s.dst, float32(x)-dotSize/2, float32(y)-dotSize/2, dotSize, dotSize, colorForeground, false)
}

func (s *screen) Text(str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.Color(colorForeground))
	text.Draw(s.dst, str, s.face, op)
}

func (s *screen) TextSize(str string) (float64, float64) {
	return text.Measure(str, s.face, 0)
}
