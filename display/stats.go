package display

import (
	"fmt"

	"wraproids/game"
)

func (g *Game) statsReason() string {
	return fmt.Sprintf("asteroids%d-particles%d", len(g.world.Asteroids()), len(g.world.Particles()))
}

// drawStats shows the frame rate and entity counts under the high score
func drawStats(s *screen, w *game.World, fps float64) {
	line := fmt.Sprintf("fps %.0f  asteroids %d  aliens %d  bullets %d  particles %d  wells %d",
		fps, len(w.Asteroids()), len(w.Aliens()), len(w.Bullets()), len(w.Particles()), len(w.BlackHoles()))
	tw, th := s.TextSize(line)
	sw, sh := s.Size()
	s.Text(line, sw-tw-10, sh-th-10)
}
