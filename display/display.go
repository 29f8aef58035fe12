// Package display runs the game in an ebiten window.
package display

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"wraproids/game"
	"wraproids/internal/perf"
)

// Game adapts a world to ebiten's update/draw cycle
type Game struct {
	world  *game.World
	loop   *game.Loop
	screen *screen
	log    zerolog.Logger
	perf   *perf.Monitor

	keys      []ebiten.Key
	lastErr   string
	showStats bool
}

// New creates the ebiten adapter for world
func New(world *game.World, logger zerolog.Logger, monitor *perf.Monitor) *Game {
	field := world.Field()
	return &Game{
		world:  world,
		loop:   game.NewLoop(world, game.NewSystemClock()),
		screen: newScreen(field.Width, field.Height),
		log:    logger,
		perf:   monitor,
		keys:   make([]ebiten.Key, 0, 8),
	}
}

var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyA:          game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeyD:          game.KeyRight,
	ebiten.KeyArrowUp:    game.KeyThrust,
	ebiten.KeyW:          game.KeyThrust,
	ebiten.KeySpace:      game.KeyFire,
	ebiten.KeyP:          game.KeyPause,
	ebiten.KeyEnter:      game.KeyStart,
}

// Update feeds key transitions to the world and advances it one frame
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showStats = !g.showStats
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyMap[k]; ok {
			g.world.HandleKey(key, true)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyMap[k]; ok {
			g.world.HandleKey(key, false)
		}
	}

	dt := g.loop.Step()
	g.perf.Frame(dt, g.statsReason)
	return nil
}

// Draw renders the world. Render errors are logged once per distinct message.
func (g *Game) Draw(dst *ebiten.Image) {
	g.screen.dst = dst
	err := g.world.Draw(g.screen)
	if g.showStats {
		drawStats(g.screen, g.world, g.perf.FPS())
	}
	if err == nil {
		g.lastErr = ""
		return
	}
	if err.Error() != g.lastErr {
		g.lastErr = err.Error()
		ev := g.log.Error()
		if errors.Is(err, game.ErrWindowTooSmall) {
			ev = g.log.Warn()
		}
		ev.Err(err).Msg("render")
	}
}

// Layout keeps a fixed logical playfield and lets ebiten scale it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	field := g.world.Field()
	return int(field.Width), int(field.Height)
}

// Run opens the window and blocks until it is closed
func Run(world *game.World, logger zerolog.Logger, monitor *perf.Monitor, fullscreen bool) error {
	field := world.Field()
	ebiten.SetWindowSize(int(field.Width), int(field.Height))
	ebiten.SetWindowTitle("Wraproids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreen)

	err := ebiten.RunGame(New(world, logger, monitor))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
