// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"wraproids/game"
	"wraproids/internal/perf"
)

// FrameDuration is the target frame time
const FrameDuration = time.Second / 60

// Run takes over the terminal and plays until Escape or Ctrl-C
func Run(world *game.World, logger zerolog.Logger, monitor *perf.Monitor) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	style := tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorWhite)
	screen.SetStyle(style)
	screen.Clear()

	field := world.Field()
	cols, rows := screen.Size()
	canvas := NewCanvas(cols, rows, field.Width, field.Height)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	clock := game.NewSystemClock()
	loop := game.NewLoop(world, clock)
	held := newHolds()
	var lastErr string

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		now := clock.NowMillis()

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
						return nil
					}
					if k := mapKey(ev); k != game.KeyUnknown && held.Press(k, now) {
						world.HandleKey(k, true)
					}
				case *tcell.EventResize:
					cols, rows := screen.Size()
					canvas.Resize(cols, rows)
					screen.Sync()
				}
			default:
				break drain
			}
		}

		for _, k := range held.Expire(now) {
			world.HandleKey(k, false)
		}

		dt := loop.Step()
		monitor.Frame(dt, func() string {
			return fmt.Sprintf("cells%dx%d", canvas.cols, canvas.rows)
		})

		if err := world.Draw(canvas); err != nil {
			if err.Error() != lastErr {
				ev := logger.Error()
				if errors.Is(err, game.ErrWindowTooSmall) {
					ev = logger.Warn()
				}
				ev.Err(err).Msg("render")
			}
			lastErr = err.Error()
		} else {
			lastErr = ""
		}
		canvas.Show(screen, style)

		<-ticker.C
	}
}
