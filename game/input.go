package game

// Key is a front-end independent key identifier
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyThrust
	KeyFire
	KeyPause
	KeyStart
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyThrust:
		return "thrust"
	case KeyFire:
		return "fire"
	case KeyPause:
		return "pause"
	case KeyStart:
		return "start"
	default:
		return "unknown"
	}
}

// HandleKey feeds a key transition into the world.
// In the menu the start and fire keys begin a session; while playing the
// pause key toggles the pause overlay and the rest steer the ship. Keys
// other than the pause toggle are ignored while paused.
func (w *World) HandleKey(key Key, pressed bool) {
	switch w.state {
	case StateMenu:
		if pressed && (key == KeyStart || key == KeyFire) {
			w.Start()
		}

	case StatePlaying:
		if key == KeyPause {
			if pressed {
				w.paused = !w.paused
			}
			return
		}
		if w.paused {
			return
		}

		switch key {
		case KeyLeft:
			w.player.Left = pressed
		case KeyRight:
			w.player.Right = pressed
		case KeyThrust:
			w.player.Thrust = pressed
		case KeyFire:
			w.player.Fire(pressed)
		}
	}
}
