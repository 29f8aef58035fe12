package terminal

import (
	"github.com/gdamore/tcell/v2"

	"wraproids/game"
)

const (
	// firstRepeatMs covers the terminal's delay before auto-repeat starts
	firstRepeatMs = 550
	// repeatMs is how long a key counts as held after its last repeat
	repeatMs = 150
)

// mapKey translates a terminal key event
func mapKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyUp:
		return game.KeyThrust
	case tcell.KeyEnter:
		return game.KeyStart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.KeyLeft
		case 'd', 'D':
			return game.KeyRight
		case 'w', 'W':
			return game.KeyThrust
		case ' ':
			return game.KeyFire
		case 'p', 'P':
			return game.KeyPause
		}
	}
	return game.KeyUnknown
}

type hold struct {
	since, last uint64
}

// holds turns a stream of key events into press/release pairs.
// Terminals only report presses and auto-repeats, so a key is released
// once its repeats stop arriving.
type holds struct {
	keys map[game.Key]hold
}

func newHolds() *holds {
	return &holds{keys: make(map[game.Key]hold)}
}

// Press records a key event and reports whether it starts a new hold
func (h *holds) Press(k game.Key, now uint64) bool {
	cur, ok := h.keys[k]
	if !ok {
		h.keys[k] = hold{since: now, last: now}
		return true
	}
	cur.last = now
	h.keys[k] = cur
	return false
}

// Expire returns the keys whose repeats have stopped and forgets them
func (h *holds) Expire(now uint64) []game.Key {
	var released []game.Key
	for k, cur := range h.keys {
		timeout := uint64(repeatMs)
		if cur.last == cur.since {
			timeout = firstRepeatMs
		}
		if now >= cur.last && now-cur.last > timeout {
			released = append(released, k)
			delete(h.keys, k)
		}
	}
	return released
}
