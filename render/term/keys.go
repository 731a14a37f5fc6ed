package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

// HoldWindow is how long fast descent stays on after the last Down key
// event. Terminals report no key releases, only auto-repeat presses.
const HoldWindow = 250 * time.Millisecond

// Action is what a single key event asks for.
type Action struct {
	Command engine.Command
	Ok      bool
	Down    bool
	Quit    bool
}

// KeyAction maps a key event to an action. Moves are dropped unless the
// game is running.
func KeyAction(ev *tcell.EventKey, status board.Status) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Quit: true}
	case tcell.KeyEnter:
		return Action{Command: engine.Toggle, Ok: true}
	case tcell.KeyLeft:
		return move(engine.Left, status)
	case tcell.KeyRight:
		return move(engine.Right, status)
	case tcell.KeyUp:
		return move(engine.Rotate, status)
	case tcell.KeyDown:
		return Action{Down: status == board.Running}
	case tcell.KeyRune:
	default:
		return Action{}
	}

	switch ev.Rune() {
	case 'q':
		return Action{Quit: true}
	case ' ', 'p':
		return Action{Command: engine.Toggle, Ok: true}
	case 'h':
		return move(engine.Left, status)
	case 'l':
		return move(engine.Right, status)
	case 'k':
		return move(engine.Rotate, status)
	case 'j':
		return Action{Down: status == board.Running}
	}
	return Action{}
}

func move(cmd engine.Command, status board.Status) Action {
	if status != board.Running {
		return Action{}
	}
	return Action{Command: cmd, Ok: true}
}

// downHold turns Down key repeats into a FastOn/FastOff pair.
type downHold struct {
	window time.Duration
	last   time.Time
	active bool
}

func (h *downHold) press(now time.Time) (engine.Command, bool) {
	h.last = now
	if h.active {
		return 0, false
	}
	h.active = true
	return engine.FastOn, true
}

func (h *downHold) expire(now time.Time) (engine.Command, bool) {
	if !h.active || now.Sub(h.last) < h.window {
		return 0, false
	}
	h.active = false
	return engine.FastOff, true
}
