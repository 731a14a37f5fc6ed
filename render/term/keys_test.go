package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		status board.Status
		want   Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), board.Running, Action{Command: engine.Left, Ok: true}},
		{"vim right", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), board.Running, Action{Command: engine.Right, Ok: true}},
		{"rotate", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), board.Running, Action{Command: engine.Rotate, Ok: true}},
		{"down holds", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), board.Running, Action{Down: true}},
		{"space toggles", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), board.NotStarted, Action{Command: engine.Toggle, Ok: true}},
		{"enter toggles", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), board.Paused, Action{Command: engine.Toggle, Ok: true}},
		{"move while paused", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), board.Paused, Action{}},
		{"down after game over", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), board.GameOver, Action{}},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), board.Running, Action{Quit: true}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), board.Paused, Action{Quit: true}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), board.Running, Action{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyAction(tt.ev, tt.status))
		})
	}
}

func TestDownHold(t *testing.T) {
	h := downHold{window: HoldWindow}
	start := time.Unix(0, 0)

	_, ok := h.expire(start)
	assert.False(t, ok, "nothing to expire before the first press")

	cmd, ok := h.press(start)
	require.True(t, ok)
	assert.Equal(t, engine.FastOn, cmd)

	_, ok = h.press(start.Add(100 * time.Millisecond))
	assert.False(t, ok, "repeats do not re-send FastOn")

	_, ok = h.expire(start.Add(300 * time.Millisecond))
	assert.False(t, ok, "the window restarts on every repeat")

	cmd, ok = h.expire(start.Add(100*time.Millisecond + HoldWindow))
	require.True(t, ok)
	assert.Equal(t, engine.FastOff, cmd)

	_, ok = h.expire(start.Add(time.Second))
	assert.False(t, ok)
}

func TestHandleKey(t *testing.T) {
	session := engine.NewSession(engine.WithSeed(3))
	app := NewApp(tcell.NewSimulationScreen("UTF-8"), engine.NewScheduler(session))
	now := time.Unix(0, 0)

	assert.False(t, app.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now))
	app.Scheduler.Once(0)
	require.Equal(t, board.Running, session.Board().Status())

	assert.False(t, app.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), now))
	app.Scheduler.Once(0)
	assert.True(t, session.Timer().Fast())

	assert.True(t, app.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now))
}
