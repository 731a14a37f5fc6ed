package debugui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/engine"
)

func TestFrameHistory(t *testing.T) {
	h := newFrameHistory(3)
	assert.Zero(t, h.average())

	h.add(10 * time.Millisecond)
	h.add(20 * time.Millisecond)
	assert.InDelta(t, 15.0, h.average(), 0.001)

	h.add(30 * time.Millisecond)
	h.add(40 * time.Millisecond)
	assert.InDelta(t, 30.0, h.average(), 0.001)
	assert.Equal(t, 1, h.next)
}

func TestFrameTimer(t *testing.T) {
	now := time.Unix(100, 0)
	ft := &FrameTimer{last: now, now: func() time.Time { return now }}

	now = now.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, ft.Delta())

	now = now.Add(4 * time.Millisecond)
	assert.Equal(t, 4*time.Millisecond, ft.Delta())
}

func TestFilterCommands(t *testing.T) {
	cmds := []engine.Command{engine.Left, engine.Tick, engine.FastOn, engine.Tick, engine.FastOff}

	assert.Equal(t, []string{"left", "tick", "fast-on", "tick", "fast-off"}, filterCommands(cmds, ""))
	assert.Equal(t, []string{"fast-on", "fast-off"}, filterCommands(cmds, " Fast"))
	assert.Empty(t, filterCommands(cmds, "rotate"))
}

func TestImguiSystemDisabled(t *testing.T) {
	rendered := 0
	sys := &ImguiSystem{
		Items:      []ImguiItem{{Render: func() { rendered++ }}},
		InputState: ImguiInputState{WantCaptureKeyboard: true},
	}

	scheduler := engine.NewScheduler(engine.NewSession())
	scheduler.Register(sys)
	scheduler.Once(0)

	assert.Zero(t, rendered)
	assert.False(t, sys.KeyboardCaptured())
}
