package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

type keyBinding struct {
	key     ebiten.Key
	press   engine.Command
	release engine.Command
	held    bool
}

var bindings = []keyBinding{
	{key: ebiten.KeyArrowLeft, press: engine.Left},
	{key: ebiten.KeyArrowRight, press: engine.Right},
	{key: ebiten.KeyArrowUp, press: engine.Rotate},
	{key: ebiten.KeyArrowDown, press: engine.FastOn, release: engine.FastOff, held: true},
	{key: ebiten.KeySpace, press: engine.Toggle},
	{key: ebiten.KeyEnter, press: engine.Toggle},
}

// KeyCommands maps one frame of key transitions to commands. Only Toggle
// and key releases get through while the game is not running.
func KeyCommands(status board.Status, justPressed, justReleased func(ebiten.Key) bool) []engine.Command {
	var cmds []engine.Command
	for _, b := range bindings {
		if justPressed(b.key) && (status == board.Running || b.press == engine.Toggle) {
			cmds = append(cmds, b.press)
		}
		if b.held && justReleased(b.key) {
			cmds = append(cmds, b.release)
		}
	}
	return cmds
}

// KeySystem queues the commands for this frame's key presses. Presses are
// ignored while Captured reports true.
type KeySystem struct {
	Captured func() bool
}

func (k *KeySystem) Execute(frame *engine.UpdateFrame) {
	if k.Captured != nil && k.Captured() {
		return
	}

	status := frame.Session.Board().Status()
	for _, cmd := range KeyCommands(status, inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		frame.Commands.Push(cmd)
	}
}
