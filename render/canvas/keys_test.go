package canvas_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render/canvas"
)

func keys(down ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, d := range down {
			if d == k {
				return true
			}
		}
		return false
	}
}

func TestKeyCommands(t *testing.T) {
	tests := []struct {
		name     string
		status   board.Status
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []engine.Command
	}{
		{
			name:    "arrows while running",
			status:  board.Running,
			pressed: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp},
			want:    []engine.Command{engine.Left, engine.Rotate},
		},
		{
			name:     "fast descent press and release",
			status:   board.Running,
			pressed:  []ebiten.Key{ebiten.KeyArrowDown},
			released: []ebiten.Key{ebiten.KeyArrowDown},
			want:     []engine.Command{engine.FastOn, engine.FastOff},
		},
		{
			name:    "moves are dropped while paused",
			status:  board.Paused,
			pressed: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowDown, ebiten.KeySpace},
			want:    []engine.Command{engine.Toggle},
		},
		{
			name:     "release still clears fast descent after game over",
			status:   board.GameOver,
			released: []ebiten.Key{ebiten.KeyArrowDown},
			want:     []engine.Command{engine.FastOff},
		},
		{
			name:   "nothing pressed",
			status: board.Running,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canvas.KeyCommands(tt.status, keys(tt.pressed...), keys(tt.released...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRendererSize(t *testing.T) {
	r := &canvas.Renderer{OffsetX: 20, OffsetY: 20}
	w, h := r.Size()
	assert.Equal(t, 40+240+20+120, w)
	assert.Equal(t, 40+400, h)

	r.Block = 10
	w, h = r.Size()
	assert.Equal(t, 40+120+20+120, w)
	assert.Equal(t, 40+200, h)
}
