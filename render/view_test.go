package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/render"
)

func TestCanvasSize(t *testing.T) {
	w, h := render.CanvasSize()
	assert.Equal(t, 240, w)
	assert.Equal(t, 400, h)
}

func TestNewView(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		v := render.NewView(board.New())
		assert.False(t, v.HasActive)
		assert.Equal(t, "Score: 0", v.ScoreText())
		assert.Equal(t, "", v.Banner())
		assert.Equal(t, "Start", v.ButtonLabel())
		assert.Equal(t, strings.Repeat(strings.Repeat(".", board.Cols)+"\n", board.Rows), v.String())
	})

	t.Run("active piece over locked cells", func(t *testing.T) {
		b := board.New(board.WithPicker(func() board.Kind { return board.KindO }))
		b.Start()
		for range 19 {
			b.Move(board.Down)
		}

		v := render.NewView(b)
		require.True(t, v.HasActive)
		assert.Equal(t, board.KindO, v.ActiveKind)
		assert.Equal(t, "Pause", v.ButtonLabel())

		rows := strings.Split(strings.TrimSpace(v.String()), "\n")
		assert.Equal(t, "...@@.......", rows[0])
		assert.Equal(t, "...@@.......", rows[1])
		assert.Equal(t, "...##.......", rows[board.Rows-1])
		assert.Equal(t, render.Locked, v.Cells[board.Rows-1][board.SpawnX])
		assert.Equal(t, render.Active, v.Cells[0][board.SpawnX])
	})

	t.Run("game over", func(t *testing.T) {
		b := board.New(board.WithPicker(func() board.Kind { return board.KindO }))
		b.Start()
		for b.Status() == board.Running {
			b.Move(board.Down)
			b.CheckGameOver()
		}

		v := render.NewView(b)
		assert.False(t, v.HasActive)
		assert.Equal(t, "Game Over", v.Banner())
		assert.Equal(t, "Start", v.ButtonLabel())
	})
}
