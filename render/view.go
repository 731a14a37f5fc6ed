// Package render turns board state into something a frontend can draw.
// It performs no drawing itself; see the canvas and term subpackages.
package render

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/board"
)

// BlockSize is the edge length of one cell in pixels.
const BlockSize = 20

// CanvasSize is the pixel size of the drawing surface for the grid.
func CanvasSize() (width, height int) {
	return board.Cols * BlockSize, board.Rows * BlockSize
}

// CellState is what occupies a cell from the renderer's point of view.
type CellState uint8

const (
	Empty CellState = iota
	Locked
	Active
)

// View is a snapshot of everything a frontend draws in one frame.
type View struct {
	Cells  [board.Rows][board.Cols]CellState
	Score  int
	Lines  int
	Status board.Status

	HasActive  bool
	ActiveKind board.Kind
}

// NewView composites the grid and the active piece. Piece cells that are
// still above the grid are left out.
func NewView(b *board.Board) View {
	v := View{
		Score:  b.Score(),
		Lines:  b.Lines(),
		Status: b.Status(),
	}

	grid := b.Grid()
	for row := range grid {
		for col, filled := range grid[row] {
			if filled {
				v.Cells[row][col] = Locked
			}
		}
	}

	piece, ok := b.Active()
	if !ok {
		return v
	}

	v.HasActive = true
	v.ActiveKind = piece.Kind
	for c := range piece.Cells() {
		if c.Row < 0 || c.Row >= board.Rows || c.Col < 0 || c.Col >= board.Cols {
			continue
		}
		v.Cells[c.Row][c.Col] = Active
	}

	return v
}

// ScoreText is the score display line.
func (v View) ScoreText() string {
	return fmt.Sprintf("Score: %d", v.Score)
}

// Banner is the game-over message, or empty while the game is not over.
func (v View) Banner() string {
	if v.Status == board.GameOver {
		return "Game Over"
	}
	return ""
}

// ButtonLabel names what the start/pause control does next.
func (v View) ButtonLabel() string {
	if v.Status == board.Running {
		return "Pause"
	}
	return "Start"
}

// String draws the view as text: '.' empty, '#' locked, '@' active.
func (v View) String() string {
	var sb strings.Builder
	for row := range v.Cells {
		for _, cell := range v.Cells[row] {
			switch cell {
			case Locked:
				sb.WriteByte('#')
			case Active:
				sb.WriteByte('@')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
