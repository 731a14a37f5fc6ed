// Package term draws a game in a terminal with tcell and turns key events
// into engine commands.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/render"
)

// Each grid cell takes two terminal columns so blocks come out roughly square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	lockedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	activeStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true)
)

// Renderer draws a render.View with the grid border's top-left corner at
// (X, Y).
type Renderer struct {
	X, Y int
}

// CellAt is the terminal position of the left half of grid cell (row, col).
func (r Renderer) CellAt(row, col int) (x, y int) {
	return r.X + 1 + col*cellWidth, r.Y + 1 + row
}

func (r Renderer) Draw(screen tcell.Screen, v render.View) {
	screen.Clear()

	right := r.X + 1 + board.Cols*cellWidth
	bottom := r.Y + 1 + board.Rows
	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)

	for row := range board.Rows {
		for col := range board.Cols {
			x, y := r.CellAt(row, col)
			switch v.Cells[row][col] {
			case render.Locked:
				screen.SetContent(x, y, '█', nil, lockedStyle)
				screen.SetContent(x+1, y, '█', nil, lockedStyle)
			case render.Active:
				screen.SetContent(x, y, '█', nil, activeStyle)
				screen.SetContent(x+1, y, '█', nil, activeStyle)
			default:
				screen.SetContent(x, y, ' ', nil, emptyStyle)
				screen.SetContent(x+1, y, '.', nil, emptyStyle)
			}
		}
	}

	panel := right + 3
	putString(screen, panel, r.Y+1, v.ScoreText(), textStyle)
	putString(screen, panel, r.Y+2, fmt.Sprintf("Lines: %d", v.Lines), textStyle)
	putString(screen, panel, r.Y+4, "[Space] "+v.ButtonLabel(), textStyle)
	putString(screen, panel, r.Y+6, "arrows/hjkl move", borderStyle)
	putString(screen, panel, r.Y+7, "q quit", borderStyle)

	if banner := v.Banner(); banner != "" {
		text := " " + banner + " "
		x := r.X + 1 + (board.Cols*cellWidth-len(text))/2
		putString(screen, x, r.Y+1+board.Rows/2, text, bannerStyle)
	}

	screen.Show()
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
