package board

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	Rows = 20
	Cols = 12
)

const (
	emptyGlyph  = '.'
	filledGlyph = '#'
)

// Grid is the fixed playfield. Row 0 is the top.
type Grid [Rows][Cols]bool

// RowFull reports whether every column of row is occupied.
func (g Grid) RowFull(row int) bool {
	return lo.EveryBy(g[row][:], func(filled bool) bool { return filled })
}

// RowOccupied reports whether any column of row is occupied.
func (g Grid) RowOccupied(row int) bool {
	return lo.Contains(g[row][:], true)
}

// Filled counts the occupied cells.
func (g Grid) Filled() int {
	total := 0
	for row := range g {
		total += lo.Count(g[row][:], true)
	}
	return total
}

// collapse removes row, shifts everything above it down by one and
// inserts an empty row at the top.
func (g *Grid) collapse(row int) {
	for r := row; r > 0; r-- {
		g[r] = g[r-1]
	}
	g[0] = [Cols]bool{}
}

func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for row := range g {
		for _, filled := range g[row] {
			if filled {
				sb.WriteByte(filledGlyph)
			} else {
				sb.WriteByte(emptyGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads the String form of a grid. Blank lines are ignored and
// missing leading rows are treated as empty, so a fixture only needs to
// spell out the bottom of the board.
func ParseGrid(text string) (Grid, error) {
	var g Grid

	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	if len(lines) > Rows {
		return g, fmt.Errorf("grid has %d rows, want at most %d", len(lines), Rows)
	}

	offset := Rows - len(lines)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Cols {
			return g, fmt.Errorf("row %d has %d columns, want %d", offset+i, len(line), Cols)
		}
		for col, ch := range []byte(line) {
			switch ch {
			case filledGlyph:
				g[offset+i][col] = true
			case emptyGlyph:
			default:
				return g, fmt.Errorf("row %d col %d: unexpected %q", offset+i, col, ch)
			}
		}
	}

	return g, nil
}
