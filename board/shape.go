package board

import (
	"iter"
	"slices"
)

// Kind identifies one of the seven tetromino templates.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindZ
	KindS
	KindO
	KindT
)

// KindCount is the number of tetromino templates.
const KindCount = 7

var kindNames = [KindCount]string{"I", "J", "L", "Z", "S", "O", "T"}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// ParseKind maps a single letter name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	idx := slices.Index(kindNames[:], name)
	if idx < 0 {
		return 0, false
	}
	return Kind(idx), true
}

// Shape is a square matrix of cells; true marks an occupied cell.
// Non-square footprints are padded with empty rows or columns.
type Shape [][]bool

// Cell is a row/column pair, relative to a shape or absolute on the grid.
type Cell struct {
	Row, Col int
}

var templates = [KindCount]Shape{
	KindI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
}

// Template returns a fresh copy of the spawn orientation for kind.
func Template(kind Kind) Shape {
	return templates[kind].Clone()
}

// Size is the side length of the matrix.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = slices.Clone(s[i])
	}
	return out
}

// Rotate returns the shape turned 90 degrees clockwise. Cell (row, col)
// moves to (col, size-1-row).
func (s Shape) Rotate() Shape {
	size := len(s)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for i := range size {
		for j := range size {
			rotated[j][size-1-i] = s[i][j]
		}
	}

	return rotated
}

// Equal reports whether both shapes have the same size and cells.
func (s Shape) Equal(other Shape) bool {
	return slices.EqualFunc(s, other, func(a, b []bool) bool {
		return slices.Equal(a, b)
	})
}

// Cells yields the occupied cells in row-major order.
func (s Shape) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range s {
			for j, value := range s[i] {
				if !value {
					continue
				}
				if !yield(Cell{Row: i, Col: j}) {
					return
				}
			}
		}
	}
}

// Piece is a shape positioned on the grid by its top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Clone returns a copy that shares no cells with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells yields the grid coordinates covered by the piece. Rows may be
// negative while the piece is still above the visible grid.
func (p Piece) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range p.Shape.Cells() {
			if !yield(Cell{Row: p.Y + c.Row, Col: p.X + c.Col}) {
				return
			}
		}
	}
}
