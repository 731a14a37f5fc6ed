// Package board simulates the playfield of a falling-block puzzle: the grid,
// the active piece and the rules for moving, rotating, locking and clearing.
//
// A Board is owned by a single goroutine. Every method is synchronous and
// invalid moves are silently ignored rather than reported as errors.
package board

import (
	"math/rand/v2"
)

const (
	// LineClearPoints is awarded per cleared row.
	LineClearPoints = 100

	// SpawnX and SpawnY locate the top-left corner of a freshly spawned piece.
	SpawnX = 3
	SpawnY = 0
)

// Direction is a unit move of the active piece.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "unknown"
}

func (d Direction) offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Outcome describes what a call to Move did.
type Outcome struct {
	Moved   bool
	Locked  bool
	Cleared int
}

// Board holds the state of one game.
type Board struct {
	grid   Grid
	active *Piece
	score  int
	lines  int
	status Status
	pick   func() Kind
}

// Option configures a Board.
type Option func(*Board)

// WithRand draws pieces from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		b.pick = func() Kind {
			return Kind(r.IntN(KindCount))
		}
	}
}

// WithPicker uses fn to choose every spawned piece.
func WithPicker(fn func() Kind) Option {
	return func(b *Board) {
		b.pick = fn
	}
}

// New creates an empty board in the NotStarted state.
func New(opts ...Option) *Board {
	b := &Board{
		pick: func() Kind {
			return Kind(rand.IntN(KindCount))
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Reset empties the grid.
func (b *Board) Reset() {
	b.grid = Grid{}
}

// Start begins a new game: empty grid, zero score and a fresh piece.
func (b *Board) Start() Piece {
	b.Reset()
	b.score = 0
	b.lines = 0
	b.status = Running
	return b.Spawn()
}

// Pause freezes a running game. Other states are left alone.
func (b *Board) Pause() {
	if b.status == Running {
		b.status = Paused
	}
}

// Spawn makes a uniformly chosen piece active at the spawn origin and
// returns a copy of it.
func (b *Board) Spawn() Piece {
	kind := b.pick()
	b.active = &Piece{
		Kind:  kind,
		Shape: Template(kind),
		X:     SpawnX,
		Y:     SpawnY,
	}
	return b.active.Clone()
}

// CanPlace reports whether shape fits with its top-left corner at (x, y).
// Cells above the grid never collide with it but are still bounded by the
// side walls.
func (b *Board) CanPlace(shape Shape, x, y int) bool {
	for c := range shape.Cells() {
		col := x + c.Col
		row := y + c.Row

		if col < 0 || col >= Cols || row >= Rows {
			return false
		}

		if row >= 0 && b.grid[row][col] {
			return false
		}
	}

	return true
}

// Move shifts the active piece one cell. A blocked downward move locks the
// piece, clears lines and spawns the next piece; a blocked sideways move is
// dropped.
func (b *Board) Move(dir Direction) Outcome {
	if b.active == nil || b.status != Running {
		return Outcome{}
	}

	dx, dy := dir.offset()
	x, y := b.active.X+dx, b.active.Y+dy

	if b.CanPlace(b.active.Shape, x, y) {
		b.active.X = x
		b.active.Y = y
		return Outcome{Moved: true}
	}

	if dir != Down {
		return Outcome{}
	}

	b.lock()
	cleared := b.ClearLines()
	if b.status != GameOver {
		b.Spawn()
	}

	return Outcome{Locked: true, Cleared: cleared}
}

// Rotate turns the active piece clockwise in place. The rotation is
// dropped if the result would not fit; there is no wall kick.
func (b *Board) Rotate() bool {
	if b.active == nil || b.status != Running {
		return false
	}

	rotated := b.active.Shape.Rotate()
	if !b.CanPlace(rotated, b.active.X, b.active.Y) {
		return false
	}

	b.active.Shape = rotated
	return true
}

// lock writes the active piece into the grid. Cells still above the grid
// have nowhere to go and are discarded.
func (b *Board) lock() {
	for c := range b.active.Cells() {
		if c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols {
			b.grid[c.Row][c.Col] = true
		}
	}
	b.active = nil
}

// ClearLines removes every full row, compacting the rows above it, and
// adds LineClearPoints per removed row to the score.
func (b *Board) ClearLines() int {
	cleared := 0
	for row := Rows - 1; row >= 0; {
		if b.grid.RowFull(row) {
			b.grid.collapse(row)
			cleared++
			// the row above now sits at the same index
			continue
		}
		row--
	}

	b.lines += cleared
	b.score += cleared * LineClearPoints
	return cleared
}

// CheckGameOver ends the game if anything occupies the top row.
func (b *Board) CheckGameOver() bool {
	if b.status == GameOver {
		return true
	}
	if !b.grid.RowOccupied(0) {
		return false
	}

	b.status = GameOver
	b.active = nil
	return true
}

// Grid returns a copy of the playfield, excluding the active piece.
func (b *Board) Grid() Grid {
	return b.grid
}

// Active returns a copy of the active piece, if there is one.
func (b *Board) Active() (Piece, bool) {
	if b.active == nil {
		return Piece{}, false
	}
	return b.active.Clone(), true
}

func (b *Board) Score() int {
	return b.score
}

// Lines is the total number of rows cleared this game.
func (b *Board) Lines() int {
	return b.lines
}

func (b *Board) Status() Status {
	return b.status
}
