package engine

import "slices"

// Recorder keeps the ordered log of commands applied to a session.
type Recorder struct {
	commands []Command
}

func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 1024)}
}

func (r *Recorder) Record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

func (r *Recorder) Len() int {
	return len(r.commands)
}

// Commands returns a copy of the full log.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Last returns a copy of the most recent n commands.
func (r *Recorder) Last(n int) []Command {
	if n > len(r.commands) {
		n = len(r.commands)
	}
	return slices.Clone(r.commands[len(r.commands)-n:])
}

// Recording is everything needed to reproduce a game.
type Recording struct {
	Seed     uint64
	Commands []Command
}

// Replay applies rec to a fresh session seeded with rec.Seed. The returned
// session ends in the same grid, score and status as the recorded one.
func Replay(rec Recording, opts ...SessionOption) *Session {
	opts = append(opts, WithSeed(rec.Seed))
	session := NewSession(opts...)
	for _, cmd := range rec.Commands {
		session.Apply(cmd)
	}
	return session
}

// Equivalent reports whether two sessions ended in the same board state.
func Equivalent(a, b *Session) bool {
	ab, bb := a.Board(), b.Board()
	if ab.Grid() != bb.Grid() || ab.Score() != bb.Score() || ab.Status() != bb.Status() {
		return false
	}

	ap, aok := ab.Active()
	bp, bok := bb.Active()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return ap.Kind == bp.Kind && ap.X == bp.X && ap.Y == bp.Y && ap.Shape.Equal(bp.Shape)
}
