package engine

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/board"
)

// Session is one game: a board, the fall timer driving it, a log of every
// command applied and the listeners interested in score and status.
// A Session must only be used from one goroutine.
type Session struct {
	ID string

	seed     uint64
	board    *board.Board
	timer    *Timer
	recorder *Recorder
	stats    *sessionStats

	onScore  []func(score int)
	onStatus []func(status board.Status)
	onLines  []func(cleared int)
}

type sessionConfig struct {
	seed         uint64
	normal, fast time.Duration
	boardOpts    []board.Option
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

// WithSeed makes piece selection reproducible. A zero seed picks one at
// random; the chosen seed is still recorded for replay.
func WithSeed(seed uint64) SessionOption {
	return func(c *sessionConfig) {
		c.seed = seed
	}
}

// WithIntervals overrides the normal and fast fall intervals.
func WithIntervals(normal, fast time.Duration) SessionOption {
	return func(c *sessionConfig) {
		c.normal = normal
		c.fast = fast
	}
}

// WithBoardOptions passes options through to board.New. They are applied
// after the seeded source, so board.WithPicker wins over WithSeed.
func WithBoardOptions(opts ...board.Option) SessionOption {
	return func(c *sessionConfig) {
		c.boardOpts = append(c.boardOpts, opts...)
	}
}

// NewSession creates a session in the NotStarted state.
func NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == 0 {
		cfg.seed = rand.Uint64() | 1
	}

	source := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	boardOpts := append([]board.Option{board.WithRand(source)}, cfg.boardOpts...)

	return &Session{
		ID:       uuid.NewString(),
		seed:     cfg.seed,
		board:    board.New(boardOpts...),
		timer:    NewTimer(cfg.normal, cfg.fast),
		recorder: NewRecorder(),
		stats:    newSessionStats(),
	}
}

// Apply runs cmd against the board synchronously and records it.
func (s *Session) Apply(cmd Command) board.Outcome {
	start := time.Now()
	score := s.board.Score()
	status := s.board.Status()

	var out board.Outcome
	switch cmd {
	case Toggle:
		if status == board.Running {
			s.board.Pause()
			s.timer.Stop()
		} else {
			piece := s.board.Start()
			s.stats.spawned(piece.Kind)
			s.timer.Start()
		}
	case Tick:
		if status != board.Running {
			break
		}
		out = s.board.Move(board.Down)
		if s.board.CheckGameOver() {
			s.timer.Stop()
		}
	case Left:
		out = s.board.Move(board.Left)
	case Right:
		out = s.board.Move(board.Right)
	case Rotate:
		out.Moved = s.board.Rotate()
	case FastOn:
		s.timer.SetFast(true)
	case FastOff:
		s.timer.SetFast(false)
	}

	if out.Locked {
		if piece, ok := s.board.Active(); ok {
			s.stats.spawned(piece.Kind)
		}
	}

	s.recorder.Record(cmd)
	s.stats.observe(cmd, time.Since(start))

	if out.Cleared > 0 {
		for _, fn := range s.onLines {
			fn(out.Cleared)
		}
	}
	if now := s.board.Score(); now != score {
		for _, fn := range s.onScore {
			fn(now)
		}
	}
	if now := s.board.Status(); now != status {
		for _, fn := range s.onStatus {
			fn(now)
		}
	}

	return out
}

// Advance feeds elapsed time to the fall timer and applies the ticks that
// come due. It stops early if a tick ends the game.
func (s *Session) Advance(dt time.Duration) int {
	applied := 0
	for range s.timer.Advance(dt) {
		if !s.timer.Running() {
			break
		}
		s.Apply(Tick)
		applied++
	}
	return applied
}

// OnScore registers fn to run after every score change.
func (s *Session) OnScore(fn func(score int)) {
	s.onScore = append(s.onScore, fn)
}

// OnStatus registers fn to run after every status change.
func (s *Session) OnStatus(fn func(status board.Status)) {
	s.onStatus = append(s.onStatus, fn)
}

// OnLines registers fn to run whenever a placement clears rows.
func (s *Session) OnLines(fn func(cleared int)) {
	s.onLines = append(s.onLines, fn)
}

// Board exposes the simulator for read access. Mutations should go through
// Apply so they are recorded.
func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Timer() *Timer {
	return s.timer
}

func (s *Session) Seed() uint64 {
	return s.seed
}

// Recording returns the seed and every command applied so far.
func (s *Session) Recording() Recording {
	return Recording{Seed: s.seed, Commands: s.recorder.Commands()}
}

// RecentCommands returns up to n of the latest commands, oldest first.
func (s *Session) RecentCommands(n int) []Command {
	return s.recorder.Last(n)
}

// CommandStats returns timing statistics per command kind.
func (s *Session) CommandStats() []CommandStats {
	return s.stats.commandStats()
}

// SpawnCounts returns how many pieces of each kind have spawned.
func (s *Session) SpawnCounts() [board.KindCount]int {
	return s.stats.spawnCounts()
}
