package engine

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/board"
)

// CommandStats provides execution statistics for one command kind.
type CommandStats struct {
	Command       Command
	Count         int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// sessionStats tracks per-command timings and how often each piece kind
// has spawned.
type sessionStats struct {
	commands *intmap.Map[Command, *durationStats]
	spawns   *intmap.Map[board.Kind, int]
}

func newSessionStats() *sessionStats {
	return &sessionStats{
		commands: intmap.New[Command, *durationStats](commandCount),
		spawns:   intmap.New[board.Kind, int](board.KindCount),
	}
}

func (s *sessionStats) observe(cmd Command, duration time.Duration) {
	timing, ok := s.commands.Get(cmd)
	if !ok {
		timing = &durationStats{}
		s.commands.Put(cmd, timing)
	}
	timing.observe(duration)
}

func (s *sessionStats) spawned(kind board.Kind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

// commandStats lists the commands seen so far in Command order.
func (s *sessionStats) commandStats() []CommandStats {
	out := make([]CommandStats, 0, s.commands.Len())
	for i := range commandCount {
		cmd := Command(i)
		timing, ok := s.commands.Get(cmd)
		if !ok {
			continue
		}

		out = append(out, CommandStats{
			Command:       cmd,
			Count:         timing.count,
			MinDuration:   timing.min,
			MaxDuration:   timing.max,
			AvgDuration:   timing.avg(),
			LastDuration:  timing.last,
			TotalDuration: timing.total,
		})
	}
	return out
}

func (s *sessionStats) spawnCounts() [board.KindCount]int {
	var out [board.KindCount]int
	for i := range board.KindCount {
		out[i], _ = s.spawns.Get(board.Kind(i))
	}
	return out
}
