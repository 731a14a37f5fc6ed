// Package engine drives a board: it turns key presses and timer ticks into
// commands, applies them to a session in order, and runs per-frame systems.
package engine

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats summarizes every registered system.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type registeredSystem struct {
	system System
	name   string
	timing durationStats
}

// Scheduler executes systems in registration order against one session.
// Commands queued during a frame are applied when the frame ends.
type Scheduler struct {
	session  *Session
	commands *Commands
	systems  []*registeredSystem
}

func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{
		session:  session,
		commands: newCommands(),
	}
}

// Register appends a system to the frame. It is reported under the name
// of its type.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, &registeredSystem{
		system: system,
		name:   typeName(system),
	})
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Push queues commands for the next frame flush.
func (s *Scheduler) Push(cmds ...Command) {
	for _, cmd := range cmds {
		s.commands.Push(cmd)
	}
}

func (s *Scheduler) Session() *Session {
	return s.session
}

// Once runs one frame of dt seconds: every system in order, then the
// queued commands, then the deferred functions.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.session, s.commands)

	for _, r := range s.systems {
		start := time.Now()
		r.system.Execute(frame)
		r.timing.observe(time.Since(start))
	}

	frame.Commands.Flush(s.session)
}

// Run calls Once every interval with the measured frame time until ctx is
// cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, 0, len(s.systems)),
	}

	for _, r := range s.systems {
		stats.Systems = append(stats.Systems, SystemStats{
			Name:           r.name,
			ExecutionCount: r.timing.count,
			MinDuration:    r.timing.min,
			MaxDuration:    r.timing.max,
			AvgDuration:    r.timing.avg(),
			LastDuration:   r.timing.last,
			TotalDuration:  r.timing.total,
		})
		stats.TotalExecutions += r.timing.count
	}

	return stats
}
