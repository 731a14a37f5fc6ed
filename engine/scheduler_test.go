package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

type countingSystem struct {
	ExecuteCount int
	LastDelta    float64
}

func (s *countingSystem) Execute(frame *engine.UpdateFrame) {
	s.ExecuteCount++
	s.LastDelta = frame.DeltaTime
}

// rotateOnceSystem queues a single rotation on its first frame.
type rotateOnceSystem struct {
	done bool
}

func (s *rotateOnceSystem) Execute(frame *engine.UpdateFrame) {
	if s.done {
		return
	}
	s.done = true
	frame.Commands.Push(engine.Rotate)
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order and stats", func(t *testing.T) {
		scheduler := engine.NewScheduler(engine.NewSession())

		first := &countingSystem{}
		second := &countingSystem{}
		scheduler.Register(first)
		scheduler.Register(second)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		if first.ExecuteCount != 2 || second.ExecuteCount != 2 {
			t.Errorf("expected both systems to execute twice, got %d and %d", first.ExecuteCount, second.ExecuteCount)
		}
		if second.LastDelta != 0.25 {
			t.Errorf("expected LastDelta=0.25, got %f", second.LastDelta)
		}

		stats := scheduler.GetStats()
		if stats.SystemCount != 2 {
			t.Errorf("expected 2 systems, got %d", stats.SystemCount)
		}
		if stats.TotalExecutions != 4 {
			t.Errorf("expected 4 executions, got %d", stats.TotalExecutions)
		}
		if stats.Systems[0].Name != "countingSystem" {
			t.Errorf("expected system name countingSystem, got %q", stats.Systems[0].Name)
		}
	})

	t.Run("pushed commands apply at the end of the frame", func(t *testing.T) {
		session := engine.NewSession(engine.WithBoardOptions(board.WithPicker(func() board.Kind { return board.KindT })))
		scheduler := engine.NewScheduler(session)
		scheduler.Register(&rotateOnceSystem{})

		scheduler.Push(engine.Toggle)
		scheduler.Once(0)

		if session.Board().Status() != board.Running {
			t.Fatalf("expected running, got %s", session.Board().Status())
		}

		piece, _ := session.Board().Active()
		if piece.Shape.Equal(board.Template(board.KindT)) {
			t.Errorf("expected the rotation queued by the system to apply after the toggle")
		}
	})

	t.Run("fall system ticks the board", func(t *testing.T) {
		session := engine.NewSession(engine.WithIntervals(100*time.Millisecond, 10*time.Millisecond))
		scheduler := engine.NewScheduler(session)
		scheduler.Register(engine.FallSystem{})

		scheduler.Push(engine.Toggle)
		scheduler.Once(0)

		scheduler.Once(0.35)
		piece, _ := session.Board().Active()
		if piece.Y != 3 {
			t.Errorf("expected piece at row 3, got %d", piece.Y)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := engine.NewScheduler(engine.NewSession())
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after cancel")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected at least one frame before cancel")
		}
	})
}
