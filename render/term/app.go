package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

// FrameInterval is the redraw period of the terminal frontend.
const FrameInterval = 16 * time.Millisecond

// App runs a session in a terminal until the player quits or the context
// is cancelled.
type App struct {
	Screen    tcell.Screen
	Scheduler *engine.Scheduler
	Renderer  Renderer

	hold downHold
}

// NewApp registers the fall system on scheduler. Key events are pushed
// straight into the scheduler from the event loop.
func NewApp(screen tcell.Screen, scheduler *engine.Scheduler) *App {
	scheduler.Register(engine.FallSystem{})

	return &App{
		Screen:    screen,
		Scheduler: scheduler,
		Renderer:  Renderer{X: 1, Y: 1},
		hold:      downHold{window: HoldWindow},
	}
}

func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.handleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventResize:
				a.Screen.Sync()
			}

		case now := <-ticker.C:
			if cmd, ok := a.hold.expire(now); ok {
				a.Scheduler.Push(cmd)
			}
			a.Scheduler.Once(now.Sub(last).Seconds())
			last = now
			a.draw()
		}
	}
}

// handleKey queues the commands for ev and reports whether the player
// asked to quit.
func (a *App) handleKey(ev *tcell.EventKey, now time.Time) bool {
	action := KeyAction(ev, a.Scheduler.Session().Board().Status())
	if action.Quit {
		return true
	}
	if action.Ok {
		a.Scheduler.Push(action.Command)
	}
	if action.Down {
		if cmd, ok := a.hold.press(now); ok {
			a.Scheduler.Push(cmd)
		}
	}
	return false
}

func (a *App) draw() {
	a.Renderer.Draw(a.Screen, render.NewView(a.Scheduler.Session().Board()))
}
