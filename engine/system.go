package engine

import "time"

// System represents a step that runs once per frame. Systems read the
// session and queue commands; they keep any state they need between frames
// in their own fields.
type System interface {
	Execute(frame *UpdateFrame)
}

// FallSystem converts frame time into Tick commands using the session's
// fall timer.
type FallSystem struct{}

func (FallSystem) Execute(frame *UpdateFrame) {
	dt := time.Duration(frame.DeltaTime * float64(time.Second))
	for range frame.Session.Timer().Advance(dt) {
		frame.Commands.Push(Tick)
	}
}
