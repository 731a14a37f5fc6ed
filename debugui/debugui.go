// Package debugui provides Dear ImGui debug windows for a running session.
// Windows are rendered through an engine system so they always see the
// board after the frame's commands have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input this frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every item to the end of the
// frame. Nothing is rendered and no input is captured while it is disabled.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Enabled    bool
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	if !i.Enabled {
		i.InputState = ImguiInputState{}
		return
	}

	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// KeyboardCaptured reports whether key presses belong to ImGui rather than
// the game.
func (i *ImguiSystem) KeyboardCaptured() bool {
	return i.InputState.WantCaptureKeyboard
}

// Windows builds the standard set of debug windows for scheduler.
func Windows(scheduler *engine.Scheduler) []ImguiItem {
	inspector := NewSessionInspector(scheduler.Session())
	perf := NewPerformanceStats(scheduler, 120)
	log := NewCommandLog(scheduler.Session(), 40)

	return []ImguiItem{
		{Render: inspector.Render},
		{Render: perf.Render},
		{Render: log.Render},
	}
}
