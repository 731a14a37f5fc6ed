package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

// InputSystem turns this frame's key presses into commands. R restarts a
// finished game, like Space.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	status := frame.Session.Board().Status()

	restart := status == board.GameOver && rl.IsKeyPressed(rl.KeyR)
	if restart || rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		frame.Commands.Push(engine.Toggle)
	}
	if rl.IsKeyReleased(rl.KeyDown) {
		frame.Commands.Push(engine.FastOff)
	}

	if status != board.Running {
		return
	}

	if rl.IsKeyPressed(rl.KeyLeft) {
		frame.Commands.Push(engine.Left)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		frame.Commands.Push(engine.Right)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		frame.Commands.Push(engine.Rotate)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		frame.Commands.Push(engine.FastOn)
	}
}

// RenderSystem draws the board once the frame's commands have been applied.
type RenderSystem struct {
	OffsetX  int32
	OffsetY  int32
	CellSize int32
}

func (s *RenderSystem) WindowSize() (int32, int32) {
	return s.OffsetX*2 + board.Cols*s.CellSize + 160, s.OffsetY*2 + board.Rows*s.CellSize
}

func (s *RenderSystem) Execute(frame *engine.UpdateFrame) {
	frame.Commands.Defer(func() {
		s.draw(render.NewView(frame.Session.Board()))
	})
}

func (s *RenderSystem) draw(v render.View) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	offsetX, offsetY, size := s.OffsetX, s.OffsetY, s.CellSize

	rl.DrawRectangleLines(offsetX-2, offsetY-2, board.Cols*size+4, board.Rows*size+4, rl.Gray)

	for row := range board.Rows {
		for col := range board.Cols {
			var color rl.Color
			switch v.Cells[row][col] {
			case render.Locked:
				color = rl.Yellow
			case render.Active:
				color = rl.Red
			default:
				continue
			}

			x := offsetX + int32(col)*size
			y := offsetY + int32(row)*size
			rl.DrawRectangle(x, y, size, size, color)
			rl.DrawRectangleLines(x, y, size, size, rl.Black)
		}
	}

	textX := offsetX + board.Cols*size + 20
	rl.DrawText("SCORE", textX, offsetY, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", v.Score), textX, offsetY+25, 20, rl.White)

	rl.DrawText("LINES", textX, offsetY+60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", v.Lines), textX, offsetY+85, 20, rl.White)

	rl.DrawText("[Space] "+v.ButtonLabel(), textX, offsetY+130, 20, rl.Gray)

	if banner := v.Banner(); banner != "" {
		rl.DrawText(banner, offsetX+20, offsetY+board.Rows*size/2-10, 30, rl.Red)
		rl.DrawText("Press R to restart", offsetX+10, offsetY+board.Rows*size/2+30, 20, rl.White)
	}

	rl.EndDrawing()
}
