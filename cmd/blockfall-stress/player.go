package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

var playerInputs = []engine.Command{engine.Left, engine.Right, engine.Rotate, engine.FastOn, engine.FastOff}

// RandomPlayer presses a random key on roughly InputRate of the frames and
// starts a new game whenever the session is not running.
type RandomPlayer struct {
	Rand      *rand.Rand
	InputRate float64
}

func (p *RandomPlayer) Execute(frame *engine.UpdateFrame) {
	if frame.Session.Board().Status() != board.Running {
		frame.Commands.Push(engine.Toggle)
		return
	}

	if p.Rand.Float64() >= p.InputRate {
		return
	}
	frame.Commands.Push(playerInputs[p.Rand.IntN(len(playerInputs))])
}

// GameResult is the final tally of one finished game.
type GameResult struct {
	Score int
	Lines int
}
