// Command blockfall plays a game in an ebiten window. -debug adds Dear
// ImGui windows for the session, toggled with F1.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render/canvas"
	"github.com/plus3/blockfall/sound"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	session := engine.NewSession(cfg.SessionOptions()...)
	log.Printf("Session %s (seed %d)", session.ID, session.Seed())

	player := sound.NewPlayer()
	if cfg.Sound {
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer player.Close()

	session.OnLines(player.LinesCleared)
	session.OnStatus(func(status board.Status) {
		if status == board.GameOver {
			player.GameOver()
			log.Printf("Game over: score %d, lines %d", session.Board().Score(), session.Board().Lines())
		}
	})

	scheduler := engine.NewScheduler(session)
	game := canvas.NewGame(scheduler)
	game.Renderer.Block = cfg.BlockSize

	if cfg.Debug {
		game.Overlay = debugui_ebiten.NewImguiBackend("blockfall", 1280, 720)

		imguiSystem := &debugui.ImguiSystem{
			Items:   debugui.Windows(scheduler),
			Enabled: true,
		}
		scheduler.Register(imguiSystem)

		game.Keys.Captured = imguiSystem.KeyboardCaptured
		game.Toggles = map[ebiten.Key]func(){
			ebiten.KeyF1: func() { imguiSystem.Enabled = !imguiSystem.Enabled },
		}
	} else {
		ebiten.SetWindowSize(game.Renderer.Size())
		ebiten.SetWindowTitle("blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
