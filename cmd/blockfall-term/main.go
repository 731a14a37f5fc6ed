// Command blockfall-term plays a game in the terminal.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render/term"
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

	player := sound.NewPlayer()
	if cfg.Sound {
		if err := player.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer player.Close()
	session.OnLines(player.LinesCleared)
	session.OnStatus(func(status board.Status) {
		if status == board.GameOver {
			player.GameOver()
		}
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	// Anything logged while the screen is up would corrupt it.
	log.SetOutput(io.Discard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := term.NewApp(screen, engine.NewScheduler(session))
	runErr := app.Run(ctx)
	screen.Fini()

	log.SetOutput(os.Stderr)
	if runErr != nil {
		log.Fatalf("Game exited: %v", runErr)
	}

	b := session.Board()
	log.Printf("Session %s (seed %d): %s, score %d, lines %d", session.ID, session.Seed(), b.Status(), b.Score(), b.Lines())
}
