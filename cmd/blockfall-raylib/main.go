// Command blockfall-raylib plays a game in a raylib window.
package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
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

	render := &RenderSystem{OffsetX: 50, OffsetY: 50, CellSize: int32(cfg.BlockSize)}
	width, height := render.WindowSize()

	rl.InitWindow(width, height, "blockfall")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	session := engine.NewSession(cfg.SessionOptions()...)
	log.Printf("Session %s (seed %d)", session.ID, session.Seed())

	scheduler := engine.NewScheduler(session)
	scheduler.Register(&InputSystem{})
	scheduler.Register(engine.FallSystem{})
	scheduler.Register(render)

	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		scheduler.Once(deltaTime)
	}
}
