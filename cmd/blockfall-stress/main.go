// Command blockfall-stress plays random games headlessly as fast as
// possible, checks that the command log replays to the same state, and
// reports timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.BindFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	frameTime := flag.Duration("frame", time.Second/60, "Simulated time per frame.")
	inputRate := flag.Float64("input-rate", 0.2, "Fraction of frames with a random key press.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	log.Println("Starting blockfall stress test...")

	session := engine.NewSession(cfg.SessionOptions()...)
	scheduler := engine.NewScheduler(session)
	scheduler.Register(&RandomPlayer{
		Rand:      rand.New(rand.NewPCG(session.Seed(), 0)),
		InputRate: *inputRate,
	})
	scheduler.Register(engine.FallSystem{})

	var games []GameResult
	session.OnStatus(func(status board.Status) {
		if status == board.GameOver {
			b := session.Board()
			games = append(games, GameResult{Score: b.Score(), Lines: b.Lines()})
		}
	})

	report := &Report{
		Duration:       *duration,
		FrameTime:      *frameTime,
		Seed:           session.Seed(),
		SessionID:      session.ID,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	dt := frameTime.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished, verifying replay...")

	rec := session.Recording()
	report.RecordedCommands = len(rec.Commands)
	report.ReplayMatches = engine.Equivalent(session, engine.Replay(rec, cfg.SessionOptions()...))

	report.Games = summarize(games)
	report.Systems = scheduler.GetStats().Systems
	report.Commands = session.CommandStats()
	report.Spawns = spawnRows(session.SpawnCounts())

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.ReplayMatches {
		log.Fatalf("Replay of %d commands diverged from the live session", report.RecordedCommands)
	}
	log.Println("Stress test complete.")
}
