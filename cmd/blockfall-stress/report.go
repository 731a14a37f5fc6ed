package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/samber/lo"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	FrameTime time.Duration
	Seed      uint64
	SessionID string

	// Results
	TotalUpdates     int64
	TotalTime        time.Duration
	UpdateTime       Stats
	Games            GameSummary
	Systems          []engine.SystemStats
	Commands         []engine.CommandStats
	Spawns           []SpawnRow
	RecordedCommands int
	ReplayMatches    bool
	GCPauseMetrics   bool
	MemStatsStart    runtime.MemStats
	MemStatsEnd      runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	s.Min = lo.Min(s.Samples)
	s.Max = lo.Max(s.Samples)
	s.Avg = lo.Sum(s.Samples) / time.Duration(len(s.Samples))
}

// GameSummary aggregates the games finished during a run.
type GameSummary struct {
	Played     int
	TotalLines int
	BestScore  int
	AvgScore   float64
}

func summarize(games []GameResult) GameSummary {
	if len(games) == 0 {
		return GameSummary{}
	}

	scores := lo.Map(games, func(g GameResult, _ int) int { return g.Score })
	return GameSummary{
		Played:     len(games),
		TotalLines: lo.SumBy(games, func(g GameResult) int { return g.Lines }),
		BestScore:  lo.Max(scores),
		AvgScore:   float64(lo.Sum(scores)) / float64(len(games)),
	}
}

type SpawnRow struct {
	Kind  board.Kind
	Count int
}

func spawnRows(counts [board.KindCount]int) []SpawnRow {
	return lo.Map(counts[:], func(n int, i int) SpawnRow {
		return SpawnRow{Kind: board.Kind(i), Count: n}
	})
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Simulated Frame:** {{.FrameTime}}
- **Seed:** {{.Seed}}
- **Session:** {{.SessionID}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Games
- **Finished:** {{.Games.Played}}
- **Lines Cleared:** {{.Games.TotalLines}}
- **Best Score:** {{.Games.BestScore}}
- **Avg Score:** {{printf "%.1f" .Games.AvgScore}}

## Systems
| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Commands
| Command | Count | Avg | Max |
|---|---|---|---|
{{range .Commands}}| {{.Command}} | {{.Count}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Spawns
{{range .Spawns}}- {{.Kind}}: {{.Count}}
{{end}}
## Replay
- **Recorded Commands:** {{.RecordedCommands}}
- **Replay Matches:** {{.ReplayMatches}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
