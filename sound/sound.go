// Package sound plays short tones for game events through the system
// speaker. A Player whose Init failed stays silent.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Base pitch of the line clear tone; each extra line raises it a fifth.
const clearFrequency = 440.0

type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Callers treat a failure as "no sound".
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// LinesCleared plays a tone whose pitch rises with the number of lines.
func (p *Player) LinesCleared(n int) {
	if n <= 0 {
		return
	}
	p.play(ClearTone(n), 80*time.Millisecond)
}

// GameOver plays a low tone.
func (p *Player) GameOver() {
	p.play(110, 300*time.Millisecond)
}

func (p *Player) play(freq float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(d), tone))
	speaker.Unlock()
}

// ClearTone is the frequency played for clearing n lines at once.
func ClearTone(n int) float64 {
	freq := clearFrequency
	for range n - 1 {
		freq *= 1.5
	}
	return freq
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
