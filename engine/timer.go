package engine

import "time"

const (
	FallInterval     = 200 * time.Millisecond
	FastFallInterval = 50 * time.Millisecond
)

// Timer turns elapsed frame time into fall ticks. It only accumulates time
// while started, and switches to the fast interval while fast descent is
// held.
type Timer struct {
	normal  time.Duration
	fast    time.Duration
	fastOn  bool
	running bool
	elapsed time.Duration
}

// NewTimer creates a stopped timer. Non-positive intervals fall back to
// the defaults.
func NewTimer(normal, fast time.Duration) *Timer {
	if normal <= 0 {
		normal = FallInterval
	}
	if fast <= 0 {
		fast = FastFallInterval
	}
	return &Timer{normal: normal, fast: fast}
}

// Interval is the current time between ticks.
func (t *Timer) Interval() time.Duration {
	if t.fastOn {
		return t.fast
	}
	return t.normal
}

func (t *Timer) SetFast(on bool) {
	t.fastOn = on
}

func (t *Timer) Fast() bool {
	return t.fastOn
}

func (t *Timer) Start() {
	t.running = true
	t.elapsed = 0
}

// Stop halts the timer and drops any partial interval. Stopping a stopped
// timer does nothing.
func (t *Timer) Stop() {
	t.running = false
	t.elapsed = 0
}

func (t *Timer) Running() bool {
	return t.running
}

// Advance adds dt to the accumulator and returns how many ticks are due.
func (t *Timer) Advance(dt time.Duration) int {
	if !t.running || dt <= 0 {
		return 0
	}

	t.elapsed += dt
	interval := t.Interval()
	ticks := int(t.elapsed / interval)
	t.elapsed -= time.Duration(ticks) * interval
	return ticks
}
