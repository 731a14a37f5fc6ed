package debugui

import "time"

// frameHistory is a fixed-size ring of frame times in milliseconds.
type frameHistory struct {
	values []float32
	next   int
	filled int
}

func newFrameHistory(size int) *frameHistory {
	return &frameHistory{values: make([]float32, size)}
}

func (h *frameHistory) add(d time.Duration) {
	h.values[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.values)
	h.filled = min(h.filled+1, len(h.values))
}

// average is over the recorded frames only, so the first frames are not
// diluted by the zeroed tail.
func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}

	var sum float32
	for _, v := range h.values[:h.filled] {
		sum += v
	}
	return sum / float32(h.filled)
}

// FrameTimer measures the wall time between consecutive calls to Delta.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now(), now: time.Now}
}

func (ft *FrameTimer) Delta() time.Duration {
	now := ft.now()
	delta := now.Sub(ft.last)
	ft.last = now
	return delta
}
