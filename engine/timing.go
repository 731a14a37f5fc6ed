package engine

import "time"

// durationStats accumulates the durations of a repeated operation.
type durationStats struct {
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (d *durationStats) observe(x time.Duration) {
	if d.count == 0 || x < d.min {
		d.min = x
	}
	d.max = max(d.max, x)
	d.count++
	d.total += x
	d.last = x
}

func (d *durationStats) avg() time.Duration {
	if d.count == 0 {
		return 0
	}
	return d.total / time.Duration(d.count)
}
