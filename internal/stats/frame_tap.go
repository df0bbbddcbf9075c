package stats

import "time"

// FrameTap records the last N frame durations into a ring buffer so the
// debug overlay can report a smoothed frame rate.
type FrameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func NewFrameTap(ringSize int) *FrameTap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &FrameTap{buffer: make([]time.Duration, ringSize)}
}

// Record stores one frame duration, overwriting the oldest when full.
func (t *FrameTap) Record(d time.Duration) {
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// Snapshot returns up to the last n durations, oldest first.
func (t *FrameTap) Snapshot(n int) []time.Duration {
	if n > t.filled {
		n = t.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Average is the mean of the recorded durations, or 0 before any record.
func (t *FrameTap) Average() time.Duration {
	if t.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.Snapshot(t.filled) {
		sum += d
	}
	return sum / time.Duration(t.filled)
}

// FPS derives frames per second from the average duration.
func (t *FrameTap) FPS() float64 {
	avg := t.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
