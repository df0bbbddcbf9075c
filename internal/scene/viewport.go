package scene

import (
	"time"

	"github.com/iburimskiy/particle-background/internal/config"
)

// Viewport tracks the drawable size. Resize signals are debounced: a new
// size is applied only after no further signal arrived for the debounce
// delay, so only the last size of a burst takes effect.
type Viewport struct {
	width, height float64

	pendingW, pendingH float64
	pending            bool
	deadline           time.Time

	delay    time.Duration
	clock    Clock
	onChange func(w, h float64)
}

// NewViewport creates a viewport of the given size. Negative sizes collapse to 0.
func NewViewport(width, height int, clock Clock) *Viewport {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Viewport{
		width:  nonNegative(width),
		height: nonNegative(height),
		delay:  config.ResizeDebounce,
		clock:  clock,
	}
}

// Size returns the current width and height.
func (v *Viewport) Size() (float64, float64) {
	return v.width, v.height
}

// OnChange registers fn to run whenever Poll applies a new size.
func (v *Viewport) OnChange(fn func(w, h float64)) {
	v.onChange = fn
}

// Signal records a resize and restarts the quiet period.
func (v *Viewport) Signal(width, height int) {
	v.pendingW = nonNegative(width)
	v.pendingH = nonNegative(height)
	v.pending = true
	v.deadline = v.clock.Now().Add(v.delay)
}

// Pending reports whether a resize is waiting for its quiet period to end.
func (v *Viewport) Pending() bool {
	return v.pending
}

// Poll applies the pending size once the quiet period is over. It reports
// whether the size was applied.
func (v *Viewport) Poll() bool {
	if !v.pending || v.clock.Now().Before(v.deadline) {
		return false
	}
	v.pending = false
	v.width, v.height = v.pendingW, v.pendingH
	if v.onChange != nil {
		v.onChange(v.width, v.height)
	}
	return true
}

func nonNegative(n int) float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}
