package scene

// Scheduler arms a callback for the next frame. Hosts run at most one armed
// callback per frame and never concurrently with another.
type Scheduler interface {
	RequestFrame(fn func())
}

// Stepper is a Scheduler advanced by explicit Step calls. It is used by the
// headless renderer and tests.
type Stepper struct {
	next func()
}

func (s *Stepper) RequestFrame(fn func()) {
	s.next = fn
}

// armed reports whether a callback is waiting for Step.
func (s *Stepper) armed() bool {
	return s.next != nil
}

// Step runs the armed callback, if any, and reports whether one ran.
func (s *Stepper) Step() bool {
	fn := s.next
	if fn == nil {
		return false
	}
	s.next = nil
	fn()
	return true
}
