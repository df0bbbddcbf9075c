package scene

// Context is the simulation state shared by everything updated in a frame:
// the global clock and the viewport bounds.
type Context struct {
	Time     float64
	Viewport *Viewport
}

// Bounds returns the current viewport size, or zero without a viewport.
func (c *Context) Bounds() (float64, float64) {
	if c.Viewport == nil {
		return 0, 0
	}
	return c.Viewport.Size()
}
