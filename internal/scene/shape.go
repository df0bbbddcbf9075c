package scene

import (
	"math"

	"github.com/iburimskiy/particle-background/internal/config"
)

// FlowingShape is a large translucent ellipse that rotates slowly and
// pulses in size.
type FlowingShape struct {
	X, Y          float64
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Opacity       float64
	PulseSpeed    float64
	PulseOffset   float64
	CurrentSize   float64
}

// NewFlowingShape creates a shape with randomized placement and motion.
func NewFlowingShape(ctx *Context, rnd Rand) *FlowingShape {
	w, h := ctx.Bounds()
	s := &FlowingShape{
		X:             rnd.Float64() * w,
		Y:             rnd.Float64() * h,
		Size:          between(rnd, config.ShapeMinSize, config.ShapeMaxSize),
		Rotation:      between(rnd, 0, 2*math.Pi),
		RotationSpeed: between(rnd, -config.ShapeMaxRotationSpeed, config.ShapeMaxRotationSpeed),
		Opacity:       between(rnd, config.ShapeMinOpacity, config.ShapeMaxOpacity),
		PulseSpeed:    between(rnd, config.ShapeMinPulseSpeed, config.ShapeMaxPulseSpeed),
		PulseOffset:   between(rnd, 0, 2*math.Pi),
	}
	s.CurrentSize = s.Size
	return s
}

// Update advances rotation and recomputes the pulsed size for the clock.
// Rotation accumulates without wrapping.
func (s *FlowingShape) Update(ctx *Context) {
	s.Rotation += s.RotationSpeed
	pulse := math.Sin(ctx.Time*s.PulseSpeed + s.PulseOffset)
	s.CurrentSize = s.Size + pulse*config.PulseAmplitude
}

// Gradient is the fill of the shape at its current size.
func (s *FlowingShape) Gradient() RadialGradient {
	return RadialGradient{
		Radius: s.CurrentSize,
		Stops: []GradientStop{
			{Offset: 0, Color: SoftLavender, Alpha: s.Opacity},
			{Offset: 0.5, Color: DeepPlum, Alpha: s.Opacity * 0.5},
			{Offset: 1, Color: MidnightBlue, Alpha: 0},
		},
	}
}

// Draw fills the shape as a rotated gradient ellipse around its center.
func (s *FlowingShape) Draw(surface Surface) {
	surface.Save()
	defer surface.Restore()

	surface.Translate(s.X, s.Y)
	surface.Rotate(s.Rotation)
	surface.FillEllipse(0, 0, s.CurrentSize, s.CurrentSize*config.ShapeAspect, s.Gradient())
}
