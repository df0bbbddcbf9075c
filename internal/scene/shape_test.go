package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-background/internal/config"
)

func TestFlowingShapeRanges(t *testing.T) {
	ctx := &Context{Viewport: newTestViewport(1000, 800)}

	lo := NewFlowingShape(ctx, constRand(0))
	require.Equal(t, config.ShapeMinSize, lo.Size)
	require.Equal(t, -config.ShapeMaxRotationSpeed, lo.RotationSpeed)
	require.Equal(t, config.ShapeMinOpacity, lo.Opacity)
	require.Equal(t, config.ShapeMinPulseSpeed, lo.PulseSpeed)
	require.Equal(t, lo.Size, lo.CurrentSize)

	hi := NewFlowingShape(ctx, constRand(0.999999))
	require.Less(t, hi.X, 1000.0)
	require.Less(t, hi.Y, 800.0)
	require.Less(t, hi.Size, config.ShapeMaxSize)
	require.Less(t, hi.RotationSpeed, config.ShapeMaxRotationSpeed)
	require.Less(t, hi.Opacity, config.ShapeMaxOpacity)
	require.Less(t, hi.PulseSpeed, config.ShapeMaxPulseSpeed)
	require.Less(t, hi.PulseOffset, 2*math.Pi)
}

func TestFlowingShapeUpdate(t *testing.T) {
	s := &FlowingShape{Size: 150, RotationSpeed: -0.001, PulseSpeed: 0.02, PulseOffset: math.Pi / 2}
	ctx := &Context{}

	s.Update(ctx)
	require.InDelta(t, -0.001, s.Rotation, 1e-12)
	require.InDelta(t, 170, s.CurrentSize, 1e-9)

	ctx.Time = 100
	s.Update(ctx)
	require.InDelta(t, -0.002, s.Rotation, 1e-12)
	require.InDelta(t, 150+math.Sin(2+math.Pi/2)*20, s.CurrentSize, 1e-9)
}

func TestFlowingShapeRotationAccumulates(t *testing.T) {
	s := &FlowingShape{Size: 100, RotationSpeed: 0.001}
	ctx := &Context{}
	for i := 0; i < 10000; i++ {
		s.Update(ctx)
	}
	require.InDelta(t, 10.0, s.Rotation, 1e-9)
}

func TestFlowingShapeSizeWithinPulse(t *testing.T) {
	rnd := NewRand(3)
	ctx := &Context{Viewport: newTestViewport(640, 480)}
	shapes := make([]*FlowingShape, 20)
	for i := range shapes {
		shapes[i] = NewFlowingShape(ctx, rnd)
	}
	for step := 0; step < 20000; step++ {
		ctx.Time = float64(step) * 0.37
		for i, s := range shapes {
			s.Update(ctx)
			if s.CurrentSize < s.Size-config.PulseAmplitude || s.CurrentSize > s.Size+config.PulseAmplitude {
				t.Fatalf("shape %d size %f outside pulse of %f", i, s.CurrentSize, s.Size)
			}
			if s.CurrentSize <= 0 {
				t.Fatalf("shape %d size not positive: %f", i, s.CurrentSize)
			}
		}
	}
}

func TestFlowingShapeDrawScopesTransform(t *testing.T) {
	r := &recorder{}
	s := &FlowingShape{X: 40, Y: 60, Size: 120, CurrentSize: 110, Rotation: 0.5, Opacity: 0.1}
	s.Draw(r)

	kinds := make([]string, 0, len(r.ops))
	for _, o := range r.ops {
		kinds = append(kinds, o.kind)
	}
	require.Equal(t, []string{"save", "translate", "rotate", "ellipse", "restore"}, kinds)
	require.Equal(t, 0, r.depth)

	require.Equal(t, 40.0, r.ops[1].x)
	require.Equal(t, 60.0, r.ops[1].y)
	require.Equal(t, 0.5, r.ops[2].theta)

	e := r.ops[3]
	require.Equal(t, 1, e.depth)
	require.Equal(t, 0.0, e.x)
	require.Equal(t, 0.0, e.y)
	require.Equal(t, 110.0, e.w)
	require.InDelta(t, 66.0, e.h, 1e-9)
	require.Equal(t, 110.0, e.grad.Radius)
	require.Len(t, e.grad.Stops, 3)
	require.Equal(t, GradientStop{Offset: 0, Color: SoftLavender, Alpha: 0.1}, e.grad.Stops[0])
	require.Equal(t, GradientStop{Offset: 0.5, Color: DeepPlum, Alpha: 0.05}, e.grad.Stops[1])
	require.Equal(t, GradientStop{Offset: 1, Color: MidnightBlue, Alpha: 0}, e.grad.Stops[2])
}

// panicSurface fails while filling, after the transform was pushed.
type panicSurface struct {
	recorder
}

func (p *panicSurface) FillEllipse(cx, cy, rx, ry float64, g RadialGradient) {
	panic("fill failed")
}

func TestFlowingShapeDrawRestoresOnPanic(t *testing.T) {
	ps := &panicSurface{}
	s := &FlowingShape{X: 1, Y: 2, CurrentSize: 100}
	require.Panics(t, func() { s.Draw(ps) })
	require.Equal(t, 0, ps.depth)
	require.Equal(t, "restore", ps.ops[len(ps.ops)-1].kind)
}
