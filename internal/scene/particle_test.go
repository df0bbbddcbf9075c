package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-background/internal/config"
)

func TestParticleResetRanges(t *testing.T) {
	ctx := &Context{Viewport: newTestViewport(800, 600)}

	lo := NewParticle(ctx, constRand(0))
	require.Equal(t, 0.0, lo.X)
	require.Equal(t, 0.0, lo.Y)
	require.Equal(t, -config.ParticleMaxSpeed, lo.VX)
	require.Equal(t, -config.ParticleMaxSpeed, lo.VY)
	require.Equal(t, config.ParticleMinRadius, lo.Radius)
	require.Equal(t, config.ParticleMinOpacity, lo.Opacity)
	require.Equal(t, Palette[0], lo.Color)

	hi := NewParticle(ctx, constRand(0.999999))
	require.Less(t, hi.X, 800.0)
	require.Less(t, hi.Y, 600.0)
	require.Less(t, hi.VX, config.ParticleMaxSpeed)
	require.Less(t, hi.Radius, config.ParticleMaxRadius)
	require.Less(t, hi.Opacity, config.ParticleMaxOpacity)
	require.Equal(t, Palette[len(Palette)-1], hi.Color)
}

func TestParticleResetOverwritesFields(t *testing.T) {
	ctx := &Context{Viewport: newTestViewport(100, 100)}
	p := NewParticle(ctx, constRand(0.1))
	p.Reset(ctx, constRand(0.5))
	require.Equal(t, 50.0, p.X)
	require.Equal(t, 50.0, p.Y)
	require.Equal(t, 0.0, p.VX)
	require.Equal(t, 0.0, p.VY)
	require.Equal(t, 2.0, p.Radius)
	require.InDelta(t, 0.45, p.Opacity, 1e-12)
	require.Equal(t, Palette[2], p.Color)
}

func TestParticleWrapToEdge(t *testing.T) {
	ctx := &Context{Viewport: newTestViewport(800, 600)}

	t.Run("left edge goes to width", func(t *testing.T) {
		p := &Particle{X: 0.1, Y: 10, VX: -0.2}
		p.Update(ctx)
		require.Equal(t, 800.0, p.X)
		require.Equal(t, 10.0, p.Y)
	})
	t.Run("negative x lands exactly on width", func(t *testing.T) {
		p := &Particle{X: -0.1, Y: 10}
		p.Update(ctx)
		require.Equal(t, 800.0, p.X)
	})
	t.Run("right edge goes to zero", func(t *testing.T) {
		p := &Particle{X: 799.9, Y: 10, VX: 0.2}
		p.Update(ctx)
		require.Equal(t, 0.0, p.X)
	})
	t.Run("exact edge is kept", func(t *testing.T) {
		p := &Particle{X: 800, Y: 600}
		p.Update(ctx)
		require.Equal(t, 800.0, p.X)
		require.Equal(t, 600.0, p.Y)
	})
	t.Run("axes wrap independently", func(t *testing.T) {
		p := &Particle{X: 0.1, Y: 300, VX: -0.2, VY: 0.2}
		p.Update(ctx)
		require.Equal(t, 800.0, p.X)
		require.InDelta(t, 300.2, p.Y, 1e-9)
	})
	t.Run("top and bottom", func(t *testing.T) {
		p := &Particle{X: 10, Y: 0.1, VY: -0.2}
		p.Update(ctx)
		require.Equal(t, 600.0, p.Y)
		p = &Particle{X: 10, Y: 599.95, VY: 0.1}
		p.Update(ctx)
		require.Equal(t, 0.0, p.Y)
	})
}

func TestParticleStaysInBounds(t *testing.T) {
	ctx := &Context{Viewport: newTestViewport(320, 200)}
	rnd := NewRand(7)
	particles := make([]*Particle, 200)
	for i := range particles {
		particles[i] = NewParticle(ctx, rnd)
	}
	for frame := 0; frame < 5000; frame++ {
		for i, p := range particles {
			p.Update(ctx)
			if p.X < 0 || p.X > 320 || p.Y < 0 || p.Y > 200 {
				t.Fatalf("frame %d: particle %d out of bounds at (%f, %f)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestParticleZeroViewport(t *testing.T) {
	ctx := &Context{Viewport: newTestViewport(0, 0)}
	p := NewParticle(ctx, constRand(0.7))
	require.Equal(t, 0.0, p.X)
	require.Equal(t, 0.0, p.Y)
	for i := 0; i < 10; i++ {
		p.Update(ctx)
		require.False(t, math.IsNaN(p.X))
		require.Equal(t, 0.0, p.X)
		require.Equal(t, 0.0, p.Y)
	}
}

func TestParticleDraw(t *testing.T) {
	r := &recorder{}
	p := &Particle{X: 12, Y: 34, Radius: 2.5, Opacity: 0.5, Color: Chrome}
	p.Draw(r)
	require.Len(t, r.ops, 1)
	o := r.ops[0]
	require.Equal(t, "circle", o.kind)
	require.Equal(t, 12.0, o.x)
	require.Equal(t, 34.0, o.y)
	require.Equal(t, 2.5, o.w)
	require.Equal(t, WithAlpha(Chrome, 0.5), o.c)
}
