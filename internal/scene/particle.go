package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-background/internal/config"
)

// Particle is a single drifting point.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Color   colorful.Color
}

// NewParticle creates a particle placed at random within the viewport.
func NewParticle(ctx *Context, rnd Rand) *Particle {
	p := &Particle{}
	p.Reset(ctx, rnd)
	return p
}

// Reset re-randomizes every field of the particle.
func (p *Particle) Reset(ctx *Context, rnd Rand) {
	w, h := ctx.Bounds()
	p.X = rnd.Float64() * w
	p.Y = rnd.Float64() * h
	p.VX = between(rnd, -config.ParticleMaxSpeed, config.ParticleMaxSpeed)
	p.VY = between(rnd, -config.ParticleMaxSpeed, config.ParticleMaxSpeed)
	p.Radius = between(rnd, config.ParticleMinRadius, config.ParticleMaxRadius)
	p.Opacity = between(rnd, config.ParticleMinOpacity, config.ParticleMaxOpacity)
	p.Color = RandomSwatch(rnd)
}

// Update moves the particle by its velocity. A coordinate leaving the
// viewport is put on the opposite edge of that axis, not wrapped modulo.
func (p *Particle) Update(ctx *Context) {
	w, h := ctx.Bounds()
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = w
	} else if p.X > w {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = h
	} else if p.Y > h {
		p.Y = 0
	}
}

// Draw fills the particle as a circle in its own color and opacity.
func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, WithAlpha(p.Color, p.Opacity))
}
