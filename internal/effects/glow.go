// Package effects holds pointer-driven overlays drawn on top of the scene.
package effects

import (
	"time"

	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/scene"
)

// CursorGlow is a soft radial light following the pointer. It fades in
// while the pointer is over the window and fades out when it leaves.
type CursorGlow struct {
	X, Y    float64
	Opacity float64
	inside  bool
}

// Track samples the pointer once per tick. Position only moves while the
// pointer is inside so the glow fades out where it was last seen.
func (g *CursorGlow) Track(x, y float64, inside bool, dt time.Duration) {
	g.inside = inside
	if inside {
		g.X, g.Y = x, y
	}
	step := float64(dt) / float64(config.GlowFadeSpeed)
	if inside {
		g.Opacity += step
	} else {
		g.Opacity -= step
	}
	if g.Opacity < 0 {
		g.Opacity = 0
	}
	if g.Opacity > 1 {
		g.Opacity = 1
	}
}

// Visible reports whether drawing the glow would change any pixel.
func (g *CursorGlow) Visible() bool {
	return g.Opacity > 0
}

func (g *CursorGlow) Gradient() scene.RadialGradient {
	return scene.RadialGradient{
		Radius: config.GlowRadius,
		Stops: []scene.GradientStop{
			{Offset: 0, Color: scene.SoftLavender, Alpha: config.GlowAlpha * g.Opacity},
			{Offset: config.GlowFalloff, Color: scene.SoftLavender, Alpha: 0},
		},
	}
}

func (g *CursorGlow) Draw(s scene.Surface) {
	if !g.Visible() {
		return
	}
	s.FillEllipse(g.X, g.Y, config.GlowRadius, config.GlowRadius, g.Gradient())
}
