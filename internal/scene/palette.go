package scene

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	SoftLavender = mustHex("#c4b5d8")
	Chrome       = mustHex("#e0e0e8")
	DeepPlum     = mustHex("#2d1b3d")
	MidnightBlue = mustHex("#1a1a3e")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette holds the swatches particles pick from.
var Palette = [...]colorful.Color{SoftLavender, Chrome, DeepPlum, MidnightBlue}

// Background is the color the surface is cleared and faded with.
var Background = DeepPlum

// RandomSwatch picks a palette entry uniformly.
func RandomSwatch(rnd Rand) colorful.Color {
	return Palette[pick(rnd, len(Palette))]
}

// WithAlpha converts a swatch to a straight-alpha color. Alpha is clamped to [0, 1].
func WithAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GradientStop is one color stop of a RadialGradient. Offset is in [0, 1].
type GradientStop struct {
	Offset float64
	Color  colorful.Color
	Alpha  float64
}

// RadialGradient is a circular gradient centered on the filled shape.
type RadialGradient struct {
	Radius float64
	Stops  []GradientStop
}

// At returns the gradient color at distance d from the center. Distances
// outside the first or last stop take that stop's color.
func (g RadialGradient) At(d float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	t := 0.0
	if g.Radius > 0 {
		t = d / g.Radius
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return WithAlpha(first.Color, first.Alpha)
	}
	if t >= last.Offset {
		return WithAlpha(last.Color, last.Alpha)
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return WithAlpha(b.Color, b.Alpha)
		}
		f := (t - a.Offset) / span
		return WithAlpha(a.Color.BlendRgb(b.Color, f), a.Alpha+(b.Alpha-a.Alpha)*f)
	}
	return WithAlpha(last.Color, last.Alpha)
}
