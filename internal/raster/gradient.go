package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/iburimskiy/particle-background/internal/scene"
)

// gradientSource is an unbounded image whose pixels are a radial gradient
// evaluated in the local space of the shape being filled.
type gradientSource struct {
	g      scene.RadialGradient
	inv    f64.Aff3
	cx, cy float64
}

func newGradientSource(g scene.RadialGradient, m f64.Aff3, cx, cy float64) *gradientSource {
	return &gradientSource{g: g, inv: invert(m), cx: cx, cy: cy}
}

func (s *gradientSource) ColorModel() color.Model {
	return color.NRGBAModel
}

func (s *gradientSource) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (s *gradientSource) At(x, y int) color.Color {
	lx, ly := apply(s.inv, float64(x)+0.5, float64(y)+0.5)
	return s.g.At(math.Hypot(lx-s.cx, ly-s.cy))
}
