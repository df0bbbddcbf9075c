package scene

import "image/color"

// Surface is the drawing capability the engine renders to. Coordinates are
// in the current transform space; Save and Restore bracket transform
// changes.
type Surface interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	// FillEllipse fills an axis-aligned ellipse centered at (cx, cy) with a
	// radial gradient centered at the same point.
	FillEllipse(cx, cy, rx, ry float64, g RadialGradient)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
}
