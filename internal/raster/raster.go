// Package raster is a software scene.Surface over an in-memory RGBA image,
// used for headless rendering.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/iburimskiy/particle-background/internal/scene"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Canvas implements scene.Surface. Shapes are anti-aliased by the vector
// rasterizer and composited source-over.
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	box   image.Rectangle
	m     f64.Aff3
	stack []f64.Aff3
}

var _ scene.Surface = (*Canvas)(nil)

// New allocates a transparent canvas. Negative sizes collapse to 0.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
		m:   identity,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the canvas into a PNG file.
func (c *Canvas) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.m)
}

// Restore pops the transform pushed by the matching Save. Unbalanced calls
// reset to identity.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.m = identity
		return
	}
	c.m = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	c.m = mul(c.m, f64.Aff3{1, 0, x, 0, 1, y})
}

func (c *Canvas) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	c.m = mul(c.m, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	if !c.begin(x, y, x+w, y+h) {
		return
	}
	c.moveTo(x, y)
	c.lineTo(x+w, y)
	c.lineTo(x+w, y+h)
	c.lineTo(x, y+h)
	c.z.ClosePath()
	c.fill(image.NewUniform(clr))
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 || !c.begin(cx-r, cy-r, cx+r, cy+r) {
		return
	}
	c.ellipsePath(cx, cy, r, r)
	c.fill(image.NewUniform(clr))
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, g scene.RadialGradient) {
	if rx <= 0 || ry <= 0 || !c.begin(cx-rx, cy-ry, cx+rx, cy+ry) {
		return
	}
	c.ellipsePath(cx, cy, rx, ry)
	c.fill(newGradientSource(g, c.m, cx, cy))
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Offset both ends along the normal by half the width.
	nx, ny := -dy/length*width/2, dx/length*width/2
	hw := width / 2
	if !c.begin(min(x0, x1)-hw, min(y0, y1)-hw, max(x0, x1)+hw, max(y0, y1)+hw) {
		return
	}
	c.moveTo(x0+nx, y0+ny)
	c.lineTo(x1+nx, y1+ny)
	c.lineTo(x1-nx, y1-ny)
	c.lineTo(x0-nx, y0-ny)
	c.z.ClosePath()
	c.fill(image.NewUniform(clr))
}

// begin prepares the rasterizer for a path inside the local box
// [x0, x1] x [y0, y1]. The rasterizer only covers the device-space bounds
// of that box, clipped to the image. It reports false when nothing is
// visible.
func (c *Canvas) begin(x0, y0, x1, y1 float64) bool {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		px, py := apply(c.m, p[0], p[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return false
	}
	c.box = box
	c.z.Reset(box.Dx(), box.Dy())
	c.z.DrawOp = draw.Over
	return true
}

func (c *Canvas) fill(src image.Image) {
	c.z.Draw(c.img, c.box, src, c.box.Min)
}

func (c *Canvas) ellipsePath(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	c.moveTo(cx+rx, cy)
	c.cubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.cubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.cubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.cubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.z.ClosePath()
}

// device maps a local point into rasterizer space.
func (c *Canvas) device(x, y float64) (float32, float32) {
	px, py := apply(c.m, x, y)
	return float32(px - float64(c.box.Min.X)), float32(py - float64(c.box.Min.Y))
}

func (c *Canvas) moveTo(x, y float64) {
	c.z.MoveTo(c.device(x, y))
}

func (c *Canvas) lineTo(x, y float64) {
	c.z.LineTo(c.device(x, y))
}

func (c *Canvas) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := c.device(x1, y1)
	bx, by := c.device(x2, y2)
	px, py := c.device(x3, y3)
	c.z.CubeTo(ax, ay, bx, by, px, py)
}
