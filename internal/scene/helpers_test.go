package scene

import (
	"image/color"
	"time"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type op struct {
	kind    string
	x, y    float64
	w, h    float64
	x1, y1  float64
	c       color.NRGBA
	grad    RadialGradient
	theta   float64
	depth   int
	hasGrad bool
}

// recorder is a Surface that records draw calls and tracks save depth.
type recorder struct {
	ops      []op
	depth    int
	maxDepth int
}

func (r *recorder) add(o op) {
	o.depth = r.depth
	r.ops = append(r.ops, o)
}

func (r *recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.add(op{kind: "rect", x: x, y: y, w: w, h: h, c: c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.add(op{kind: "circle", x: cx, y: cy, w: rad, c: c})
}

func (r *recorder) FillEllipse(cx, cy, rx, ry float64, g RadialGradient) {
	r.add(op{kind: "ellipse", x: cx, y: cy, w: rx, h: ry, grad: g, hasGrad: true})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.add(op{kind: "line", x: x0, y: y0, x1: x1, y1: y1, w: width, c: c})
}

func (r *recorder) Save() {
	r.add(op{kind: "save"})
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}
}

func (r *recorder) Restore() {
	r.depth--
	r.add(op{kind: "restore"})
}

func (r *recorder) Translate(x, y float64) {
	r.add(op{kind: "translate", x: x, y: y})
}

func (r *recorder) Rotate(theta float64) {
	r.add(op{kind: "rotate", theta: theta})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.ops = r.ops[:0]
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestViewport(w, h int) *Viewport {
	return NewViewport(w, h, NewMockClock(epoch))
}
