package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-background/internal/scene"
)

const (
	ellipseRings    = 12
	ellipseSegments = 64
)

var whiteImage *ebiten.Image

// whiteSubImage is the 1x1 texture vertex colors are multiplied with.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// imageSurface draws the scene onto an ebiten image. Transforms are kept as
// a GeoM stack and applied to vertices on the CPU.
type imageSurface struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ scene.Surface = (*imageSurface)(nil)

func newImageSurface(dst *ebiten.Image) *imageSurface {
	return &imageSurface{dst: dst}
}

func (s *imageSurface) Save() {
	s.stack = append(s.stack, s.geo)
}

func (s *imageSurface) Restore() {
	if len(s.stack) == 0 {
		s.geo.Reset()
		return
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate and Rotate prepend to the current transform so later calls act
// in the local space, like a 2D canvas context.
func (s *imageSurface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(s.geo)
	s.geo = m
}

func (s *imageSurface) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(s.geo)
	s.geo = m
}

func (s *imageSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.vertices = s.vertices[:0]
	s.indices = append(s.indices[:0], 0, 1, 2, 1, 2, 3)
	s.appendVertex(x, y, c)
	s.appendVertex(x+w, y, c)
	s.appendVertex(x, y+h, c)
	s.appendVertex(x+w, y+h, c)
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{})
}

func (s *imageSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	x, y := s.geo.Apply(cx, cy)
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *imageSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	ax, ay := s.geo.Apply(x0, y0)
	bx, by := s.geo.Apply(x1, y1)
	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), c, true)
}

// FillEllipse draws the ellipse as a mesh of concentric rings. Each vertex
// takes the gradient color at its distance from the center and the GPU
// interpolates between them.
func (s *imageSurface) FillEllipse(cx, cy, rx, ry float64, g scene.RadialGradient) {
	if rx <= 0 || ry <= 0 {
		return
	}
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	s.appendVertex(cx, cy, g.At(0))
	for ring := 1; ring <= ellipseRings; ring++ {
		f := float64(ring) / ellipseRings
		for seg := 0; seg < ellipseSegments; seg++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(seg) / ellipseSegments)
			dx, dy := cos*rx*f, sin*ry*f
			s.appendVertex(cx+dx, cy+dy, g.At(math.Hypot(dx, dy)))
		}
	}

	at := func(ring, seg int) uint16 {
		return uint16(1 + (ring-1)*ellipseSegments + seg%ellipseSegments)
	}
	for seg := 0; seg < ellipseSegments; seg++ {
		s.indices = append(s.indices, 0, at(1, seg), at(1, seg+1))
	}
	for ring := 1; ring < ellipseRings; ring++ {
		for seg := 0; seg < ellipseSegments; seg++ {
			a, b := at(ring, seg), at(ring, seg+1)
			c, d := at(ring+1, seg), at(ring+1, seg+1)
			s.indices = append(s.indices, a, c, b, b, c, d)
		}
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *imageSurface) appendVertex(x, y float64, c color.NRGBA) {
	px, py := s.geo.Apply(x, y)
	r, g, b, a := vertexColor(c)
	s.vertices = append(s.vertices, ebiten.Vertex{
		DstX:   float32(px),
		DstY:   float32(py),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	})
}
