package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/effects"
	"github.com/iburimskiy/particle-background/internal/scene"
	"github.com/iburimskiy/particle-background/internal/stats"
)

// Game hosts the animation loop in an ebiten window. It is the loop's
// scheduler: the armed frame runs once per Update. The scene is drawn on a
// persistent offscreen canvas so the fade trail accumulates between frames.
type Game struct {
	settings config.Settings
	clock    scene.Clock

	viewport *scene.Viewport
	loop     *scene.Loop
	canvas   *ebiten.Image
	surface  *imageSurface
	next     func()

	// overlay
	glow      effects.CursorGlow
	screen    *imageSurface
	frames    *stats.FrameTap
	lastTick  time.Time
	startedAt time.Time

	// raw layout size, before debouncing
	outsideW, outsideH int
}

// NewGame builds the scene for the configured window size and starts the
// loop.
func NewGame(s config.Settings, rnd scene.Rand) (*Game, error) {
	clock := scene.SystemClock{}
	g := &Game{
		settings:  s,
		clock:     clock,
		viewport:  scene.NewViewport(s.Window.Width, s.Window.Height, clock),
		frames:    stats.NewFrameTap(config.FrameRingSize),
		outsideW:  s.Window.Width,
		outsideH:  s.Window.Height,
		startedAt: clock.Now(),
	}
	g.canvas = newCanvas(s.Window.Width, s.Window.Height)
	g.surface = newImageSurface(g.canvas)
	g.screen = newImageSurface(nil)

	loop, err := scene.NewLoop(g.surface, g.viewport, rnd)
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}
	g.loop = loop
	g.viewport.OnChange(g.resize)

	if err := loop.Start(g); err != nil {
		return nil, err
	}
	log.Info().
		Int("width", s.Window.Width).
		Int("height", s.Window.Height).
		Int("particles", len(loop.Particles())).
		Int("shapes", len(loop.Shapes())).
		Msg("scene started")
	return g, nil
}

// RequestFrame arms fn for the next Update.
func (g *Game) RequestFrame(fn func()) {
	g.next = fn
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.loop.Stop()
		return ebiten.Termination
	}

	now := g.clock.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
		g.frames.Record(dt)
	}
	g.lastTick = now

	g.viewport.Poll()

	if g.settings.CursorGlow {
		x, y := ebiten.CursorPosition()
		w, h := g.viewport.Size()
		inside := ebiten.IsFocused() && x >= 0 && y >= 0 && float64(x) < w && float64(y) < h
		g.glow.Track(float64(x), float64(y), inside, dt)
	}

	if fn := g.next; fn != nil {
		g.next = nil
		fn()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)

	if g.settings.CursorGlow && g.glow.Visible() {
		g.screen.dst = screen
		g.glow.Draw(g.screen)
	}

	if g.settings.DebugOverlay {
		status := fmt.Sprintf("FPS %.1f | TPS %.1f | frame %d | links %d | t=%.2f | up %s",
			g.frames.FPS(), ebiten.ActualTPS(), g.loop.Frames(), g.loop.Links(), g.loop.Time(),
			formatDuration(g.clock.Now().Sub(g.startedAt)))
		if g.viewport.Pending() {
			status += " | resizing"
		}
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout forwards window size changes to the debounced viewport and keeps
// the logical screen at the last applied size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.viewport.Signal(outsideWidth, outsideHeight)
	}
	w, h := g.viewport.Size()
	return max(int(w), 1), max(int(h), 1)
}

// resize replaces the canvas with one of the new size, cleared to the
// opaque background.
func (g *Game) resize(w, h float64) {
	old := g.canvas
	g.canvas = newCanvas(int(w), int(h))
	g.surface.dst = g.canvas
	if err := g.loop.SetSurface(g.surface); err != nil {
		log.Error().Err(err).Msg("resize surface")
	}
	old.Deallocate()
	log.Debug().Float64("width", w).Float64("height", h).Msg("viewport resized")
}

func newCanvas(w, h int) *ebiten.Image {
	return ebiten.NewImage(max(w, 1), max(h, 1))
}
