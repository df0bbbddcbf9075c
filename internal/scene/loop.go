package scene

import (
	"errors"

	"github.com/iburimskiy/particle-background/internal/config"
)

var (
	ErrNoSurface      = errors.New("no drawable surface")
	ErrNoViewport     = errors.New("no viewport")
	ErrAlreadyStarted = errors.New("animation loop already started")
)

// State of the animation loop.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Loop owns the particles and shapes and drives them one frame at a time.
type Loop struct {
	ctx       Context
	surface   Surface
	particles []*Particle
	shapes    []*FlowingShape

	sched  Scheduler
	state  State
	frames uint64
	links  int
}

// NewLoop populates a scene for the viewport. A nil rnd uses a time-seeded
// generator.
func NewLoop(surface Surface, viewport *Viewport, rnd Rand) (*Loop, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if viewport == nil {
		return nil, ErrNoViewport
	}
	if rnd == nil {
		rnd = NewRand(0)
	}
	l := &Loop{
		ctx:       Context{Viewport: viewport},
		surface:   surface,
		particles: make([]*Particle, 0, config.ParticleCount),
		shapes:    make([]*FlowingShape, 0, config.ShapeCount),
	}
	for i := 0; i < config.ParticleCount; i++ {
		l.particles = append(l.particles, NewParticle(&l.ctx, rnd))
	}
	for i := 0; i < config.ShapeCount; i++ {
		l.shapes = append(l.shapes, NewFlowingShape(&l.ctx, rnd))
	}
	return l, nil
}

// Start clears the surface to the opaque background and arms the first
// frame. A loop can be started only once.
func (l *Loop) Start(sched Scheduler) error {
	if l.state != StateIdle {
		return ErrAlreadyStarted
	}
	l.sched = sched
	l.state = StateRunning
	l.Clear()
	sched.RequestFrame(l.frame)
	return nil
}

// Stop cancels the loop. A frame already armed observes the stop and
// neither draws nor re-arms.
func (l *Loop) Stop() {
	l.state = StateStopped
}

// Clear paints the whole surface with the opaque background.
func (l *Loop) Clear() {
	w, h := l.ctx.Bounds()
	l.surface.FillRect(0, 0, w, h, WithAlpha(Background, 1))
}

// SetSurface swaps the render target, e.g. after a resize, and clears it.
func (l *Loop) SetSurface(s Surface) error {
	if s == nil {
		return ErrNoSurface
	}
	l.surface = s
	l.Clear()
	return nil
}

func (l *Loop) frame() {
	if l.state != StateRunning {
		return
	}
	l.Step()
	l.sched.RequestFrame(l.frame)
}

// Step runs one frame: fade, advance the clock, update and draw shapes then
// particles, and draw connections on throttled frames.
func (l *Loop) Step() {
	w, h := l.ctx.Bounds()
	l.surface.FillRect(0, 0, w, h, WithAlpha(Background, config.TrailAlpha))

	l.ctx.Time += config.TimeStep

	for _, s := range l.shapes {
		s.Update(&l.ctx)
		s.Draw(l.surface)
	}
	for _, p := range l.particles {
		p.Update(&l.ctx)
		p.Draw(l.surface)
	}

	if ShouldConnect(l.ctx.Time) {
		l.links = DrawConnections(l.surface, l.particles)
	}
	l.frames++
}

func (l *Loop) State() State { return l.state }
func (l *Loop) Time() float64 { return l.ctx.Time }
func (l *Loop) Frames() uint64 { return l.frames }
func (l *Loop) Particles() []*Particle { return l.particles }
func (l *Loop) Shapes() []*FlowingShape { return l.shapes }
func (l *Loop) Viewport() *Viewport { return l.ctx.Viewport }

// Links is the number of connections drawn on the last connection frame.
func (l *Loop) Links() int { return l.links }
