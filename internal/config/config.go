package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 512

	FrameRingSize = 120

	// Population
	ParticleCount = 50
	ShapeCount    = 3

	// Particle parameters
	ParticleMaxSpeed   = 0.25
	ParticleMinRadius  = 1.0
	ParticleMaxRadius  = 3.0
	ParticleMinOpacity = 0.2
	ParticleMaxOpacity = 0.7

	// Flowing shape parameters
	ShapeMinSize          = 100.0
	ShapeMaxSize          = 300.0
	ShapeMaxRotationSpeed = 0.001
	ShapeMinOpacity       = 0.05
	ShapeMaxOpacity       = 0.2
	ShapeMinPulseSpeed    = 0.01
	ShapeMaxPulseSpeed    = 0.03
	PulseAmplitude        = 20.0
	ShapeAspect           = 0.6

	// Connections
	ConnectionDistance = 120.0
	ConnectionMaxAlpha = 0.1
	ConnectionWidth    = 1.0

	// Loop
	TimeStep   = 0.01
	TrailAlpha = 0.1

	ResizeDebounce = 150 * time.Millisecond

	// Cursor glow
	GlowRadius    = 200.0
	GlowAlpha     = 0.1
	GlowFalloff   = 0.7
	GlowFadeSpeed = 300 * time.Millisecond
)
