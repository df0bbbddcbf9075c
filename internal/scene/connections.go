package scene

import (
	"math"

	"github.com/iburimskiy/particle-background/internal/config"
)

// ShouldConnect reports whether connections are drawn at clock value t:
// only when floor(t*100) is even. The throttle follows the simulation
// clock, not a frame counter.
func ShouldConnect(t float64) bool {
	return int64(math.Floor(t*100))%2 == 0
}

// ConnectionAlpha returns the stroke opacity for two particles at distance
// d, and false when they are too far apart to be connected.
func ConnectionAlpha(d float64) (float64, bool) {
	if d >= config.ConnectionDistance {
		return 0, false
	}
	return config.ConnectionMaxAlpha * (1 - d/config.ConnectionDistance), true
}

// DrawConnections strokes a line between every pair of particles closer
// than the connection distance and returns how many lines were drawn.
func DrawConnections(s Surface, particles []*Particle) int {
	n := 0
	for i := 0; i < len(particles); i++ {
		a := particles[i]
		for j := i + 1; j < len(particles); j++ {
			b := particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			alpha, ok := ConnectionAlpha(d)
			if !ok {
				continue
			}
			s.StrokeLine(a.X, a.Y, b.X, b.Y, config.ConnectionWidth, WithAlpha(SoftLavender, alpha))
			n++
		}
	}
	return n
}
