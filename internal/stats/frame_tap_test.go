package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameTapEmpty(t *testing.T) {
	tap := NewFrameTap(4)
	require.Empty(t, tap.Snapshot(10))
	require.Zero(t, tap.Average())
	require.Zero(t, tap.FPS())
}

func TestFrameTapSnapshotOrder(t *testing.T) {
	tap := NewFrameTap(4)
	for i := 1; i <= 3; i++ {
		tap.Record(time.Duration(i) * time.Millisecond)
	}
	require.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond}, tap.Snapshot(10))
	require.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond}, tap.Snapshot(2))
}

func TestFrameTapWraps(t *testing.T) {
	tap := NewFrameTap(3)
	for i := 1; i <= 5; i++ {
		tap.Record(time.Duration(i) * time.Millisecond)
	}
	require.Equal(t, []time.Duration{3 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond}, tap.Snapshot(3))
	require.Equal(t, 4*time.Millisecond, tap.Average())
}

func TestFrameTapFPS(t *testing.T) {
	tap := NewFrameTap(8)
	for i := 0; i < 8; i++ {
		tap.Record(time.Second / 50)
	}
	require.InDelta(t, 50.0, tap.FPS(), 1e-9)
}

func TestFrameTapMinimumSize(t *testing.T) {
	tap := NewFrameTap(0)
	tap.Record(time.Millisecond)
	tap.Record(2 * time.Millisecond)
	require.Equal(t, []time.Duration{2 * time.Millisecond}, tap.Snapshot(5))
}
