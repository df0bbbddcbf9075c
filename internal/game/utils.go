package game

import (
	"fmt"
	"image/color"
	"time"
)

// vertexColor converts a straight-alpha color to vertex color components.
func vertexColor(c color.NRGBA) (float32, float32, float32, float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
