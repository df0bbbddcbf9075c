// Package headless steps the animation on a software canvas and writes
// PNG snapshots, without a window.
package headless

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/logging"
	"github.com/iburimskiy/particle-background/internal/raster"
	"github.com/iburimskiy/particle-background/internal/scene"
)

// Result summarizes a finished render.
type Result struct {
	Frames int
	Files  []string
	Links  int
}

// Render runs s.Render.Frames frames at the configured window size and
// writes a snapshot every s.Render.Every frames plus the final frame.
// Every = 0 writes only the final frame. Cancelling ctx stops between
// frames.
func Render(ctx context.Context, s config.Settings, rnd scene.Rand) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(s.Render.Output, 0755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	canvas := raster.New(s.Window.Width, s.Window.Height)
	viewport := scene.NewViewport(s.Window.Width, s.Window.Height, scene.SystemClock{})
	loop, err := scene.NewLoop(canvas, viewport, rnd)
	if err != nil {
		return Result{}, err
	}
	stepper := &scene.Stepper{}
	if err := loop.Start(stepper); err != nil {
		return Result{}, err
	}
	defer loop.Stop()

	w, h := loop.Viewport().Size()
	log.Info().
		Float64("width", w).
		Float64("height", h).
		Int("frames", s.Render.Frames).
		Str("output", s.Render.Output).
		Msg("headless render started")

	writable := !canvas.Image().Bounds().Empty()
	if !writable {
		log.Warn().Msg("viewport is empty, snapshots are skipped")
	}

	var res Result
	started := time.Now()
	for i := 1; i <= s.Render.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		stepper.Step()
		res.Frames = int(loop.Frames())

		if writable && (i == s.Render.Frames || (s.Render.Every > 0 && i%s.Render.Every == 0)) {
			path := filepath.Join(s.Render.Output, fmt.Sprintf("frame_%05d.png", i))
			if err := canvas.WritePNG(path); err != nil {
				return res, err
			}
			res.Files = append(res.Files, path)
			if logging.Enabled(zerolog.DebugLevel) {
				log.Debug().Int("frame", i).Str("path", path).Int("links", loop.Links()).Msg("snapshot written")
			}
		}
	}
	res.Links = loop.Links()

	log.Info().
		Int("frames", res.Frames).
		Int("files", len(res.Files)).
		Dur("elapsed", time.Since(started)).
		Msg("headless render finished")
	return res, nil
}
