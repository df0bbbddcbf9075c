package cli

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/game"
	"github.com/iburimskiy/particle-background/internal/logging"
	"github.com/iburimskiy/particle-background/internal/scene"
)

func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and animate",
		Long:  `Open a resizable window and animate the background until it is closed (Esc or Q)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			closeLog, err := logging.Setup(s.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			if err := runWindow(s); err != nil {
				reportFatal(s, err)
				return err
			}
			return nil
		},
	}
	config.AddWindowFlags(cmd.Flags())
	return cmd
}

func runWindow(s config.Settings) error {
	g, err := game.NewGame(s, scene.NewRand(s.Seed))
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(max(s.Window.Width, 1), max(s.Window.Height, 1))
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info().Msg("window closed")
	return nil
}

// reportFatal logs a startup or render failure once and, when enabled,
// shows it in a native dialog.
func reportFatal(s config.Settings, err error) {
	log.Error().Err(err).Msg("animation failed")
	if !s.Dialogs {
		return
	}
	if dErr := zenity.Error(err.Error(), zenity.Title("Flowing particles"), zenity.ErrorIcon); dErr != nil {
		log.Warn().Err(dErr).Msg("error dialog unavailable")
	}
}
