package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-background/internal/config"
	"github.com/iburimskiy/particle-background/internal/headless"
	"github.com/iburimskiy/particle-background/internal/logging"
	"github.com/iburimskiy/particle-background/internal/scene"
)

func Render() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to PNG files without a window",
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

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = headless.Render(ctx, s, scene.NewRand(s.Seed))
			return err
		},
	}
	config.AddRenderFlags(cmd.Flags())
	return cmd
}
