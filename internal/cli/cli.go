package cli

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-background/internal/config"
)

// Root builds the particles command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "particles",
		Short:         "Flowing particle background",
		Long:          `Animated particle field drifting over slowly rotating translucent shapes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddGlobalFlags(root.PersistentFlags())

	root.AddCommand(Run(), Render(), Version())
	return root
}

// loadSettings binds the flags that were declared for cmd and loads settings.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	return config.LoadFlags(cmd.Flags())
}
