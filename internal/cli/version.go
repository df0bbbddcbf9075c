package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-background/internal/build"
)

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Long:  `Print the version information of particles`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("particles v%s (Go version: %s)\n", build.Version, runtime.Version())
		},
	}
}
