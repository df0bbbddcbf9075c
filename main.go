package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/particle-background/internal/cli"
)

func main() {
	if err := cli.Root().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("exit")
		os.Exit(1)
	}
}
