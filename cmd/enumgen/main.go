package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-enumerator/cmd/enumgen/commands"
)

// Version information (set via ldflags during build)
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := commands.Execute(ctx, Version, Commit); err != nil {
		if !errors.Is(err, commands.ErrDiagnostics) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
