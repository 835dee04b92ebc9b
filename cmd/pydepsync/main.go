package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/pydepsync/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
