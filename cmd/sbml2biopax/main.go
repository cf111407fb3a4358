package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
