package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/locqa/locqa/internal/adapters/inbound/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		cli.PrintError(err)
		os.Exit(1)
	}
}
