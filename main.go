package main

import (
	"os"

	"github.com/locqa/locqa/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.PrintError(err)
		os.Exit(1)
	}
}
