package main

import (
	"os"

	"github.com/evanhall/linkvault/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
