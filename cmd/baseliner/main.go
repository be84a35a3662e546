package main

import (
	"os"

	"github.com/baselinehq/baseliner/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
