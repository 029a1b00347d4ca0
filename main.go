package main

import (
	"fmt"
	"os"

	"github.com/pepcheck/pepcheck/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pepcheck: %v\n", err)
		os.Exit(cli.ExitCodeFor(err))
	}
}
