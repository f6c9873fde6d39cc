package main

import (
	"os"

	"github.com/samuelfneumann/gopursuit/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
