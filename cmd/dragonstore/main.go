// Package main is the entry point for the dragonstore CLI.
package main

import (
	"os"

	"github.com/guyvdb/dragonstore/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
