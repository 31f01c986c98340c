// Package main is the entry point for the blockpharm CLI binary.
package main

import (
	"os"

	cli "blockpharm/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
