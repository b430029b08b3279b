// Package main is the entry point for the jobdash binary.
package main

import (
	"os"

	cli "job-dash/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
