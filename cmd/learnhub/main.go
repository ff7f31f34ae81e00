package main

import (
	"learnhub/internal/cli"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
