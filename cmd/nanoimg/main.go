// Package main is the entry point for the nanoimg CLI.
//
// Usage:
//
//	nanoimg [flags] <command> [args]
//
// Commands:
//
//	generate   - Generate an image from a text prompt
//	models     - List models, aspect ratios and sizes
//	config     - Manage generation defaults
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/fancyboi999/nano-image-generate/cmd/nanoimg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
