// Package cli provides common terminal utilities for the nanoimg
// command-line tool.
//
// This package includes:
//   - Output formatting (JSON, YAML)
//   - Styled diagnostic printing
//   - A progress spinner for long-running requests
//
// All diagnostic helpers write to stderr, keeping stdout reserved for
// machine-readable results such as the generated file path.
//
// Example usage:
//
//	cli.PrintInfo("Generating image with %s...", model)
//
//	sp := cli.StartSpinner("Waiting for the API")
//	defer sp.Stop()
//
//	// Output structured data
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	})
package cli
