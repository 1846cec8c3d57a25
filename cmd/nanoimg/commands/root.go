package commands

import (
	"github.com/spf13/cobra"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nanoimg",
	Short: "Gemini image generation from the command line",
	Long: `nanoimg - Gemini image generation from the command line.

Generates an image from a text prompt, optionally guided by up to 14
reference images, and writes it to disk. The file extension always
follows the actual image format reported by the bytes, not the name
the API claims.

The API key is read from the --api-key flag, the GEMINI_API_KEY
environment variable, or a .env file in the working directory.

Generation defaults (model, aspect ratio, size, output directory) are
stored in the OS config directory:
  macOS:   ~/Library/Application Support/nanoimg/
  Linux:   ~/.config/nanoimg/
  Windows: %AppData%/nanoimg/

Examples:
  # Generate with defaults (pro model, 1:1, 2K)
  nanoimg generate "A cute robot holding a banana"

  # Landscape wallpaper with the fast model
  nanoimg generate -m flash -a 16:9 -s 4K "Mountain lake at sunrise"

  # Guide the style with reference images
  nanoimg generate -r style1.png -r style2.jpg "Same style, a lighthouse"

  # Persist preferred defaults
  nanoimg config set model flash`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
