package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fancyboi999/nano-image-generate/cmd/nanoimg/internal/config"
	"github.com/fancyboi999/nano-image-generate/pkg/cli"
	"github.com/fancyboi999/nano-image-generate/pkg/nanobanana"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage generation defaults",
	Long: `Manage persisted generation defaults.

Defaults live in a single YAML file and apply whenever the matching
flag is not given on the command line.

Settable keys:
  model       model alias (pro, flash)
  aspect      aspect ratio (1:1, 16:9, ...)
  size        image size (1K, 2K, 4K)
  output_dir  directory for auto-named output files

The API key is never stored here; use GEMINI_API_KEY or --api-key.

Examples:
  nanoimg config set model flash
  nanoimg config set aspect 16:9
  nanoimg config show
  nanoimg config path`,
}

var configShowJSON bool

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		stored, err := config.Load()
		if err != nil {
			return err
		}

		format := cli.FormatYAML
		if configShowJSON {
			format = cli.FormatJSON
		}
		return cli.Output(stored.Merged(), cli.OutputOptions{Format: format})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a default value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		stored, err := config.Load()
		if err != nil {
			return err
		}

		switch key {
		case "model":
			if _, ok := nanobanana.ModelAliases[value]; !ok {
				return fmt.Errorf("invalid model %q (valid: pro, flash)", value)
			}
			stored.Model = value
		case "aspect":
			if !slices.Contains(nanobanana.AspectRatios, value) {
				return fmt.Errorf("invalid aspect ratio %q (valid: %s)", value, strings.Join(nanobanana.AspectRatios, ", "))
			}
			stored.Aspect = value
		case "size":
			if !slices.Contains(nanobanana.ImageSizes, value) {
				return fmt.Errorf("invalid size %q (valid: %s)", value, strings.Join(nanobanana.ImageSizes, ", "))
			}
			stored.Size = value
		case "output_dir":
			stored.OutputDir = value
		default:
			return fmt.Errorf("unknown key %q (valid: model, aspect, size, output_dir)", key)
		}

		if err := stored.Save(); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the defaults file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON (for piping)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}
