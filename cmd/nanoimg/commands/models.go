package commands

import (
	"github.com/spf13/cobra"

	"github.com/fancyboi999/nano-image-generate/pkg/cli"
	"github.com/fancyboi999/nano-image-generate/pkg/nanobanana"
)

// modelInfo describes one selectable model in the models listing.
type modelInfo struct {
	Alias   string `json:"alias" yaml:"alias"`
	ModelID string `json:"model_id" yaml:"model_id"`
	Notes   string `json:"notes" yaml:"notes"`
}

// modelListing is the full output of the models command.
type modelListing struct {
	Models       []modelInfo `json:"models" yaml:"models"`
	AspectRatios []string    `json:"aspect_ratios" yaml:"aspect_ratios"`
	Sizes        []string    `json:"sizes" yaml:"sizes"`
}

var (
	modelsJSON bool
	modelsFile string
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models, aspect ratios and sizes",
	Long: `List the selectable models, aspect ratios and image sizes.

Examples:
  nanoimg models
  nanoimg models --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		listing := modelListing{
			Models: []modelInfo{
				{Alias: "pro", ModelID: nanobanana.ModelPro, Notes: "higher quality, follows instructions closely"},
				{Alias: "flash", ModelID: nanobanana.ModelFlash, Notes: "faster, cheaper"},
			},
			AspectRatios: nanobanana.AspectRatios,
			Sizes:        nanobanana.ImageSizes,
		}

		format := cli.FormatYAML
		if modelsJSON {
			format = cli.FormatJSON
		}
		return cli.Output(listing, cli.OutputOptions{Format: format, File: modelsFile})
	},
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "output as JSON (for piping)")
	modelsCmd.Flags().StringVarP(&modelsFile, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(modelsCmd)
}
