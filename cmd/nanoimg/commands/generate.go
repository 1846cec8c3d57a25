package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fancyboi999/nano-image-generate/cmd/nanoimg/internal/config"
	"github.com/fancyboi999/nano-image-generate/pkg/cli"
	"github.com/fancyboi999/nano-image-generate/pkg/nanobanana"
	"github.com/fancyboi999/nano-image-generate/pkg/outfile"
)

// Flags for the generate command.
var (
	genOutput  string
	genAspect  string
	genSize    string
	genModel   string
	genAPIKey  string
	genBaseURL string
	genRefs    []string
)

var generateCmd = &cobra.Command{
	Use:     "generate <prompt>",
	Aliases: []string{"gen"},
	Short:   "Generate an image from a text prompt",
	Long: `Generate an image from a text prompt.

Flags not given fall back to the stored defaults (see 'nanoimg config'),
then to the builtins (pro model, 1:1 aspect, 2K size).

On success the path of the written file is printed to stdout; all
diagnostics go to stderr, so the path is safe to capture:

  file=$(nanoimg generate "A cute robot holding a banana")

Examples:
  nanoimg generate "A cute robot holding a banana"
  nanoimg generate -o robot.png "A cute robot holding a banana"
  nanoimg generate -m flash -a 16:9 -s 1K "Quick sketch of a city"
  nanoimg gen -r face.jpg -r pose.png "Same person, waving"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0])
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file path (default: <output_dir>/<slug>-<timestamp>.<ext>)")
	generateCmd.Flags().StringVarP(&genAspect, "aspect", "a", "", `aspect ratio, e.g. 1:1, 16:9, 9:16 (default "1:1")`)
	generateCmd.Flags().StringVarP(&genSize, "size", "s", "", `image size: 1K, 2K or 4K (default "2K")`)
	generateCmd.Flags().StringVarP(&genModel, "model", "m", "", `model: pro (higher quality) or flash (faster) (default "pro")`)
	generateCmd.Flags().StringVarP(&genAPIKey, "api-key", "k", "", "Gemini API key (default $GEMINI_API_KEY)")
	generateCmd.Flags().StringVar(&genBaseURL, "base-url", "", "API base URL override, for proxies and compatible endpoints")
	generateCmd.Flags().StringArrayVarP(&genRefs, "ref", "r", nil, "reference image path, repeatable (max 14)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(prompt string) error {
	stored, err := config.Load()
	if err != nil {
		return err
	}
	defaults := stored.Merged()

	model := pick(genModel, defaults.Model)
	aspect := pick(genAspect, defaults.Aspect)
	size := pick(genSize, defaults.Size)

	modelID, ok := nanobanana.ModelAliases[model]
	if !ok {
		return fmt.Errorf("invalid model %q (valid: pro, flash)", model)
	}
	if !slices.Contains(nanobanana.AspectRatios, aspect) {
		return fmt.Errorf("invalid aspect ratio %q (valid: %s)", aspect, strings.Join(nanobanana.AspectRatios, ", "))
	}
	if !slices.Contains(nanobanana.ImageSizes, size) {
		return fmt.Errorf("invalid size %q (valid: %s)", size, strings.Join(nanobanana.ImageSizes, ", "))
	}

	// A .env file in the working directory may provide GEMINI_API_KEY.
	_ = godotenv.Load()

	apiKey, err := nanobanana.ResolveAPIKey(genAPIKey)
	if err != nil {
		return fmt.Errorf("%w (or pass --api-key)", err)
	}

	cli.PrintInfo("Generating image with %s...", modelID)
	cli.PrintInfo("Prompt: %s", prompt)
	cli.PrintInfo("Aspect: %s, Size: %s, Model: %s", aspect, size, model)
	if len(genRefs) > 0 {
		cli.PrintInfo("Reference images: %d", len(genRefs))
	}

	refPaths := genRefs
	if len(refPaths) > nanobanana.MaxReferenceImages {
		cli.PrintWarning("Maximum %d reference images supported, using first %d",
			nanobanana.MaxReferenceImages, nanobanana.MaxReferenceImages)
		refPaths = refPaths[:nanobanana.MaxReferenceImages]
	}

	refs := make([]nanobanana.Reference, 0, len(refPaths))
	for _, path := range refPaths {
		ref, err := nanobanana.LoadReference(path)
		if err != nil {
			return err
		}
		cli.PrintInfo("Added reference image: %s", path)
		refs = append(refs, ref)
	}

	var opts []nanobanana.Option
	if genBaseURL != "" {
		opts = append(opts, nanobanana.WithBaseURL(genBaseURL))
	}
	client := nanobanana.NewClient(apiKey, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), nanobanana.DefaultTimeout)
	defer cancel()

	sp := cli.StartSpinner("Waiting for the API")
	start := time.Now()
	resp, err := client.Generate(ctx, &nanobanana.GenerateRequest{
		Prompt:      prompt,
		Model:       modelID,
		AspectRatio: aspect,
		Size:        size,
		References:  refs,
	})
	sp.Stop()
	if err != nil {
		return reportAPIError(err)
	}

	printVerbose("request completed in %s", cli.FormatDuration(int(time.Since(start).Milliseconds())))
	if resp.ModelVersion != "" {
		printVerbose("model version: %s", resp.ModelVersion)
	}
	if u := resp.Usage; u != nil {
		printVerbose("tokens: prompt=%d, candidates=%d, total=%d",
			u.PromptTokens, u.CandidatesTokens, u.TotalTokens)
	}

	if len(resp.Images) == 0 {
		for _, text := range resp.Texts {
			cli.PrintInfo("Model response (no image): %s", text)
		}
		return fmt.Errorf("no image data in response")
	}

	img := resp.Images[0]
	actual := img.Format()
	if img.MIME != actual.MIME {
		cli.PrintNote("API reported %s, actual format is %s", img.MIME, actual.MIME)
	}

	path, changed := outfile.Resolve(genOutput, prompt, defaults.OutputDir, actual, time.Now())
	if changed {
		cli.PrintNote("Using %s extension (actual format: %s)", actual.Ext, actual.MIME)
	}

	if err := outfile.Write(path, img.Data); err != nil {
		return err
	}

	cli.PrintSuccess("Image saved: %s (%s)", path, cli.FormatBytes(int64(len(img.Data))))

	// The bare path goes to stdout so scripts can capture it.
	fmt.Println(path)
	return nil
}

// reportAPIError prints failure diagnostics and returns the error that
// becomes the final exit message.
func reportAPIError(err error) error {
	if perr, ok := nanobanana.AsProtocolError(err); ok && len(perr.Raw) > 0 {
		var buf bytes.Buffer
		if json.Indent(&buf, perr.Raw, "", "  ") == nil {
			cli.PrintInfo("Response: %s", buf.String())
		}
		return err
	}
	if aerr, ok := nanobanana.AsError(err); ok && len(aerr.Body) > 0 {
		return fmt.Errorf("API error (%d): %s", aerr.HTTPStatus, aerr.Body)
	}
	return err
}

// pick returns the flag value when set, otherwise the configured default.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func printVerbose(format string, args ...any) {
	cli.PrintVerbose(IsVerbose(), format, args...)
}
