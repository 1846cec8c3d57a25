package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fancyboi999/nano-image-generate/cmd/nanoimg/internal/build"
	"github.com/fancyboi999/nano-image-generate/cmd/nanoimg/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(build.String())
		if IsVerbose() {
			fmt.Printf("  go:     %s\n", runtime.Version())
			if path, err := config.Path(); err == nil {
				fmt.Printf("  config: %s\n", path)
			} else {
				fmt.Printf("  config: (unavailable: %v)\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
