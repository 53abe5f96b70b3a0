// Package cli implements the kintsugi command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kintsugi/internal/version"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kintsugi",
	Short: "Kintsugi - image puzzle slicing and reconstruction",
	Long: `Kintsugi cuts a square image into shuffled square tiles and reconstructs
it by matching tile borders.

Examples:
  kintsugi slice photo.png 16             # cut into 16 shuffled tiles
  kintsugi solve photo --method color     # reconstruct from tiles on disk
  kintsugi run photo.png 16               # slice, then solve with every method`,
	Version: version.Full(),
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
