package cli

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kintsugi/internal/tileio"
	"kintsugi/pkg/imgutil"
)

var (
	sliceOut  string
	sliceSeed int64
)

var sliceCmd = &cobra.Command{
	Use:   "slice <image> <tiles>",
	Short: "Cut an image into shuffled square tiles",
	Long: `Slice cuts the image into <tiles> equally-sized square tiles (<tiles> must
be a perfect square), shuffles them, and saves them as PNG files together
with an order file recording the true layout.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid tile count %q: %w", args[1], err)
		}
		seed := sliceSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		_, err = sliceImage(args[0], n, sliceOut, seed)
		return err
	},
}

func init() {
	sliceCmd.Flags().StringVar(&sliceOut, "out", "sliced_images", "directory for the tile files")
	sliceCmd.Flags().Int64Var(&sliceSeed, "seed", 0, "shuffle seed (0 = time-based)")
	rootCmd.AddCommand(sliceCmd)
}

// baseName strips the directory and extension from an image path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// sliceImage cuts, shuffles, and saves; returns the base name the tile files
// were written under.
func sliceImage(imagePath string, numTiles int, outDir string, seed int64) (string, error) {
	img, err := imgutil.Load(imagePath)
	if err != nil {
		return "", err
	}

	slices, err := tileio.Cut(img, numTiles)
	if err != nil {
		return "", err
	}
	shuffled := tileio.Shuffle(slices, rand.New(rand.NewSource(seed)))

	base := baseName(imagePath)
	names, err := tileio.SaveTiles(outDir, base, shuffled)
	if err != nil {
		return "", err
	}

	fmt.Printf("Sliced %s into %d tiles under %s (seed %d)\n", imagePath, len(names), outDir, seed)
	if verbose {
		for _, n := range names {
			fmt.Printf("  %s\n", n)
		}
	}
	return base, nil
}
