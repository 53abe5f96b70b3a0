package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kintsugi/internal/project"
	"kintsugi/internal/puzzle"
	"kintsugi/internal/tileio"
)

var (
	solveTiles  string
	solveOutput string
	solveMethod string
)

var solveCmd = &cobra.Command{
	Use:   "solve <base>",
	Short: "Reconstruct an image from its tile files",
	Long: `Solve loads the <base>_slice_*.png tiles and reassembles them. With
--method all, every method runs in isolation: one method failing does not
stop the others.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		methods, err := selectMethods(solveMethod)
		if err != nil {
			return err
		}
		results := solveAll(args[0], solveTiles, solveOutput, methods)
		failed := 0
		for _, r := range results {
			if !r.OK {
				failed++
			}
		}
		if failed == len(results) {
			return fmt.Errorf("all %d methods failed", failed)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveTiles, "tiles", "sliced_images", "directory holding the tile files")
	solveCmd.Flags().StringVar(&solveOutput, "out", "output_images", "directory for reconstruction output")
	solveCmd.Flags().StringVar(&solveMethod, "method", "all", "gradient, color, raw, baseline, or all")
	rootCmd.AddCommand(solveCmd)
}

// selectMethods resolves the --method flag into the methods to run.
func selectMethods(name string) ([]puzzle.Method, error) {
	if name == "all" {
		return puzzle.Methods(), nil
	}
	m, err := puzzle.ParseMethod(name)
	if err != nil {
		return nil, err
	}
	return []puzzle.Method{m}, nil
}

// solveAll runs each method as an isolated solve over the same tile supply
// and reports every outcome.
func solveAll(base, tilesDir, outDir string, methods []puzzle.Method) []project.MethodResult {
	results := make([]project.MethodResult, 0, len(methods))
	for _, m := range methods {
		r := project.MethodResult{Method: m.String()}
		res, cost, err := solveOne(base, tilesDir, outDir, m)
		if err != nil {
			fmt.Printf("[%s] failed: %v\n", m, err)
			r.Error = err.Error()
		} else {
			r.OK = true
			r.ImagePath = res.ImagePath
			r.MapPath = res.MapPath
			r.Cost = cost
			fmt.Printf("[%s] wrote %s\n", m, res.ImagePath)
		}
		results = append(results, r)
	}
	return results
}

// solveOne loads the supply, runs one method end to end, and persists the
// result. Every error is fatal to this method only.
func solveOne(base, tilesDir, outDir string, m puzzle.Method) (*tileio.Result, float64, error) {
	supply, err := tileio.LoadTiles(tilesDir, base)
	if err != nil {
		return nil, 0, err
	}

	st, err := puzzle.NewStore(supply, 0, m)
	if err != nil {
		return nil, 0, err
	}

	var grid *puzzle.Grid
	if m == puzzle.Baseline {
		grid = puzzle.BaselineGrid(st)
	} else {
		grid = puzzle.Reconstruct(st)
	}

	res, err := tileio.WriteResult(outDir, base, st, grid)
	if err != nil {
		return nil, 0, err
	}

	var cost float64
	if m != puzzle.Baseline {
		cost = st.GridCost(grid)
	}
	if verbose {
		fmt.Printf("[%s] placement:\n%s", m, gridString(st, grid))
	}
	return res, cost, nil
}

// gridString renders the grid as rows of tile names, for verbose output.
func gridString(st *puzzle.Store, g *puzzle.Grid) string {
	var sb strings.Builder
	for _, row := range g.Cells {
		names := make([]string, len(row))
		for i, id := range row {
			names[i] = st.Tile(id).Name
		}
		sb.WriteString("  " + strings.Join(names, " ") + "\n")
	}
	return sb.String()
}
