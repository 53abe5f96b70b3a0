package tileio

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cenkalti/dominantcolor"

	"kintsugi/internal/puzzle"
	"kintsugi/pkg/imgutil"
)

// Composite draws the placed tiles into a single canvas following the grid.
func Composite(st *puzzle.Store, g *puzzle.Grid) *image.RGBA {
	tileW, tileH := st.TileSize()
	canvas := image.NewRGBA(image.Rect(0, 0, tileW*g.Side, tileH*g.Side))
	for r := 0; r < g.Side; r++ {
		for c := 0; c < g.Side; c++ {
			tile := st.Tile(g.Cells[r][c])
			rect := image.Rect(c*tileW, r*tileH, (c+1)*tileW, (r+1)*tileH)
			draw.Draw(canvas, rect, tile.Img, image.Point{}, draw.Src)
		}
	}
	return canvas
}

// Result names the files one reconstruction produced.
type Result struct {
	ImagePath string
	MapPath   string
}

// WriteResult persists one method's reconstruction: the composited image as
// <method>_reconstructed.png and a placement map as
// <method>_reconstruction_map.txt, both under dir.
func WriteResult(dir, base string, st *puzzle.Store, g *puzzle.Grid) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	method := st.Method().String()
	res := &Result{
		ImagePath: filepath.Join(dir, method+"_reconstructed.png"),
		MapPath:   filepath.Join(dir, method+"_reconstruction_map.txt"),
	}

	file, err := os.Create(res.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create composite file: %w", err)
	}
	if err := png.Encode(file, Composite(st, g)); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to encode composite: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, err
	}

	if err := os.WriteFile(res.MapPath, []byte(placementMap(base, st, g)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write placement map: %w", err)
	}
	return res, nil
}

// placementMap renders the human-readable reconstruction report.
func placementMap(base string, st *puzzle.Store, g *puzzle.Grid) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Reconstruction map for: %s\n", base)
	fmt.Fprintf(&sb, "Method: %s\n", strings.ToUpper(st.Method().String()))
	fmt.Fprintf(&sb, "Tiles: %d (%dx%d grid)\n", st.Len(), g.Side, g.Side)
	if st.Method() != puzzle.Baseline {
		fmt.Fprintf(&sb, "Total border mismatch: %.2f\n", st.GridCost(g))
	}
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	sb.WriteString("POSITION | SOURCE TILE | DOMINANT COLOR | BORDER COLOR\n")
	for r := 0; r < g.Side; r++ {
		for c := 0; c < g.Side; c++ {
			tile := st.Tile(g.Cells[r][c])
			dominant := dominantcolor.Hex(dominantcolor.Find(tile.Img))
			border := dominantcolor.Hex(imgutil.AverageBorderColor(tile.Img))
			fmt.Fprintf(&sb, "(%d,%d) -> %s %s %s\n", r, c, tile.Name, dominant, border)
		}
	}
	return sb.String()
}
