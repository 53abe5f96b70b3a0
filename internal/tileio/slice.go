// Package tileio handles the file-facing sides of the puzzle pipeline:
// cutting a source image into shuffled tile files, loading a tile supply back
// from disk, and persisting reconstruction results. The scoring engine in
// internal/puzzle never touches the filesystem itself.
package tileio

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"math/rand"

	"kintsugi/internal/puzzle"
	"kintsugi/pkg/imgutil"
)

// Cell is a grid position in the source image.
type Cell struct {
	Row, Col int
}

// Slice is one cut tile together with its true cell, kept so the order file
// can record the ground-truth layout.
type Slice struct {
	Cell Cell
	Img  *image.RGBA
}

// Cut divides img into numTiles equally-sized square tiles in row-major
// order. numTiles must be a perfect square; any remainder pixels on the
// right and bottom edges are discarded.
func Cut(img image.Image, numTiles int) ([]Slice, error) {
	side := int(math.Sqrt(float64(numTiles)))
	if side*side != numTiles {
		return nil, fmt.Errorf("%w: %d", puzzle.ErrInvalidTileCount, numTiles)
	}

	src := imgutil.ToRGBA(img)
	tileW := src.Bounds().Dx() / side
	tileH := src.Bounds().Dy() / side
	if tileW < puzzle.BorderWidth || tileH < puzzle.BorderWidth {
		return nil, fmt.Errorf("%w: %dx%d tiles are smaller than the %dpx border strip",
			puzzle.ErrUnreadableTile, tileW, tileH, puzzle.BorderWidth)
	}

	slices := make([]Slice, 0, numTiles)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			tile := image.NewRGBA(image.Rect(0, 0, tileW, tileH))
			draw.Draw(tile, tile.Bounds(), src, image.Point{X: col * tileW, Y: row * tileH}, draw.Src)
			slices = append(slices, Slice{Cell: Cell{Row: row, Col: col}, Img: tile})
		}
	}
	return slices, nil
}

// Shuffle returns a new ordering of slices drawn from the given source.
// Passing the rand source explicitly keeps a slicing run reproducible.
func Shuffle(slices []Slice, rng *rand.Rand) []Slice {
	out := make([]Slice, len(slices))
	for i, j := range rng.Perm(len(slices)) {
		out[i] = slices[j]
	}
	return out
}
