package tileio

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kintsugi/internal/puzzle"
)

// gradientImage builds a w×h image with a unique color per pixel so tiles
// can be told apart after cutting.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 5), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestCutProducesRowMajorCells(t *testing.T) {
	slices, err := Cut(gradientImage(40, 40), 16)
	require.NoError(t, err)
	require.Len(t, slices, 16)

	i := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, Cell{Row: row, Col: col}, slices[i].Cell)
			b := slices[i].Img.Bounds()
			assert.Equal(t, 10, b.Dx())
			assert.Equal(t, 10, b.Dy())
			i++
		}
	}

	// Spot-check pixel provenance: tile (1,2) starts at source (20,10).
	src := gradientImage(40, 40)
	tile := slices[1*4+2].Img
	assert.Equal(t, src.RGBAAt(20, 10), tile.RGBAAt(0, 0))
	assert.Equal(t, src.RGBAAt(29, 19), tile.RGBAAt(9, 9))
}

func TestCutRejectsNonSquareCount(t *testing.T) {
	_, err := Cut(gradientImage(40, 40), 6)
	require.ErrorIs(t, err, puzzle.ErrInvalidTileCount)
}

func TestCutRejectsTilesBelowBorderWidth(t *testing.T) {
	// 16 tiles from a 20x20 image would be 5x5, below the border strip.
	_, err := Cut(gradientImage(20, 20), 16)
	require.ErrorIs(t, err, puzzle.ErrUnreadableTile)
}

func TestShuffleIsReproducibleAndPure(t *testing.T) {
	slices, err := Cut(gradientImage(40, 40), 16)
	require.NoError(t, err)

	a := Shuffle(slices, rand.New(rand.NewSource(99)))
	b := Shuffle(slices, rand.New(rand.NewSource(99)))
	c := Shuffle(slices, rand.New(rand.NewSource(100)))

	cells := func(s []Slice) []Cell {
		out := make([]Cell, len(s))
		for i := range s {
			out[i] = s[i].Cell
		}
		return out
	}
	assert.Equal(t, cells(a), cells(b), "same seed, same order")
	assert.NotEqual(t, cells(a), cells(c), "different seed, different order")

	// The input ordering is untouched.
	assert.Equal(t, Cell{Row: 0, Col: 0}, slices[0].Cell)
	assert.ElementsMatch(t, cells(slices), cells(a))
}
