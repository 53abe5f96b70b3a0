package tileio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kintsugi/internal/puzzle"
)

// supplyFrom converts cut slices into the engine's input form, in the order
// given.
func supplyFrom(slices []Slice) []puzzle.Input {
	supply := make([]puzzle.Input, len(slices))
	for i, s := range slices {
		supply[i] = puzzle.Input{Img: s.Img}
	}
	return supply
}

func TestCompositeBaselineRestoresUnshuffledImage(t *testing.T) {
	src := gradientImage(40, 40)
	slices, err := Cut(src, 16)
	require.NoError(t, err)

	st, err := puzzle.NewStore(supplyFrom(slices), 16, puzzle.Baseline)
	require.NoError(t, err)

	// Tiles were never shuffled, so placing them in load order must
	// reproduce the source image pixel for pixel.
	canvas := Composite(st, puzzle.BaselineGrid(st))
	assert.Equal(t, src.Pix, canvas.Pix)
}

func TestWriteResultFiles(t *testing.T) {
	dir := t.TempDir()
	slices, err := Cut(gradientImage(20, 20), 4)
	require.NoError(t, err)

	supply := supplyFrom(slices)
	for i := range supply {
		supply[i].Name = nameFor("pic", i)
	}
	st, err := puzzle.NewStore(supply, 4, puzzle.Color)
	require.NoError(t, err)
	grid := puzzle.Reconstruct(st)

	res, err := WriteResult(dir, "pic", st, grid)
	require.NoError(t, err)

	_, err = os.Stat(res.ImagePath)
	require.NoError(t, err)
	assert.Contains(t, res.ImagePath, "color_reconstructed.png")

	report, err := os.ReadFile(res.MapPath)
	require.NoError(t, err)
	text := string(report)
	assert.Contains(t, text, "Method: COLOR")
	assert.Contains(t, text, "Tiles: 4 (2x2 grid)")
	assert.Contains(t, text, "Total border mismatch:")
	assert.Contains(t, text, "DOMINANT COLOR | BORDER COLOR")
	for i := range supply {
		assert.Contains(t, text, nameFor("pic", i))
	}
}
