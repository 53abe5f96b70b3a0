package puzzle

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgedTile builds a black tile with distinct solid colors on its outermost
// left and right columns.
func edgedTile(left, right color.RGBA) *image.RGBA {
	img := solidTile(color.RGBA{A: 255}, 10, 10)
	for y := 0; y < 10; y++ {
		img.SetRGBA(0, y, left)
		img.SetRGBA(9, y, right)
	}
	return img
}

func TestCostAsymmetryIsPreserved(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	black := color.RGBA{A: 255}

	supply := []Input{
		{Img: edgedTile(black, red)},   // tile 0: right edge red
		{Img: edgedTile(blue, green)},  // tile 1: left edge blue, right edge green
		{Img: solidTile(black, 10, 10)},
		{Img: solidTile(black, 10, 10)},
	}
	st, err := NewStore(supply, 4, Raw)
	require.NoError(t, err)

	// cost(0,1) compares red against blue; cost(1,0) compares green
	// against black. The engine must not symmetrize the two.
	ab := st.Cost(0, 1, Horizontal)
	ba := st.Cost(1, 0, Horizontal)
	assert.InDelta(t, 255*math.Sqrt2, ab, 1e-9)
	assert.InDelta(t, 255, ba, 1e-9)
	assert.NotEqual(t, ab, ba)
}

func TestCostIdenticalTilesIsZero(t *testing.T) {
	for _, m := range []Method{Gradient, Color, Raw} {
		t.Run(m.String(), func(t *testing.T) {
			supply := noiseTiles(1, 10, 10, 7)
			clone := func() Input { return supply[0] }
			st, err := NewStore([]Input{clone(), clone(), clone(), clone()}, 4, m)
			require.NoError(t, err)

			for _, dir := range []Direction{Horizontal, Vertical} {
				assert.Zero(t, st.Cost(0, 1, dir))
				assert.Zero(t, st.Cost(3, 2, dir))
			}
		})
	}
}

func TestCostFiniteNonNegative(t *testing.T) {
	for _, m := range []Method{Gradient, Color, Raw} {
		st, err := NewStore(noiseTiles(9, 10, 10, 11), 9, m)
		require.NoError(t, err)

		for a := 0; a < st.Len(); a++ {
			for b := 0; b < st.Len(); b++ {
				if a == b {
					continue
				}
				for _, dir := range []Direction{Horizontal, Vertical} {
					c := st.Cost(a, b, dir)
					assert.False(t, math.IsNaN(c) || math.IsInf(c, 0), "method %s", m)
					assert.GreaterOrEqual(t, c, 0.0, "method %s", m)
				}
			}
		}
	}
}

func TestCostMatrixMatchesDirectCost(t *testing.T) {
	st, err := NewStore(noiseTiles(9, 10, 10, 13), 9, Gradient)
	require.NoError(t, err)

	cm := newCostMatrix(st)
	for a := 0; a < st.Len(); a++ {
		for b := 0; b < st.Len(); b++ {
			if a == b {
				continue
			}
			assert.Equal(t, st.Cost(a, b, Horizontal), cm.at(a, b, Horizontal))
			assert.Equal(t, st.Cost(a, b, Vertical), cm.at(a, b, Vertical))
		}
	}
}
