// Package puzzle reconstructs a square image that was cut into equally-sized
// square tiles and shuffled. Tile borders are reduced to feature strips once at
// load time; a pairwise cost model scores how well two tiles fit edge-to-edge,
// and a greedy assembler fills the grid row by row starting from a detected
// top-left corner tile. The result is locally, not globally, optimal.
package puzzle

import (
	"fmt"
	"image"
	"math"

	"kintsugi/pkg/imgutil"
)

// BorderWidth is the width in pixels of the border strips extracted from each
// tile edge. Tiles smaller than this cannot be scored.
const BorderWidth = 10

// Direction names the adjacency being scored between two tiles.
type Direction int

const (
	// Horizontal scores a's right edge against b's left edge.
	Horizontal Direction = iota
	// Vertical scores a's bottom edge against b's top edge.
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Strip holds feature values for one border band, row-major with channels
// interleaved.
type Strip struct {
	W, H, Ch int
	Pix      []float64
}

func newStrip(w, h, ch int) *Strip {
	return &Strip{W: w, H: h, Ch: ch, Pix: make([]float64, w*h*ch)}
}

// Row returns the feature values of row y, channels interleaved. The slice
// aliases the strip's backing storage.
func (s *Strip) Row(y int) []float64 {
	off := y * s.W * s.Ch
	return s.Pix[off : off+s.W*s.Ch]
}

// Col returns the feature values of column x, channels interleaved.
func (s *Strip) Col(x int) []float64 {
	out := make([]float64, 0, s.H*s.Ch)
	for y := 0; y < s.H; y++ {
		off := (y*s.W + x) * s.Ch
		out = append(out, s.Pix[off:off+s.Ch]...)
	}
	return out
}

// BorderFeatures holds the four border strips of one tile in the
// representation produced by the active method's feature extractor.
type BorderFeatures struct {
	Top, Bottom, Left, Right *Strip
}

// Tile is one fragment of the source image. Immutable after load.
type Tile struct {
	ID      int
	Name    string
	Img     *image.RGBA
	Borders BorderFeatures
}

// Input is one decoded tile handed to the engine by the loader. Name is kept
// only for reporting; ids are assigned from supply order.
type Input struct {
	Name string
	Img  image.Image
}

// Store owns the immutable tile set and their extracted border features.
type Store struct {
	tiles        []*Tile
	method       Method
	side         int
	tileW, tileH int
}

// NewStore validates the tile supply, assigns ids in supply order, and
// extracts border features once per tile. expected is the tile count the
// caller asked for; pass 0 to accept however many tiles were supplied.
func NewStore(supply []Input, expected int, method Method) (*Store, error) {
	if _, err := ParseMethod(method.String()); err != nil {
		return nil, err
	}
	if expected <= 0 {
		expected = len(supply)
	}
	side := int(math.Sqrt(float64(expected)))
	if side*side != expected {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileCount, expected)
	}
	if len(supply) != expected {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrMissingTiles, expected, len(supply))
	}

	st := &Store{method: method, side: side}
	for id, in := range supply {
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("tile_%03d", id)
		}
		if in.Img == nil {
			return nil, fmt.Errorf("%w: %s has no image data", ErrUnreadableTile, name)
		}
		rgba := imgutil.ToRGBA(in.Img)
		w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
		if w < BorderWidth || h < BorderWidth {
			return nil, fmt.Errorf("%w: %s is %dx%d, smaller than the %dpx border strip",
				ErrUnreadableTile, name, w, h, BorderWidth)
		}
		if id == 0 {
			st.tileW, st.tileH = w, h
		} else if w != st.tileW || h != st.tileH {
			return nil, fmt.Errorf("%w: %s is %dx%d, want %dx%d",
				ErrUnreadableTile, name, w, h, st.tileW, st.tileH)
		}
		st.tiles = append(st.tiles, &Tile{
			ID:      id,
			Name:    name,
			Img:     rgba,
			Borders: extractBorders(rgba, method),
		})
	}
	return st, nil
}

// Len returns the number of tiles in the store.
func (st *Store) Len() int { return len(st.tiles) }

// Side returns the edge length of the square grid.
func (st *Store) Side() int { return st.side }

// Method returns the method the store's features were extracted for.
func (st *Store) Method() Method { return st.method }

// TileSize returns the common width and height of the stored tiles.
func (st *Store) TileSize() (w, h int) { return st.tileW, st.tileH }

// Tile returns the tile with the given id.
func (st *Store) Tile(id int) *Tile { return st.tiles[id] }

// Grid is a side×side placement of tile ids. A completed grid holds every id
// exactly once.
type Grid struct {
	Side  int
	Cells [][]int
}

// NewGrid returns an empty grid with every cell set to -1.
func NewGrid(side int) *Grid {
	cells := make([][]int, side)
	for r := range cells {
		cells[r] = make([]int, side)
		for c := range cells[r] {
			cells[r][c] = -1
		}
	}
	return &Grid{Side: side, Cells: cells}
}
