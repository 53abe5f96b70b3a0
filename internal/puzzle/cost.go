package puzzle

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Cost scores how badly tile a's trailing edge fits against tile b's leading
// edge in the given direction: a's rightmost column against b's leftmost
// column for Horizontal, a's bottom row against b's top row for Vertical.
// Lower is better; zero is a perfect match.
//
// Cost(a, b, d) and Cost(b, a, d) compare different edge pairs and are not
// interchangeable.
func (st *Store) Cost(a, b int, dir Direction) float64 {
	fa, fb := st.tiles[a].Borders, st.tiles[b].Borders
	var ea, eb []float64
	if dir == Horizontal {
		ea = fa.Right.Col(fa.Right.W - 1)
		eb = fb.Left.Col(0)
	} else {
		ea = fa.Bottom.Row(fa.Bottom.H - 1)
		eb = fb.Top.Row(0)
	}
	if st.method == Gradient {
		return meanAbsDiff(ea, eb)
	}
	return meanVecDist(ea, eb, fa.Top.Ch)
}

// meanAbsDiff is the mean absolute difference between two single-channel
// feature sequences.
func meanAbsDiff(a, b []float64) float64 {
	d := make([]float64, len(a))
	floats.SubTo(d, a, b)
	for i := range d {
		d[i] = math.Abs(d[i])
	}
	return stat.Mean(d, nil)
}

// meanVecDist is the mean Euclidean distance between two sequences of
// ch-channel vectors.
func meanVecDist(a, b []float64, ch int) float64 {
	d := make([]float64, 0, len(a)/ch)
	for i := 0; i < len(a); i += ch {
		d = append(d, floats.Distance(a[i:i+ch], b[i:i+ch], 2))
	}
	return stat.Mean(d, nil)
}

// costMatrix caches every pairwise cost so corner detection and assembly
// never score the same pair twice.
type costMatrix struct {
	n    int
	h, v []float64 // h[a*n+b] = Cost(a, b, Horizontal)
}

func (cm *costMatrix) at(a, b int, dir Direction) float64 {
	if dir == Horizontal {
		return cm.h[a*cm.n+b]
	}
	return cm.v[a*cm.n+b]
}

// newCostMatrix precomputes all N²·2 pairwise costs. Rows are filled in
// parallel; each worker writes only its own row indices, so the result is
// identical to a sequential fill.
func newCostMatrix(st *Store) *costMatrix {
	n := st.Len()
	cm := &costMatrix{n: n, h: make([]float64, n*n), v: make([]float64, n*n)}
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for a := 0; a < n; a++ {
		a := a
		g.Go(func() error {
			for b := 0; b < n; b++ {
				if a == b {
					continue
				}
				cm.h[a*n+b] = st.Cost(a, b, Horizontal)
				cm.v[a*n+b] = st.Cost(a, b, Vertical)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error
	return cm
}

// GridCost sums the cost of every interior adjacency of a completed grid.
// Comparable only between grids scored with the same method.
func (st *Store) GridCost(g *Grid) float64 {
	var total float64
	for r := 0; r < g.Side; r++ {
		for c := 0; c < g.Side; c++ {
			if c+1 < g.Side {
				total += st.Cost(g.Cells[r][c], g.Cells[r][c+1], Horizontal)
			}
			if r+1 < g.Side {
				total += st.Cost(g.Cells[r][c], g.Cells[r+1][c], Vertical)
			}
		}
	}
	return total
}
