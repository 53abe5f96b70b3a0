package puzzle

import (
	"fmt"
	"math"
)

// Reconstruct runs the greedy assembly: the detected corner tile seeds cell
// (0,0), then cells are filled in row-major order with the unused tile whose
// average cost against its already-placed left and top neighbors is lowest.
// Ties go to the lowest id. The result is deterministic and locally optimal;
// an early placement can force a worse arrangement later, which is accepted
// behavior for this solver.
func Reconstruct(st *Store) *Grid {
	n := st.Len()
	side := st.Side()
	cm := newCostMatrix(st)

	start := topLeftCorner(cm)
	fmt.Printf("[%s] corner tile: %s\n", st.method, st.tiles[start].Name)

	g := NewGrid(side)
	used := make([]bool, n)
	g.Cells[0][0] = start
	used[start] = true

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if r == 0 && c == 0 {
				continue
			}
			best := -1
			bestCost := math.Inf(1)
			for id := 0; id < n; id++ {
				if used[id] {
					continue
				}
				var sum float64
				terms := 0
				if c > 0 {
					sum += cm.at(g.Cells[r][c-1], id, Horizontal)
					terms++
				}
				if r > 0 {
					sum += cm.at(g.Cells[r-1][c], id, Vertical)
					terms++
				}
				if avg := sum / float64(terms); avg < bestCost {
					bestCost = avg
					best = id
				}
			}
			if best < 0 {
				// Unreachable while the unused set is non-empty.
				for id := 0; id < n; id++ {
					if !used[id] {
						best = id
						break
					}
				}
			}
			g.Cells[r][c] = best
			used[best] = true
		}
	}
	return g
}

// BaselineGrid places tiles in store enumeration order, row-major, without
// evaluating any cost. It is the control the scoring methods are compared
// against.
func BaselineGrid(st *Store) *Grid {
	side := st.Side()
	g := NewGrid(side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			g.Cells[r][c] = r*side + c
		}
	}
	return g
}
