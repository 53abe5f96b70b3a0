package puzzle

import "math"

// TopLeftCorner returns the id of the tile most likely to anchor the grid's
// top-left position. A true corner tile has no real neighbor on its left or
// top, so even its best possible match on those sides scores poorly; the
// heuristic therefore picks the tile maximizing the sum of its best-case
// left and top costs. Ties go to the lowest id.
func TopLeftCorner(st *Store) int {
	return topLeftCorner(newCostMatrix(st))
}

func topLeftCorner(cm *costMatrix) int {
	best := 0
	bestScore := math.Inf(-1)
	for i := 0; i < cm.n; i++ {
		minLeft := math.Inf(1)
		minTop := math.Inf(1)
		for j := 0; j < cm.n; j++ {
			if j == i {
				continue
			}
			if c := cm.at(j, i, Horizontal); c < minLeft {
				minLeft = c
			}
			if c := cm.at(j, i, Vertical); c < minTop {
				minTop = c
			}
		}
		if score := minLeft + minTop; score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}
