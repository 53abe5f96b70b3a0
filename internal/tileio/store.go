package tileio

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"kintsugi/internal/puzzle"
	"kintsugi/pkg/imgutil"
)

// SaveTiles writes each slice as <base>_slice_NNN.png in dir, in the order
// given, plus a <base>_order.txt file recording the true cell of every file.
// Returns the written tile filenames.
func SaveTiles(dir, base string, slices []Slice) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tile directory: %w", err)
	}

	names := make([]string, len(slices))
	for i, s := range slices {
		names[i] = fmt.Sprintf("%s_slice_%03d.png", base, i)
		file, err := os.Create(filepath.Join(dir, names[i]))
		if err != nil {
			return nil, fmt.Errorf("failed to create tile file: %w", err)
		}
		if err := png.Encode(file, s.Img); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to encode %s: %w", names[i], err)
		}
		if err := file.Close(); err != nil {
			return nil, err
		}
	}

	if err := writeOrderFile(dir, base, slices, names); err != nil {
		return nil, err
	}
	return names, nil
}

// writeOrderFile records the ground-truth cell of every saved tile so a
// reconstruction can be checked against the original layout.
func writeOrderFile(dir, base string, slices []Slice, names []string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Recomposition key for: %s\n", base)
	fmt.Fprintf(&sb, "Tiles: %d (saved in shuffled order)\n", len(slices))
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	sb.WriteString("FILE | TRUE CELL (row,col)\n")
	for i, s := range slices {
		fmt.Fprintf(&sb, "%s -> (%d,%d)\n", names[i], s.Cell.Row, s.Cell.Col)
	}

	path := filepath.Join(dir, base+"_order.txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write order file: %w", err)
	}
	return nil
}

// LoadTiles reads the <base>_slice_*.png files from dir, ordered by slice
// index, and returns them as the engine's tile supply.
func LoadTiles(dir, base string) ([]puzzle.Input, error) {
	pattern := filepath.Join(dir, base+"_slice_*.png")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no tiles matching %s", puzzle.ErrMissingTiles, pattern)
	}
	sortBySliceIndex(files)

	supply := make([]puzzle.Input, 0, len(files))
	for _, path := range files {
		img, err := imgutil.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", puzzle.ErrUnreadableTile, err)
		}
		supply = append(supply, puzzle.Input{Name: filepath.Base(path), Img: img})
	}
	return supply, nil
}

// sortBySliceIndex orders tile paths by their numeric slice index, falling
// back to a plain lexical sort for names outside the expected pattern.
func sortBySliceIndex(files []string) {
	idx := func(path string) (int, bool) {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		_, tail, ok := strings.Cut(name, "_slice_")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(tail)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	sort.Slice(files, func(i, j int) bool {
		ni, iok := idx(files[i])
		nj, jok := idx(files[j])
		if iok && jok {
			return ni < nj
		}
		return files[i] < files[j]
	})
}
