// Package project records the outcome of a slicing and reconstruction run.
package project

import (
	"encoding/json"
	"os"
	"time"
)

// File is the JSON run manifest written next to the reconstruction output.
type File struct {
	Version   int       `json:"version"`
	Image     string    `json:"image"`
	TileCount int       `json:"tile_count"`
	Side      int       `json:"side"`
	Seed      int64     `json:"seed"`
	TilesDir  string    `json:"tiles_dir"`
	OutputDir string    `json:"output_dir"`
	Created   time.Time `json:"created"`
	Modified  time.Time `json:"modified"`

	// One entry per reconstruction method; a failed method is recorded
	// here without affecting the others.
	Methods []MethodResult `json:"methods"`
}

// MethodResult is the per-method outcome of a run.
type MethodResult struct {
	Method    string  `json:"method"`
	OK        bool    `json:"ok"`
	Error     string  `json:"error,omitempty"`
	ImagePath string  `json:"reconstructed_image,omitempty"`
	MapPath   string  `json:"reconstruction_map,omitempty"`
	Cost      float64 `json:"total_border_cost,omitempty"`
}

// New creates a manifest for a fresh run.
func New(imagePath string, tileCount, side int, seed int64) *File {
	now := time.Now()
	return &File{
		Version:   1,
		Image:     imagePath,
		TileCount: tileCount,
		Side:      side,
		Seed:      seed,
		Created:   now,
		Modified:  now,
	}
}

// Record appends one method's outcome.
func (f *File) Record(r MethodResult) {
	f.Methods = append(f.Methods, r)
	f.Modified = time.Now()
}

// Load reads a manifest from a file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Save writes the manifest to a file.
func (f *File) Save(path string) error {
	f.Modified = time.Now()

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
