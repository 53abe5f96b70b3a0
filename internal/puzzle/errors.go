package puzzle

import "errors"

var (
	// ErrInvalidTileCount indicates the requested tile count is not a
	// perfect square, so no square grid can be formed.
	ErrInvalidTileCount = errors.New("puzzle: tile count is not a perfect square")
	// ErrMissingTiles indicates the supplied tiles do not match the
	// expected count.
	ErrMissingTiles = errors.New("puzzle: supplied tiles do not match expected count")
	// ErrUnreadableTile indicates a tile image is missing, malformed, or
	// smaller than the border strip width.
	ErrUnreadableTile = errors.New("puzzle: unreadable tile")
	// ErrUnknownMethod indicates an unrecognized reconstruction method.
	ErrUnknownMethod = errors.New("puzzle: unknown reconstruction method")
)
