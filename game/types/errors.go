package types

import "github.com/pkg/errors"

var (
	// ErrInvalidGrid is returned when a grid has no interior to play on.
	ErrInvalidGrid = errors.New("grid too small to have an interior")
	// ErrBoardFull is returned when no free interior tile is left for food.
	ErrBoardFull = errors.New("no free interior tile for food")
)
