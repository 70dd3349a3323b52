package types

import "github.com/pkg/errors"

// MinGridSize is the smallest number of columns or rows that leaves an interior.
const MinGridSize = 3

// MinInteriorSize fits a one-segment snake next to its food.
const MinInteriorSize = 2

// Grid represents the game grid dimensions. The outermost ring of tiles is wall.
type Grid struct {
	columns  int
	rows     int
	tileSize int
}

// NewGrid builds a grid of columns x rows tiles, each tileSize pixels wide.
func NewGrid(columns, rows, tileSize int) (Grid, error) {
	if tileSize <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidGrid, "tile size %d", tileSize)
	}
	if columns < MinGridSize || rows < MinGridSize {
		return Grid{}, errors.Wrapf(ErrInvalidGrid, "%dx%d tiles", columns, rows)
	}
	return Grid{columns: columns, rows: rows, tileSize: tileSize}, nil
}

// GridFromCanvas derives the tile grid that fits on a width x height pixel canvas.
func GridFromCanvas(width, height, tileSize int) (Grid, error) {
	if tileSize <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidGrid, "tile size %d", tileSize)
	}
	return NewGrid(width/tileSize, height/tileSize, tileSize)
}

func (g Grid) Columns() int  { return g.columns }
func (g Grid) Rows() int     { return g.rows }
func (g Grid) TileSize() int { return g.tileSize }

// Contains reports whether p lies on the grid, walls included.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.columns && p.Y >= 0 && p.Y < g.rows
}

// IsWall reports whether p is on the wall ring. Points off the grid count as wall.
func (g Grid) IsWall(p Point) bool {
	return p.X <= 0 || p.X >= g.columns-1 || p.Y <= 0 || p.Y >= g.rows-1
}

// Playable returns ErrInvalidGrid when the interior cannot hold the snake and a food tile.
func (g Grid) Playable() error {
	if g.InteriorSize() < MinInteriorSize {
		return errors.Wrapf(ErrInvalidGrid, "%dx%d tiles leave no room for food", g.columns, g.rows)
	}
	return nil
}

// InteriorSize is the number of playable tiles.
func (g Grid) InteriorSize() int {
	return (g.columns - 2) * (g.rows - 2)
}

// Center returns the middle tile, which is always inside the wall ring.
func (g Grid) Center() Point {
	return Point{X: g.columns / 2, Y: g.rows / 2}
}

// RandomInterior draws a uniformly random tile inside the wall ring.
func (g Grid) RandomInterior(rng Rand) (Point, error) {
	if g.columns < MinGridSize || g.rows < MinGridSize {
		return Point{}, errors.Wrapf(ErrInvalidGrid, "%dx%d tiles", g.columns, g.rows)
	}
	return Point{
		X: 1 + rng.Intn(g.columns-2),
		Y: 1 + rng.Intn(g.rows-2),
	}, nil
}

// Interior lists every playable tile, row by row.
func (g Grid) Interior() []Point {
	points := make([]Point, 0, g.InteriorSize())
	for y := 1; y < g.rows-1; y++ {
		for x := 1; x < g.columns-1; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// ToPixels converts a tile to the pixel coordinate of its top-left corner.
func (g Grid) ToPixels(p Point) (int, int) {
	return p.X * g.tileSize, p.Y * g.tileSize
}
