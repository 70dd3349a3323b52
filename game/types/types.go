package types

// Point is a tile coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rand is the random source used for food placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// GameState is the engine's run state.
type GameState int

const (
	NotStarted GameState = iota
	Running
	GameOver
)

func (s GameState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision that ended a run
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	// BoardFull means food could not be placed anywhere.
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "unknown"
	}
}
