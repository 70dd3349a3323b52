package game

import (
	"snake-arcade/game/types"
)

// Snapshot is a copy of the engine state. Changing it never affects the engine.
// HasFood is false once a run ended because no tile was left for food.
type Snapshot struct {
	RunID     string
	Grid      types.Grid
	Snake     []types.Point
	Food      types.Point
	HasFood   bool
	Score     int
	HighScore int
	State     types.GameState
	Direction types.Direction
	Cause     types.CollisionType
	Ticks     int
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		RunID:     e.UUID,
		Grid:      e.grid,
		Snake:     e.snake.Positions(),
		Food:      e.foodMgr.GetFood(),
		HasFood:   e.foodMgr.HasFood(),
		Score:     e.stateMgr.GetScore(),
		HighScore: e.stateMgr.GetHighScore(),
		State:     e.stateMgr.GetState(),
		Direction: e.snake.Direction,
		Cause:     e.stateMgr.GetCause(),
		Ticks:     e.ticks,
	}
}

func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

func (s Snapshot) Len() int {
	return len(s.Snake)
}

// Occupied reports whether p holds a snake segment.
func (s Snapshot) Occupied(p types.Point) bool {
	for _, part := range s.Snake {
		if part == p {
			return true
		}
	}
	return false
}
