package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's head after a move. Walls are checked first.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return types.WallCollision
	}
	if snake.HitsSelf() {
		return types.SelfCollision
	}
	return types.NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return cm.grid.IsWall(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is a free interior tile
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Contains(pos)
}
