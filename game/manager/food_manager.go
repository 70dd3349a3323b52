package manager

import (
	"github.com/pkg/errors"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// maxDrawsPerTile bounds rejection sampling before falling back to a scan of free tiles.
const maxDrawsPerTile = 4

type FoodManager struct {
	grid         types.Grid
	rng          types.Rand
	food         types.Point
	placed       bool
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random interior tile that the snake does not occupy
// and makes it the current food. Random draws are rejected while they land on the
// snake; after too many rejections the free tiles are listed and one is picked.
// When no tile is free the food is removed from the board.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	free := fm.grid.InteriorSize() - snake.Len()
	if free <= 0 {
		return fm.clear(snake)
	}

	for i := 0; i < maxDrawsPerTile*fm.grid.InteriorSize(); i++ {
		food, err := fm.grid.RandomInterior(fm.rng)
		if err != nil {
			return types.Point{}, err
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			fm.SetFood(food)
			return food, nil
		}
	}

	candidates := make([]types.Point, 0, free)
	for _, p := range fm.grid.Interior() {
		if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return fm.clear(snake)
	}
	fm.SetFood(candidates[fm.rng.Intn(len(candidates))])
	return fm.food, nil
}

func (fm *FoodManager) clear(snake *entity.Snake) (types.Point, error) {
	fm.food, fm.placed = types.Point{}, false
	return types.Point{}, errors.Wrapf(types.ErrBoardFull, "snake covers %d tiles", snake.Len())
}

// GetFood returns the food tile. It is only meaningful while HasFood is true.
func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

func (fm *FoodManager) HasFood() bool {
	return fm.placed
}

// SetFood moves the food to pos without any validation.
func (fm *FoodManager) SetFood(pos types.Point) {
	fm.food, fm.placed = pos, true
}
