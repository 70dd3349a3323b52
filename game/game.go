package game

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

const DefaultTicksPerSecond = 3

type (
	ScoreSink     = manager.ScoreSink
	ScoreSinkFunc = manager.ScoreSinkFunc
)

// Config is everything an Engine is built from.
type Config struct {
	Columns        int
	Rows           int
	TileSize       int
	TicksPerSecond int

	// Rand drives food placement. A time-seeded source is used when nil.
	Rand types.Rand
	// Sink hears the final score once per run.
	Sink ScoreSink
	// OnScoreChange is called with every new score, including the 0 set by Reset.
	OnScoreChange func(score int)
	PlayerID      string
	Log           *log.Logger
}

// Engine owns the snake, the food and the score of a single-player game. It has no
// timer of its own: a driver calls Tick at a fixed rate. Engine is not safe for
// concurrent use.
type Engine struct {
	UUID           string
	grid           types.Grid
	ticksPerSecond int
	snake          *entity.Snake
	ticks          int
	playerID       string
	collisionMgr   *manager.CollisionManager
	foodMgr        *manager.FoodManager
	stateMgr       *manager.StateManager
	log            *log.Logger
}

// NewEngine validates the grid and returns an engine in the NotStarted state.
func NewEngine(cfg Config) (*Engine, error) {
	grid, err := types.NewGrid(cfg.Columns, cfg.Rows, cfg.TileSize)
	if err != nil {
		return nil, err
	}
	if err := grid.Playable(); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	ticksPerSecond := cfg.TicksPerSecond
	if ticksPerSecond <= 0 {
		ticksPerSecond = DefaultTicksPerSecond
	}
	logger := cfg.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	collisionMgr := manager.NewCollisionManager(grid)
	e := &Engine{
		grid:           grid,
		ticksPerSecond: ticksPerSecond,
		playerID:       cfg.PlayerID,
		collisionMgr:   collisionMgr,
		foodMgr:        manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:       manager.NewStateManager(cfg.Sink, cfg.OnScoreChange),
		log:            logger,
	}
	e.Reset()
	return e, nil
}

// Reset puts a one-segment snake on the center tile, clears the score and places
// food. It can be called from any state and abandons the current run.
func (e *Engine) Reset() {
	e.UUID = uuid.New().String()
	e.snake = entity.NewSnake(e.grid.Center())
	e.ticks = 0
	e.stateMgr.Reset()
	if _, err := e.foodMgr.GenerateFood(e.snake); err != nil {
		e.log.Printf("run %s: %v", e.UUID, err)
		e.end(types.BoardFull)
		return
	}
	e.log.Printf("run %s ready on %dx%d grid", e.UUID, e.grid.Columns(), e.grid.Rows())
}

// SetDirection steers the snake. The first valid direction starts the run. Changes
// along the current axis of motion, None, and calls after game over are ignored.
// Several calls between ticks overwrite each other.
func (e *Engine) SetDirection(dir types.Direction) {
	if dir == types.None {
		return
	}
	switch e.stateMgr.GetState() {
	case types.NotStarted:
		if e.snake.SetDirection(dir) && e.stateMgr.Start() {
			e.log.Printf("run %s started heading %s", e.UUID, dir)
		}
	case types.Running:
		e.snake.SetDirection(dir)
	}
}

// Tick advances a running game by one step.
func (e *Engine) Tick() {
	if e.stateMgr.GetState() != types.Running {
		return
	}
	e.ticks++

	oldTail := e.snake.Move()
	if cause := e.collisionMgr.CheckCollision(e.snake); cause != types.NoCollision {
		e.end(cause)
		return
	}

	if e.foodMgr.HasFood() && e.collisionMgr.IsFoodCollision(e.snake.GetHead(), e.foodMgr.GetFood()) {
		e.snake.Grow(oldTail)
		e.stateMgr.AddPoint()
		if _, err := e.foodMgr.GenerateFood(e.snake); err != nil {
			e.log.Printf("run %s: %v", e.UUID, err)
			e.end(types.BoardFull)
		}
	}
}

func (e *Engine) end(cause types.CollisionType) {
	if e.stateMgr.End(cause, e.playerID) {
		e.log.Printf("run %s over: %s collision, score %d after %d ticks",
			e.UUID, cause, e.stateMgr.GetScore(), e.ticks)
	}
}

// SetPlayerID sets the identifier handed to the score sink. Empty means anonymous.
func (e *Engine) SetPlayerID(id string) {
	e.playerID = id
}

func (e *Engine) PlayerID() string {
	return e.playerID
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

func (e *Engine) State() types.GameState {
	return e.stateMgr.GetState()
}

func (e *Engine) Score() int {
	return e.stateMgr.GetScore()
}

// TickInterval is the period at which a driver should call Tick.
func (e *Engine) TickInterval() time.Duration {
	return time.Second / time.Duration(e.ticksPerSecond)
}
