// Package config loads the game settings from defaults, a YAML file and the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Defaults give a 37x12 board at 3 ticks per second.
const (
	DefaultCanvasWidth    = 1200
	DefaultCanvasHeight   = 400
	DefaultTileSize       = 32
	DefaultTicksPerSecond = 3
	DefaultScoresFile     = "data/scores.json"
	DefaultQTableFile     = "data/qtable.json"
)

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Canvas         Canvas `yaml:"canvas"`
	Columns        int    `yaml:"columns"`
	Rows           int    `yaml:"rows"`
	TileSize       int    `yaml:"tile-size"`
	TicksPerSecond int    `yaml:"ticks-per-second"`
	Seed           uint64 `yaml:"seed"`
	PlayerID       string `yaml:"player-id"`
	ScoresFile     string `yaml:"scores-file"`
	QTableFile     string `yaml:"qtable-file"`
}

func Default() Config {
	return Config{
		Canvas:         Canvas{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		TileSize:       DefaultTileSize,
		TicksPerSecond: DefaultTicksPerSecond,
		ScoresFile:     DefaultScoresFile,
		QTableFile:     DefaultQTableFile,
	}
}

// Load starts from Default, overlays the YAML file at path (a missing file is fine),
// then the variables from envFile (if present) and the process environment.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, errors.Wrapf(err, "failed to read %s", path)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "failed to parse %s", path)
			}
		}
	}

	if envFile != "" {
		// Load never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return cfg, errors.Wrapf(err, "failed to load %s", envFile)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_COLUMNS", &c.Columns},
		{"SNAKE_ROWS", &c.Rows},
		{"SNAKE_TILE_SIZE", &c.TileSize},
		{"SNAKE_TICKS_PER_SECOND", &c.TicksPerSecond},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", v.key)
		}
		*v.dst = n
	}

	if raw := os.Getenv("SNAKE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid SNAKE_SEED")
		}
		c.Seed = seed
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"SNAKE_PLAYER_ID", &c.PlayerID},
		{"SNAKE_SCORES_FILE", &c.ScoresFile},
		{"SNAKE_QTABLE_FILE", &c.QTableFile},
	}
	for _, v := range strs {
		if raw, ok := os.LookupEnv(v.key); ok {
			*v.dst = raw
		}
	}
	return nil
}

// Grid returns the configured tile grid. Columns and rows left at zero come from
// the canvas.
func (c Config) Grid() (types.Grid, error) {
	columns, rows := c.Columns, c.Rows
	if columns == 0 || rows == 0 {
		canvas, err := types.GridFromCanvas(c.Canvas.Width, c.Canvas.Height, c.TileSize)
		if err != nil {
			return types.Grid{}, errors.Wrap(err, "canvas")
		}
		if columns == 0 {
			columns = canvas.Columns()
		}
		if rows == 0 {
			rows = canvas.Rows()
		}
	}
	grid, err := types.NewGrid(columns, rows, c.TileSize)
	if err != nil {
		return types.Grid{}, err
	}
	return grid, grid.Playable()
}

func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return errors.Errorf("tile-size must be positive, got %d", c.TileSize)
	}
	if c.TicksPerSecond <= 0 {
		return errors.Errorf("ticks-per-second must be positive, got %d", c.TicksPerSecond)
	}
	if _, err := c.Grid(); err != nil {
		return errors.Wrap(err, "invalid grid")
	}
	return nil
}

// Engine returns the engine configuration. Callbacks and the random source are
// left for the caller to fill in. An invalid grid is passed through as 0x0 and
// rejected by game.NewEngine.
func (c Config) Engine() game.Config {
	var columns, rows int
	if grid, err := c.Grid(); err == nil {
		columns, rows = grid.Columns(), grid.Rows()
	}
	return game.Config{
		Columns:        columns,
		Rows:           rows,
		TileSize:       c.TileSize,
		TicksPerSecond: c.TicksPerSecond,
		PlayerID:       c.PlayerID,
	}
}
