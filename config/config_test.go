package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	grid, err := cfg.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if grid.Columns() != 37 || grid.Rows() != 12 {
		t.Errorf("expected 37x12 grid from the default canvas, got %dx%d", grid.Columns(), grid.Rows())
	}
	if cfg.TicksPerSecond != DefaultTicksPerSecond || cfg.ScoresFile != DefaultScoresFile {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
columns: 20
rows: 15
tile-size: 16
ticks-per-second: 8
seed: 1234
player-id: "0xfeed"
scores-file: /tmp/scores.json
`)
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	engine := cfg.Engine()
	if engine.Columns != 20 || engine.Rows != 15 {
		t.Errorf("expected 20x15, got %dx%d", engine.Columns, engine.Rows)
	}
	if engine.TileSize != 16 || engine.TicksPerSecond != 8 || engine.PlayerID != "0xfeed" {
		t.Errorf("unexpected engine config %+v", engine)
	}
	if cfg.Seed != 1234 || cfg.ScoresFile != "/tmp/scores.json" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.QTableFile != DefaultQTableFile {
		t.Errorf("expected unset keys to keep defaults, got %q", cfg.QTableFile)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "ticks-per-second: 8\nplayer-id: file\n")
	t.Setenv("SNAKE_TICKS_PER_SECOND", "12")
	t.Setenv("SNAKE_PLAYER_ID", "env")
	t.Setenv("SNAKE_SEED", "77")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TicksPerSecond != 12 || cfg.PlayerID != "env" || cfg.Seed != 77 {
		t.Errorf("environment did not win: %+v", cfg)
	}
}

func TestDotEnvFillsUnsetVariables(t *testing.T) {
	envFile := writeFile(t, ".env", "SNAKE_ROWS=9\n")
	// Register the restore, then unset so godotenv is allowed to fill the variable in.
	t.Setenv("SNAKE_ROWS", "")
	os.Unsetenv("SNAKE_ROWS")

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if engine := cfg.Engine(); engine.Rows != 9 {
		t.Errorf("expected rows from .env, got %d", engine.Rows)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "columns: [",
		"tiny grid":  "columns: 2\nrows: 10\n",
		"no room":    "columns: 3\nrows: 3\n",
		"zero tile":  "tile-size: 0\n",
		"zero speed": "ticks-per-second: -1\n",
	}
	for name, content := range tests {
		path := writeFile(t, "config.yaml", content)
		if _, err := Load(path, ""); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	t.Setenv("SNAKE_TILE_SIZE", "big")
	if _, err := Load("", ""); err == nil {
		t.Error("expected an error for a non-numeric SNAKE_TILE_SIZE")
	}
}

func TestValidateAgreesWithEngine(t *testing.T) {
	for _, size := range [][2]int{{3, 3}, {3, 4}, {4, 3}, {10, 10}} {
		cfg := Default()
		cfg.Columns, cfg.Rows = size[0], size[1]

		validateErr := cfg.Validate()
		_, engineErr := game.NewEngine(cfg.Engine())
		if (validateErr == nil) != (engineErr == nil) {
			t.Errorf("%dx%d: Validate returned %v but NewEngine returned %v", size[0], size[1], validateErr, engineErr)
		}
		if validateErr != nil && !errors.Is(validateErr, types.ErrInvalidGrid) {
			t.Errorf("%dx%d: expected ErrInvalidGrid, got %v", size[0], size[1], validateErr)
		}
	}
}
