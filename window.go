package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/autopilot"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/scoreboard"
)

var keyDirections = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
}

// runWindow drives the engine from the raylib frame loop. Input, ticking and
// drawing all happen on this goroutine, so the engine needs no locking.
func runWindow(engine *game.Engine, board *scoreboard.Scoreboard, pilot *autopilot.Pilot) {
	renderer := NewRenderer(engine.Grid())

	rl.InitWindow(renderer.Width(), renderer.Height(), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	lastUpdate := time.Now()
	updateInterval := engine.TickInterval()

	for !rl.WindowShouldClose() {
		handleInput(engine)

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= updateInterval {
			if pilot != nil && engine.State() != types.GameOver {
				engine.SetDirection(pilot.Decide(engine.Snapshot()))
			}
			engine.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(engine.Snapshot(), engine.PlayerID(), board)
	}
}

func handleInput(engine *game.Engine) {
	for _, kd := range keyDirections {
		if rl.IsKeyPressed(kd.key) {
			engine.SetDirection(kd.dir)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		engine.Reset()
	}
}
