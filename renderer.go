package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/scoreboard"
)

const (
	borderPadding = 10 // Padding around game area
	panelWidth    = 360
	minHeight     = 360
	historyRows   = 12
)

var (
	backgroundLeft  = rl.Color{R: 107, G: 33, B: 168, A: 255}
	backgroundRight = rl.Color{R: 22, G: 163, B: 74, A: 255}
	wallColor       = rl.Color{R: 70, G: 70, B: 80, A: 255}
	bodyColor       = rl.Color{R: 60, G: 180, B: 100, A: 255}
	headColor       = rl.Color{R: 80, G: 220, B: 120, A: 255}
	tailColor       = rl.Color{R: 40, G: 130, B: 70, A: 255}
	foodColor       = rl.Color{R: 230, G: 70, B: 70, A: 255}
)

// Renderer draws snapshots: the board on the left, score and history on the right.
type Renderer struct {
	grid     types.Grid
	cellSize int32
	boardW   int32
	boardH   int32
	width    int32
	height   int32
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{
		grid:     grid,
		cellSize: int32(grid.TileSize()),
	}
	r.boardW = r.cellSize * int32(grid.Columns())
	r.boardH = r.cellSize * int32(grid.Rows())
	r.width = r.boardW + panelWidth + borderPadding*3
	r.height = max(r.boardH+borderPadding*2, minHeight)
	return r
}

func (r *Renderer) Width() int32  { return r.width }
func (r *Renderer) Height() int32 { return r.height }

func (r *Renderer) Draw(snap game.Snapshot, player string, board *scoreboard.Scoreboard) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangleGradientH(borderPadding, borderPadding, r.boardW, r.boardH, backgroundLeft, backgroundRight)
	r.drawWalls()
	if snap.HasFood {
		r.drawTile(snap.Food, foodColor)
	}
	r.drawSnake(snap)
	r.drawOverlay(snap)
	r.drawPanel(snap, player, board)
}

func (r *Renderer) tileOrigin(p types.Point) (int32, int32) {
	x, y := r.grid.ToPixels(p)
	return borderPadding + int32(x), borderPadding + int32(y)
}

func (r *Renderer) drawTile(p types.Point, color rl.Color) {
	x, y := r.tileOrigin(p)
	rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
}

func (r *Renderer) drawWalls() {
	cols, rows := r.grid.Columns(), r.grid.Rows()
	for x := 0; x < cols; x++ {
		r.drawTile(types.Point{X: x, Y: 0}, wallColor)
		r.drawTile(types.Point{X: x, Y: rows - 1}, wallColor)
	}
	for y := 1; y < rows-1; y++ {
		r.drawTile(types.Point{X: 0, Y: y}, wallColor)
		r.drawTile(types.Point{X: cols - 1, Y: y}, wallColor)
	}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	// Draw from the tail so the head ends up on top.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		switch {
		case i == 0:
			r.drawTile(p, headColor)
			r.drawHeading(p, snap.Direction)
		case i == len(snap.Snake)-1:
			r.drawTile(p, tailColor)
		default:
			r.drawTile(p, bodyColor)
		}
	}
}

// drawHeading puts a direction indicator on the head tile.
func (r *Renderer) drawHeading(p types.Point, dir types.Direction) {
	headX, headY := r.tileOrigin(p)
	cell := float32(r.cellSize)
	x, y := float32(headX), float32(headY)
	half := cell / 2

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: x + cell, Y: y + half},
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x + half, Y: y + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + half, Y: y + cell},
			rl.Vector2{X: x + half, Y: y},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y + cell},
			rl.Vector2{X: x + cell, Y: y + half},
			rl.Vector2{X: x, Y: y + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + cell, Y: y + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawOverlay(snap game.Snapshot) {
	centerX := borderPadding + r.boardW/2
	centerY := borderPadding + r.boardH/2

	switch snap.State {
	case types.NotStarted:
		drawCentered("Press an arrow key to start", centerX, centerY, 20, rl.Fade(rl.LightGray, 0.8))
	case types.GameOver:
		drawCentered("Game Over", centerX, centerY-30, 32, rl.White)
		drawCentered(fmt.Sprintf("Score: %d (%s)", snap.Score, snap.Cause), centerX, centerY+10, 20, rl.White)
		drawCentered("Press SPACE to restart", centerX, centerY+40, 16, rl.LightGray)
	}
}

func (r *Renderer) drawPanel(snap game.Snapshot, player string, board *scoreboard.Scoreboard) {
	x := r.boardW + borderPadding*2
	y := int32(borderPadding)
	rl.DrawRectangle(x, y, panelWidth, r.height-borderPadding*2, rl.DarkGray)

	x += 10
	y += 10
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), x, y, 20, rl.White)
	y += 26
	rl.DrawText(fmt.Sprintf("Session best: %d", snap.HighScore), x, y, 16, rl.Green)
	y += 22
	if player == "" {
		player = "not connected"
	}
	rl.DrawText("Player: "+shorten(player, 24), x, y, 16, rl.LightGray)
	y += 30

	rl.DrawText("History Scores", x, y, 20, rl.White)
	y += 26
	records := board.Records()
	if len(records) == 0 {
		rl.DrawText("No scores submitted yet.", x, y, 16, rl.LightGray)
		return
	}
	for i, record := range records {
		if i == historyRows {
			break
		}
		line := fmt.Sprintf("%2d. %-14s %4d  %s", i+1, shorten(record.Player, 14), record.Score,
			record.Date.Local().Format("01-02 15:04"))
		rl.DrawText(line, x, y, 14, rl.RayWhite)
		y += 18
	}
	y += 8
	rl.DrawText(fmt.Sprintf("Games: %d  Best: %d  Avg: %.1f",
		board.GetGamesPlayed(), board.GetHighScore(), board.GetAverageScore()), x, y, 14, rl.Purple)
}

func drawCentered(text string, centerX, centerY, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, centerX-width/2, centerY-fontSize/2, fontSize, color)
}

// shorten keeps both ends of long wallet addresses: 0x12~cdef.
func shorten(s string, limit int) string {
	if len(s) <= limit || limit < 5 {
		return s
	}
	keep := (limit - 1) / 2
	return s[:keep] + "~" + s[len(s)-(limit-1-keep):]
}
