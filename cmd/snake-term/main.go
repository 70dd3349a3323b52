// Command snake-term plays snake in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"snake-arcade/config"
	"snake-arcade/driver"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/scoreboard"
)

func main() {
	configFile := flag.String("config", "config.yaml", "YAML config file path")
	envFile := flag.String("env", ".env", "dotenv file with SNAKE_* overrides")
	player := flag.String("player", "", "player id saved with scores (overrides config)")
	logFile := flag.String("log", "", "write logs to this file (the screen is busy)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("failed to open %s: %s", *logFile, err.Error())
		}
		defer f.Close()
		out = f
	}
	flags := log.Ldate | log.Ltime | log.Lmsgprefix

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *player != "" {
		cfg.PlayerID = *player
	}
	// One character per tile.
	cfg.TileSize = 1
	if cfg.Columns == 0 || cfg.Rows == 0 {
		cfg.Columns, cfg.Rows = 40, 20
	}

	board, err := scoreboard.Open(cfg.ScoresFile, log.New(out, "[scoreboard] ", flags))
	if err != nil {
		log.Fatalf("failed to open score history: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	engineCfg := cfg.Engine()
	engineCfg.Rand = rand.New(rand.NewSource(seed))
	engineCfg.Sink = board
	engineCfg.Log = log.New(out, "[engine] ", flags)
	engine, err := game.NewEngine(engineCfg)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	drv := driver.New(engine, 0, log.New(out, "[driver] ", flags))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go drv.Run(ctx)

	play(screen, drv, board, cfg.PlayerID)
}

func play(screen tcell.Screen, drv *driver.Driver, board *scoreboard.Scoreboard, player string) {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	draw(screen, drv.Snapshot(), board, player)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			switch evt := event.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, drv.Snapshot(), board, player)
			case *tcell.EventKey:
				switch evt.Key() {
				case tcell.KeyUp:
					drv.SetDirection(types.Up)
				case tcell.KeyDown:
					drv.SetDirection(types.Down)
				case tcell.KeyLeft:
					drv.SetDirection(types.Left)
				case tcell.KeyRight:
					drv.SetDirection(types.Right)
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyRune:
					switch evt.Rune() {
					case 'w':
						drv.SetDirection(types.Up)
					case 's':
						drv.SetDirection(types.Down)
					case 'a':
						drv.SetDirection(types.Left)
					case 'd':
						drv.SetDirection(types.Right)
					case ' ':
						drv.Reset()
					case 'q':
						return
					}
				}
			}
		case snap := <-drv.Frames():
			draw(screen, snap, board, player)
		}
	}
}

var (
	wallStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle = tcell.StyleDefault.Foreground(tcell.ColorLime)
	bodyStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle = tcell.StyleDefault
	dimStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

var headRunes = map[types.Direction]rune{
	types.None:  'Ö',
	types.Up:    '^',
	types.Right: '>',
	types.Down:  'v',
	types.Left:  '<',
}

// transform maps a tile to the screen, leaving the first line for the status bar.
func transform(p types.Point) (int, int) {
	return p.X, p.Y + 1
}

func draw(screen tcell.Screen, snap game.Snapshot, board *scoreboard.Scoreboard, player string) {
	screen.Clear()
	if player == "" {
		player = "anonymous"
	}
	drawText(screen, 0, 0, textStyle,
		fmt.Sprintf("Score: %d  Best: %d  Player: %s", snap.Score, snap.HighScore, player))

	grid := snap.Grid
	for x := 0; x < grid.Columns(); x++ {
		for y := 0; y < grid.Rows(); y++ {
			p := types.Point{X: x, Y: y}
			if grid.IsWall(p) {
				sx, sy := transform(p)
				screen.SetContent(sx, sy, '#', nil, wallStyle)
			}
		}
	}

	if snap.HasFood {
		fx, fy := transform(snap.Food)
		screen.SetContent(fx, fy, '+', nil, foodStyle)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := transform(snap.Snake[i])
		if i == 0 {
			screen.SetContent(x, y, headRunes[snap.Direction], nil, headStyle)
		} else {
			screen.SetContent(x, y, 'O', nil, bodyStyle)
		}
	}

	statusY := grid.Rows() + 2
	switch snap.State {
	case types.NotStarted:
		drawText(screen, 0, statusY, dimStyle, "Press an arrow key to start, q to quit")
	case types.Running:
		drawText(screen, 0, statusY, dimStyle, "Space restarts, q quits")
	case types.GameOver:
		drawText(screen, 0, statusY, textStyle,
			fmt.Sprintf("Game Over (%s), score %d. Press SPACE to restart", snap.Cause, snap.Score))
	}

	historyX := grid.Columns() + 3
	drawText(screen, historyX, 1, textStyle, "History Scores")
	records := board.Records()
	if len(records) == 0 {
		drawText(screen, historyX, 2, dimStyle, "No scores submitted yet.")
	}
	for i, record := range records {
		if i == grid.Rows()-1 {
			break
		}
		drawText(screen, historyX, 2+i, dimStyle, fmt.Sprintf("%-16.16s %4d  %s",
			record.Player, record.Score, record.Date.Local().Format("01-02 15:04")))
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
