package main

import (
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/autopilot"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/qlearning"
	"snake-arcade/scoreboard"
)

func main() {
	configFile := flag.String("config", "config.yaml", "YAML config file path")
	envFile := flag.String("env", ".env", "dotenv file with SNAKE_* overrides")
	player := flag.String("player", "", "player id saved with scores (overrides config)")
	autoplay := flag.Bool("autopilot", false, "let the trained agent steer")
	train := flag.Int("train", 0, "train the autopilot headless for this many episodes, then exit")
	maxSteps := flag.Int("max-steps", 2000, "tick limit per training episode")
	flag.Parse()

	logger := log.New(os.Stderr, "[snake] ", log.Ldate|log.Ltime|log.Lmsgprefix)

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if *player != "" {
		cfg.PlayerID = *player
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	agent := qlearning.NewAgent(0.1, 0.9, rng)
	if err := agent.LoadQTable(cfg.QTableFile); err != nil {
		logger.Printf("starting with an empty Q table: %v", err)
	}

	if *train > 0 {
		runTraining(cfg, agent, rng, *train, *maxSteps, logger)
		return
	}

	board, err := scoreboard.Open(cfg.ScoresFile, subLogger(logger, "scoreboard"))
	if err != nil {
		logger.Fatalf("failed to open score history: %v", err)
	}

	engineCfg := cfg.Engine()
	engineCfg.Rand = rng
	engineCfg.Sink = board
	engineCfg.Log = subLogger(logger, "engine")
	engine, err := game.NewEngine(engineCfg)
	if err != nil {
		logger.Fatalf("failed to create game: %v", err)
	}

	var pilot *autopilot.Pilot
	if *autoplay {
		pilot = autopilot.New(agent, false)
	}
	runWindow(engine, board, pilot)
}

func runTraining(cfg config.Config, agent *qlearning.Agent, rng *rand.Rand, episodes, maxSteps int, logger *log.Logger) {
	engineCfg := cfg.Engine()
	engineCfg.Rand = rng
	engine, err := game.NewEngine(engineCfg)
	if err != nil {
		logger.Fatalf("failed to create game: %v", err)
	}

	pilot := autopilot.New(agent, true)
	result := autopilot.Train(engine, pilot, episodes, maxSteps, subLogger(logger, "autopilot"))
	logger.Printf("trained %d episodes: best %d, average %.2f, epsilon %.3f",
		result.Episodes, result.BestScore, result.AverageScore, result.Epsilon)

	if err := agent.SaveQTable(cfg.QTableFile); err != nil {
		logger.Fatalf("failed to save Q table: %v", err)
	}
	logger.Printf("Q table saved to %s", cfg.QTableFile)
}

// subLogger shares the parent's output and flags under a nested prefix.
func subLogger(parent *log.Logger, name string) *log.Logger {
	prefix := parent.Prefix()
	return log.New(parent.Writer(), prefix[:len(prefix)-2]+":"+name+"] ", parent.Flags())
}
