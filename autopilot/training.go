package autopilot

import (
	"io"
	"log"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Result summarizes a training session.
type Result struct {
	Episodes     int
	BestScore    int
	AverageScore float64
	Epsilon      float64
}

// Play runs one episode from a fresh reset until game over or maxSteps ticks,
// and returns the final score.
func Play(engine *game.Engine, pilot *Pilot, maxSteps int) int {
	engine.Reset()
	for step := 0; step < maxSteps; step++ {
		snap := engine.Snapshot()
		if snap.State == types.GameOver {
			break
		}
		engine.SetDirection(pilot.Decide(snap))
		engine.Tick()
		pilot.Observe(engine.Snapshot())
	}
	pilot.EndEpisode()
	return engine.Score()
}

// Train plays episodes headless, logging progress every 100 episodes.
func Train(engine *game.Engine, pilot *Pilot, episodes, maxSteps int, logger *log.Logger) Result {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	bestScore := 0
	totalScore := 0
	batchScore := 0
	for episode := 0; episode < episodes; episode++ {
		score := Play(engine, pilot, maxSteps)
		totalScore += score
		batchScore += score
		if score > bestScore {
			bestScore = score
		}

		if (episode+1)%100 == 0 {
			logger.Printf("episode %d: batch average %.2f, best %d, epsilon %.3f",
				episode+1, float64(batchScore)/100, bestScore, pilot.agent.Epsilon)
			batchScore = 0
		}
	}

	result := Result{
		Episodes:  episodes,
		BestScore: bestScore,
		Epsilon:   pilot.agent.Epsilon,
	}
	if episodes > 0 {
		result.AverageScore = float64(totalScore) / float64(episodes)
	}
	return result
}
