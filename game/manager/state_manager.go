package manager

import (
	"snake-arcade/game/types"
)

// ScoreSink receives the final score of every run that ends.
type ScoreSink interface {
	OnGameOver(finalScore int, playerID string)
}

// ScoreSinkFunc adapts a plain function to ScoreSink.
type ScoreSinkFunc func(finalScore int, playerID string)

func (f ScoreSinkFunc) OnGameOver(finalScore int, playerID string) {
	f(finalScore, playerID)
}

// StateManager tracks the run state and score and owns the notifications.
type StateManager struct {
	state         types.GameState
	score         int
	highScore     int
	cause         types.CollisionType
	notified      bool
	sink          ScoreSink
	onScoreChange func(score int)
}

// NewStateManager creates a manager in the NotStarted state. Both callbacks are optional.
func NewStateManager(sink ScoreSink, onScoreChange func(score int)) *StateManager {
	return &StateManager{
		state:         types.NotStarted,
		sink:          sink,
		onScoreChange: onScoreChange,
	}
}

// Reset starts a fresh run. The session high score survives.
func (sm *StateManager) Reset() {
	sm.state = types.NotStarted
	sm.score = 0
	sm.cause = types.NoCollision
	sm.notified = false
	sm.notifyScore()
}

// Start moves a fresh run to Running. It reports whether the state changed.
func (sm *StateManager) Start() bool {
	if sm.state != types.NotStarted {
		return false
	}
	sm.state = types.Running
	return true
}

// AddPoint credits one food and returns the new score.
func (sm *StateManager) AddPoint() int {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	sm.notifyScore()
	return sm.score
}

// End finishes the run. The sink hears about it once per run, however often End is called.
func (sm *StateManager) End(cause types.CollisionType, playerID string) bool {
	if sm.state == types.GameOver {
		return false
	}
	sm.state = types.GameOver
	sm.cause = cause
	if !sm.notified {
		sm.notified = true
		if sm.sink != nil {
			sm.sink.OnGameOver(sm.score, playerID)
		}
	}
	return true
}

func (sm *StateManager) notifyScore() {
	if sm.onScoreChange != nil {
		sm.onScoreChange(sm.score)
	}
}

func (sm *StateManager) GetState() types.GameState {
	return sm.state
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetCause() types.CollisionType {
	return sm.cause
}
