package qlearning

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// QTable stores the Q values of each state, one per action.
type QTable map[string][]float64

// Rand is the source of exploration decisions.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Agent is an epsilon-greedy tabular Q-learning agent.
type Agent struct {
	QTable          QTable
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	InitialEpsilon  float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int
	rng             Rand
}

func NewAgent(learningRate, discount float64, rng Rand) *Agent {
	return &Agent{
		QTable:         make(QTable),
		LearningRate:   learningRate,
		Discount:       discount,
		Epsilon:        0.9, // start out exploring
		InitialEpsilon: 0.9,
		MinEpsilon:     0.01,
		EpsilonDecay:   0.995,
		rng:            rng,
	}
}

// GetAction picks a random action with probability Epsilon, the best known one otherwise.
func (a *Agent) GetAction(state string, numActions int) int {
	if a.rng != nil && a.rng.Float64() < a.Epsilon {
		return a.rng.Intn(numActions)
	}
	return a.BestAction(state, numActions)
}

// BestAction returns the action with the highest Q value; ties go to the lowest index.
func (a *Agent) BestAction(state string, numActions int) int {
	values := a.GetQValues(state, numActions)
	bestAction := 0
	maxQ := math.Inf(-1)
	for action, qValue := range values {
		if qValue > maxQ {
			maxQ = qValue
			bestAction = action
		}
	}
	return bestAction
}

// GetQValues returns the Q values of state, creating zeroed ones for unseen states.
func (a *Agent) GetQValues(state string, numActions int) []float64 {
	values, ok := a.QTable[state]
	if !ok || len(values) != numActions {
		values = make([]float64, numActions)
		a.QTable[state] = values
	}
	return values
}

// Update applies Q(s,a) += α [r + γ max_a' Q(s',a') - Q(s,a)]. A terminal step
// has no future value.
func (a *Agent) Update(state string, action int, reward float64, nextState string, numActions int, done bool) {
	values := a.GetQValues(state, numActions)
	target := reward
	if !done {
		next := a.GetQValues(nextState, numActions)
		target += a.Discount * next[a.BestAction(nextState, numActions)]
	}
	values[action] += a.LearningRate * (target - values[action])
}

// IncrementEpisode advances the episode counter and decays Epsilon.
func (a *Agent) IncrementEpisode() {
	a.TrainingEpisode++
	a.Epsilon = a.InitialEpsilon * math.Pow(a.EpsilonDecay, float64(a.TrainingEpisode))
	if a.Epsilon < a.MinEpsilon {
		a.Epsilon = a.MinEpsilon
	}
}

// AgentState is the saved form of an agent.
type AgentState struct {
	QTable          QTable  `json:"qtable"`
	Epsilon         float64 `json:"epsilon"`
	TrainingEpisode int     `json:"training_episode"`
}

// SaveQTable writes the agent state to filename.
func (a *Agent) SaveQTable(filename string) error {
	state := AgentState{
		QTable:          a.QTable,
		Epsilon:         a.Epsilon,
		TrainingEpisode: a.TrainingEpisode,
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error marshaling QTable")
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrap(err, "error writing QTable to file")
	}
	return nil
}

// LoadQTable restores the agent state from filename. A missing file leaves the agent untouched.
func (a *Agent) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "error reading QTable file")
	}

	var state AgentState
	if err := json.Unmarshal(data, &state); err != nil {
		return errors.Wrapf(err, "error unmarshaling QTable from %s", filename)
	}

	if state.QTable != nil {
		a.QTable = state.QTable
		a.Epsilon = state.Epsilon
		a.TrainingEpisode = state.TrainingEpisode
	}
	return nil
}
