package qlearning

import (
	"math"
	"path/filepath"
	"testing"

	"golang.org/x/exp/rand"
)

func TestUpdate(t *testing.T) {
	a := NewAgent(0.5, 0.9, nil)
	a.QTable["next"] = []float64{1, 4, 2}

	a.Update("s", 2, 1.0, "next", 3, false)
	// 0 + 0.5 * (1 + 0.9*4 - 0)
	if got := a.QTable["s"][2]; math.Abs(got-2.3) > 1e-9 {
		t.Errorf("expected Q(s,2)=2.3, got %f", got)
	}

	a.Update("s", 2, -1.0, "next", 3, true)
	// 2.3 + 0.5 * (-1 - 2.3)
	if got := a.QTable["s"][2]; math.Abs(got-0.65) > 1e-9 {
		t.Errorf("expected terminal update to ignore the next state, got %f", got)
	}
}

func TestGetActionGreedy(t *testing.T) {
	a := NewAgent(0.1, 0.9, rand.New(rand.NewSource(1)))
	a.Epsilon = 0
	a.QTable["s"] = []float64{0.1, -2, 0.7}

	for i := 0; i < 10; i++ {
		if got := a.GetAction("s", 3); got != 2 {
			t.Fatalf("expected greedy action 2, got %d", got)
		}
	}
	if got := a.BestAction("unseen", 3); got != 0 {
		t.Errorf("expected ties to pick action 0, got %d", got)
	}
}

func TestEpsilonDecay(t *testing.T) {
	a := NewAgent(0.1, 0.9, nil)
	for i := 0; i < 5000; i++ {
		a.IncrementEpisode()
	}
	if a.Epsilon != a.MinEpsilon {
		t.Errorf("expected epsilon to bottom out at %f, got %f", a.MinEpsilon, a.Epsilon)
	}
	if a.TrainingEpisode != 5000 {
		t.Errorf("expected 5000 episodes, got %d", a.TrainingEpisode)
	}
}

func TestSaveLoadQTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "qtable.json")
	a := NewAgent(0.1, 0.9, nil)
	a.QTable["s"] = []float64{1, 2, 3}
	a.IncrementEpisode()
	if err := a.SaveQTable(path); err != nil {
		t.Fatalf("SaveQTable: %v", err)
	}

	b := NewAgent(0.1, 0.9, nil)
	if err := b.LoadQTable(path); err != nil {
		t.Fatalf("LoadQTable: %v", err)
	}
	if b.TrainingEpisode != 1 || b.Epsilon != a.Epsilon || b.QTable["s"][2] != 3 {
		t.Errorf("loaded agent differs: %+v", b)
	}

	if err := b.LoadQTable(filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Errorf("missing file should not be an error: %v", err)
	}
}
