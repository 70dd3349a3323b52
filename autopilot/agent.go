// Package autopilot plays the snake engine with a Q-learning agent. It is an
// input source like a keyboard: it reads snapshots and answers with directions.
package autopilot

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/qlearning"
)

// Relative actions.
const (
	TurnLeft = iota
	Straight
	TurnRight
	NumActions
)

// Rewards
const (
	rewardFood   = 10.0
	rewardDeath  = -10.0
	rewardCloser = 0.1
	rewardAway   = -0.2
)

// Pilot turns snapshots into directions.
type Pilot struct {
	agent *qlearning.Agent
	learn bool

	pending    bool
	lastState  string
	lastAction int
	last       game.Snapshot
}

// New returns a pilot. With learn set, Observe updates the agent's Q table.
func New(agent *qlearning.Agent, learn bool) *Pilot {
	return &Pilot{agent: agent, learn: learn}
}

func (p *Pilot) Agent() *qlearning.Agent {
	return p.agent
}

// Decide chooses the next direction for the snake in snap.
func (p *Pilot) Decide(snap game.Snapshot) types.Direction {
	state := StateKey(snap)
	var action int
	if p.learn {
		action = p.agent.GetAction(state, NumActions)
	} else {
		action = p.agent.BestAction(state, NumActions)
	}

	p.pending = true
	p.lastState = state
	p.lastAction = action
	p.last = snap
	return relativeActionToAbsolute(heading(snap), action)
}

// Observe scores the outcome of the last decision.
func (p *Pilot) Observe(snap game.Snapshot) {
	if !p.pending {
		return
	}
	p.pending = false
	if !p.learn {
		return
	}
	done := snap.State == types.GameOver
	reward := calculateReward(p.last, snap)
	p.agent.Update(p.lastState, p.lastAction, reward, StateKey(snap), NumActions, done)
}

// EndEpisode forgets the pending decision and decays exploration.
func (p *Pilot) EndEpisode() {
	p.pending = false
	if p.learn {
		p.agent.IncrementEpisode()
	}
}

func calculateReward(before, after game.Snapshot) float64 {
	switch {
	case after.State == types.GameOver:
		return rewardDeath
	case after.Score > before.Score:
		return rewardFood
	case distance(after.Head(), after.Food) < distance(before.Head(), before.Food):
		return rewardCloser
	default:
		return rewardAway
	}
}

// StateKey encodes danger straight/left/right, food direction relative to the
// heading and the heading itself.
func StateKey(snap game.Snapshot) string {
	dir := heading(snap)
	head := snap.Head()

	danger := func(d types.Direction) int {
		next := head.Add(d.ToPoint())
		if snap.Grid.IsWall(next) || snap.Occupied(next) {
			return 1
		}
		return 0
	}

	// Rotate the food offset into the snake's frame: forward and rightward components.
	delta := types.Point{X: snap.Food.X - head.X, Y: snap.Food.Y - head.Y}
	fwd := dir.ToPoint()
	right := dir.TurnRight().ToPoint()
	ahead := sign(delta.X*fwd.X + delta.Y*fwd.Y)
	side := sign(delta.X*right.X + delta.Y*right.Y)

	return fmt.Sprintf("%d%d%d|%d,%d|%s",
		danger(dir), danger(dir.TurnLeft()), danger(dir.TurnRight()),
		ahead, side, dir)
}

// heading is the current direction; a snake that has not moved yet counts as facing right.
func heading(snap game.Snapshot) types.Direction {
	if snap.Direction == types.None {
		return types.Right
	}
	return snap.Direction
}

func relativeActionToAbsolute(current types.Direction, action int) types.Direction {
	switch action {
	case TurnLeft:
		return current.TurnLeft()
	case TurnRight:
		return current.TurnRight()
	default:
		return current
	}
}

func distance(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
