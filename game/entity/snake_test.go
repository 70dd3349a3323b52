package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestSetDirectionAxisLock(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5})

	if !s.SetDirection(types.Right) {
		t.Fatal("expected first direction to be accepted")
	}
	if s.SetDirection(types.Left) {
		t.Error("reverse direction should be rejected")
	}
	if s.SetDirection(types.Right) {
		t.Error("same axis should be rejected")
	}
	if s.Direction != types.Right {
		t.Errorf("expected direction right, got %s", s.Direction)
	}
	if !s.SetDirection(types.Up) {
		t.Error("perpendicular direction should be accepted")
	}
	if s.SetDirection(types.None) {
		t.Error("none is not a valid direction")
	}
	if s.Direction != types.Up {
		t.Errorf("expected direction up, got %s", s.Direction)
	}
}

func TestMoveShiftsBodyTowardHead(t *testing.T) {
	s := &Snake{
		Body: []types.Point{
			{X: 5, Y: 5},
			{X: 4, Y: 5},
			{X: 3, Y: 5},
		},
		Direction: types.Right,
	}

	dropped := s.Move()

	if dropped != (types.Point{X: 3, Y: 5}) {
		t.Errorf("expected dropped tail (3, 5), got %v", dropped)
	}
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("segment %d: expected %v, got %v", i, p, s.Body[i])
		}
	}

	s.Grow(dropped)
	if s.Len() != 4 || s.GetTail() != dropped {
		t.Errorf("expected length 4 with tail %v, got %d with tail %v", dropped, s.Len(), s.GetTail())
	}
}

func TestHitsSelf(t *testing.T) {
	s := &Snake{
		Body: []types.Point{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 7, Y: 5},
		},
		Direction: types.Right,
	}
	if s.HitsSelf() {
		t.Fatal("no overlap expected before moving")
	}

	s.Body[0] = types.Point{X: 6, Y: 6}
	if !s.HitsSelf() {
		t.Error("expected head to overlap body")
	}
}

func TestPositionsIsACopy(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2})
	body := s.Positions()
	body[0] = types.Point{X: 9, Y: 9}
	if s.GetHead() != (types.Point{X: 2, Y: 2}) {
		t.Error("mutating Positions result changed the snake")
	}
}
