package entity

import (
	"snake-arcade/game/types"
)

// Snake is an ordered body with the head at index 0 and the tail last.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.None,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection applies dir unless it runs along the axis the snake already moves on,
// which rules out reversing into the neck. It reports whether dir was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	switch {
	case dir == types.None:
		return false
	case dir.Horizontal() && s.Direction.Horizontal():
		return false
	case dir.Vertical() && s.Direction.Vertical():
		return false
	}
	s.Direction = dir
	return true
}

// Move shifts every segment into the place of the one ahead of it, working from the
// tail toward the head, then advances the head one step. It returns the tail position
// that was dropped by the shift.
func (s *Snake) Move() types.Point {
	oldTail := s.GetTail()
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Direction.ToPoint())
	return oldTail
}

// Grow appends a segment at tail, normally the position Move just dropped.
func (s *Snake) Grow(tail types.Point) {
	s.Body = append(s.Body, tail)
}

func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head shares a tile with any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Positions returns a copy of the body.
func (s *Snake) Positions() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
