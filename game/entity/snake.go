package entity

import (
	"snake-arcade/game/types"
)

// Snake is an ordered body of grid-aligned segments. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
}

func NewSnake(startPos types.Point, direction types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: direction,
	}
}

// Move shifts every segment onto its predecessor, tail first, then advances the head
func (s *Snake) Move() {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Direction)
}

// Grow appends a segment one step past the tail, continuing the line formed by
// the last two segments. A single-segment body has no such line, so the new
// segment is placed behind the head, opposite the current heading.
func (s *Snake) Grow() {
	last := s.Body[len(s.Body)-1]

	var growDir types.Point
	if len(s.Body) >= 2 {
		growDir = last.Sub(s.Body[len(s.Body)-2])
	}
	if growDir.IsZero() {
		growDir = s.Direction.Neg()
	}

	s.Body = append(s.Body, last.Add(growDir))
}

// CheckSelfCollision reports whether the head sits on any segment from index 2 on.
// Segment 1 trails the head by one step and cannot overlap it.
func (s *Snake) CheckSelfCollision() bool {
	head := s.Body[0]
	for i := 2; i < len(s.Body); i++ {
		if s.Body[i] == head {
			return true
		}
	}
	return false
}

func (s *Snake) GetHeadPosition() types.Point {
	return s.Body[0]
}

func (s *Snake) HeadBox() types.Box {
	return types.CellBox(s.Body[0])
}

func (s *Snake) GetDirection() types.Point {
	return s.Direction
}

// SetDirection replaces the heading unconditionally; turn rules belong to the caller.
func (s *Snake) SetDirection(dir types.Point) {
	s.Direction = dir
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, sp := range s.Body {
		if sp == p {
			return true
		}
	}
	return false
}
