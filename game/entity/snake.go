package entity

import (
	"snake-arcade/game/types"
)

// Snake holds the body (head first) plus the committed and pending
// directions. The pending direction only takes effect on CommitDirection.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Pending   types.Direction
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		Pending:   dir,
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

// Advance returns the cell the head would move into along the committed
// direction. The snake is not modified.
func (s *Snake) Advance() types.Point {
	return s.GetHead().Add(s.Direction.Delta())
}

// Move inserts newHead at the front of the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// CommitDirection makes the pending direction the committed one.
func (s *Snake) CommitDirection() {
	s.Direction = s.Pending
}

// SetDirection queues dir for the next tick unless it would reverse the
// snake into its own neck. Reversal is judged against the committed
// direction, so several turns within one interval keep only the last one.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir.Opposite(s.Direction) {
		return false
	}
	s.Pending = dir
	return true
}

// Occupies reports whether p is one of the body cells.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
