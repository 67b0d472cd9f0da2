package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func startSnake() *Snake {
	return NewSnake([]types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, types.Right)
}

func TestAdvanceDoesNotMutate(t *testing.T) {
	s := startSnake()
	before := s.Cells()

	got := s.Advance()
	if got != (types.Point{X: 11, Y: 10}) {
		t.Errorf("Expected (11,10), got %v", got)
	}
	for i := range before {
		if s.Body[i] != before[i] {
			t.Fatalf("Body changed at %d: %v vs %v", i, s.Body[i], before[i])
		}
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := startSnake()
	s.Move(s.Advance())
	if s.Len() != 4 {
		t.Fatalf("Expected length 4 after Move, got %d", s.Len())
	}
	if s.GetHead() != (types.Point{X: 11, Y: 10}) {
		t.Errorf("Unexpected head %v", s.GetHead())
	}
	s.RemoveTail()
	want := []types.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], p)
		}
	}
}

func TestRemoveTailKeepsHead(t *testing.T) {
	s := NewSnake([]types.Point{{X: 1, Y: 1}}, types.Up)
	s.RemoveTail()
	if s.Len() != 1 {
		t.Errorf("Expected the head to survive, got length %d", s.Len())
	}
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name     string
		dir      types.Direction
		accepted bool
		pending  types.Direction
	}{
		{"reverse rejected", types.Left, false, types.Right},
		{"up accepted", types.Up, true, types.Up},
		{"down accepted", types.Down, true, types.Down},
		{"same accepted", types.Right, true, types.Right},
		{"invalid rejected", types.Direction{X: 1, Y: 1}, false, types.Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startSnake()
			if got := s.SetDirection(tt.dir); got != tt.accepted {
				t.Errorf("SetDirection(%v) = %v, want %v", tt.dir, got, tt.accepted)
			}
			if s.Pending != tt.pending {
				t.Errorf("Pending = %v, want %v", s.Pending, tt.pending)
			}
			if s.Direction != types.Right {
				t.Errorf("Committed direction changed to %v", s.Direction)
			}
		})
	}
}

func TestSetDirectionChecksCommittedNotPending(t *testing.T) {
	s := startSnake()
	s.SetDirection(types.Up)
	// Down is opposite to the pending Up but not to the committed Right.
	if !s.SetDirection(types.Down) {
		t.Fatal("Down should be accepted while Right is committed")
	}
	if s.Pending != types.Down {
		t.Errorf("Pending = %v, want down", s.Pending)
	}
	s.CommitDirection()
	if s.Direction != types.Down {
		t.Errorf("Direction = %v after commit, want down", s.Direction)
	}
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := []types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}}
	s := NewSnake(body, types.Right)
	body[0] = types.Point{X: 0, Y: 0}
	if s.GetHead() != (types.Point{X: 3, Y: 3}) {
		t.Error("NewSnake must not alias the caller's slice")
	}
	if !s.Occupies(types.Point{X: 2, Y: 3}) || s.Occupies(types.Point{X: 0, Y: 0}) {
		t.Error("Occupies returned the wrong answer")
	}
	if s.GetTail() != (types.Point{X: 2, Y: 3}) {
		t.Errorf("Unexpected tail %v", s.GetTail())
	}
}
