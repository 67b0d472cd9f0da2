package types

import "testing"

func TestOpposite(t *testing.T) {
	pairs := []struct {
		a, b Direction
		want bool
	}{
		{Up, Down, true},
		{Left, Right, true},
		{Right, Left, true},
		{Up, Left, false},
		{Right, Right, false},
		{Down, Right, false},
	}
	for _, p := range pairs {
		if got := p.a.Opposite(p.b); got != p.want {
			t.Errorf("%v.Opposite(%v) = %v, want %v", p.a, p.b, got, p.want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 20, Height: 20}
	in := []Point{{0, 0}, {19, 19}, {10, 5}}
	out := []Point{{-1, 0}, {20, 0}, {0, -1}, {0, 20}}
	for _, p := range in {
		if !g.Contains(p) {
			t.Errorf("Expected %v inside the grid", p)
		}
	}
	for _, p := range out {
		if g.Contains(p) {
			t.Errorf("Expected %v outside the grid", p)
		}
	}
}

func TestStartBody(t *testing.T) {
	cfg := Config{Columns: 20, Rows: 20, StartLength: 3}
	got := cfg.StartBody()
	want := []Point{{10, 10}, {9, 10}, {8, 10}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StartBody()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReasonFor(t *testing.T) {
	if ReasonFor(WallCollision) != ReasonWall || ReasonFor(SelfCollision) != ReasonSelf || ReasonFor(NoCollision) != ReasonNone {
		t.Error("ReasonFor mapped a collision to the wrong reason")
	}
}
