package ui

import (
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

func TestTerminalKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), manager.KeyArrowUp, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), manager.KeyArrowLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), manager.KeyW, true},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), manager.KeyD, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), manager.KeySpace, true},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), manager.KeyP, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), manager.KeyEnter, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), manager.KeyEscape, true},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), "", false},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		got, ok := TerminalKey(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TerminalKey(%v) = %q/%v, want %q/%v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestDrawTerminal(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 30)

	snap := game.Snapshot{
		Grid:   types.Grid{Width: 20, Height: 20},
		Snake:  []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}},
		Food:   types.Point{X: 0, Y: 0},
		Status: types.Running,
	}
	drawTerminal(screen, snap)

	// Board is 42x22 centred in 80x30 with two status rows below.
	originX, originY := (80-42)/2, (30-22-2)/2
	headX, headY := originX+1+10*2, originY+1+10
	if r, _, style, _ := screen.GetContent(headX, headY); r != '█' || style != styleHead {
		t.Errorf("Expected the head at (%d,%d), got %q", headX, headY, r)
	}
	if r, _, style, _ := screen.GetContent(originX+1, originY+1); r != '█' || style != styleFood {
		t.Errorf("Expected food in the top-left cell, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(originX, originY); r != tcell.RuneULCorner {
		t.Errorf("Expected a border corner, got %q", r)
	}
}

func TestDrawTerminalTooSmall(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	drawTerminal(screen, game.Snapshot{Grid: types.Grid{Width: 20, Height: 20}})
	if r, _, _, _ := screen.GetContent(0, 0); r != 'T' {
		t.Errorf("Expected the size warning, got %q", r)
	}
}
