package ui

import (
	"context"
	"fmt"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// frameRate is the presentation clock of the terminal host.
const frameRate = 60

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorGray)
	styleSnake   = styleDefault.Foreground(tcell.ColorSpringGreen)
	styleHead    = styleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFood    = styleDefault.Foreground(tcell.ColorHotPink)
	styleTitle   = styleDefault.Foreground(tcell.ColorSpringGreen).Bold(true)
)

// TerminalKey maps a tcell key event to a logical key id. ok is false for
// keys the game does not know.
func TerminalKey(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return manager.KeyArrowUp, true
	case tcell.KeyDown:
		return manager.KeyArrowDown, true
	case tcell.KeyLeft:
		return manager.KeyArrowLeft, true
	case tcell.KeyRight:
		return manager.KeyArrowRight, true
	case tcell.KeyEnter:
		return manager.KeyEnter, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return manager.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return manager.KeyW, true
		case 'a', 'A':
			return manager.KeyA, true
		case 's', 'S':
			return manager.KeyS, true
		case 'd', 'D':
			return manager.KeyD, true
		case 'p', 'P':
			return manager.KeyP, true
		case 'q', 'Q':
			return manager.KeyQ, true
		case ' ':
			return manager.KeySpace, true
		}
	}
	return "", false
}

// RunTerminal drives g inside the terminal until the player quits or ctx
// is cancelled. A goroutine forwards tcell events; the game itself is only
// touched from the select loop below.
func RunTerminal(ctx context.Context, g *game.Game, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()
	screen.SetStyle(styleDefault)
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()
	start := time.Now()
	log.Info().Msg("terminal opened")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				id, ok := TerminalKey(ev)
				if !ok {
					continue
				}
				if g.HandleKey(id).Kind == manager.ActionQuit {
					log.Info().Msg("quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			g.OnFrame(time.Since(start))
			drawTerminal(screen, g.Snapshot())
		}
	}
}

func drawTerminal(screen tcell.Screen, s game.Snapshot) {
	screen.Clear()
	width, height := screen.Size()

	// Each cell is two columns wide to look square; one ring of border.
	boardW, boardH := s.Grid.Width*2+2, s.Grid.Height+2
	if width < boardW || height < boardH+2 {
		drawText(screen, 0, 0, styleDefault, fmt.Sprintf("Terminal too small: need %dx%d", boardW, boardH+2))
		screen.Show()
		return
	}
	originX := (width - boardW) / 2
	originY := (height - boardH - 2) / 2

	drawBorder(screen, originX, originY, boardW, boardH)

	put := func(p types.Point, r rune, style tcell.Style) {
		x := originX + 1 + p.X*2
		y := originY + 1 + p.Y
		screen.SetContent(x, y, r, nil, style)
		screen.SetContent(x+1, y, r, nil, style)
	}
	put(s.Food, '█', styleFood)
	for i := len(s.Snake) - 1; i >= 0; i-- {
		style := styleSnake
		if i == 0 {
			style = styleHead
		}
		put(s.Snake[i], '█', style)
	}

	status := fmt.Sprintf("Score %d  High %d  Speed %d  Games %d  Avg %.1f",
		s.Score, s.HighScore, s.SpeedLevel, s.Session.GamesPlayed, s.Session.AverageScore)
	drawText(screen, originX, originY+boardH, styleDefault, status)

	if title, message := s.Overlay(); title != "" {
		cy := originY + boardH/2
		drawText(screen, originX+(boardW-len(title))/2, cy-1, styleTitle, title)
		drawText(screen, originX+(boardW-len(message))/2, cy+1, styleDefault, message)
	}
	screen.Show()
}

func drawBorder(screen tcell.Screen, x, y, w, h int) {
	for i := x; i < x+w; i++ {
		screen.SetContent(i, y, tcell.RuneHLine, nil, styleBorder)
		screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, styleBorder)
	}
	for j := y; j < y+h; j++ {
		screen.SetContent(x, j, tcell.RuneVLine, nil, styleBorder)
		screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, styleBorder)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, styleBorder)
	screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, styleBorder)
	screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, styleBorder)
	screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, styleBorder)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
