package ui

import (
	"time"

	"snake-arcade/game"
	"snake-arcade/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// windowKeys maps raylib key codes to logical key ids.
var windowKeys = map[int32]string{
	rl.KeyUp:     manager.KeyArrowUp,
	rl.KeyDown:   manager.KeyArrowDown,
	rl.KeyLeft:   manager.KeyArrowLeft,
	rl.KeyRight:  manager.KeyArrowRight,
	rl.KeyW:      manager.KeyW,
	rl.KeyA:      manager.KeyA,
	rl.KeyS:      manager.KeyS,
	rl.KeyD:      manager.KeyD,
	rl.KeySpace:  manager.KeySpace,
	rl.KeyEnter:  manager.KeyEnter,
	rl.KeyP:      manager.KeyP,
	rl.KeyQ:      manager.KeyQ,
	rl.KeyEscape: manager.KeyEscape,
}

// RunWindow opens a raylib window and drives g from the render loop. Input,
// ticks and drawing all happen on this goroutine.
func RunWindow(g *game.Game, log zerolog.Logger) {
	rl.InitWindow(960, 640, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(0) // Escape goes through the key map
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := NewRenderer()
	log.Info().Msg("window opened")

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			id, ok := windowKeys[key]
			if !ok {
				continue
			}
			if g.HandleKey(id).Kind == manager.ActionQuit {
				log.Info().Msg("quit requested")
				return
			}
		}

		now := time.Duration(rl.GetTime() * float64(time.Second))
		g.OnFrame(now)

		renderer.Draw(g.Snapshot())
	}
}
