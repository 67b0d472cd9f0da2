package manager

import (
	"snake-arcade/game/types"
)

// Logical key identifiers delivered by the input hosts.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyW          = "KeyW"
	KeyA          = "KeyA"
	KeyS          = "KeyS"
	KeyD          = "KeyD"
	KeySpace      = "Space"
	KeyEnter      = "Enter"
	KeyP          = "KeyP"
	KeyQ          = "KeyQ"
	KeyEscape     = "Escape"
)

// ActionKind classifies what a key asks for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDirection
	ActionStart
	ActionPause
	// ActionQuit is handled by the host; the engine ignores it.
	ActionQuit
)

// Action is a translated key press.
type Action struct {
	Kind      ActionKind
	Direction types.Direction
}

type InputManager struct {
	keyMap map[string]Action
}

func NewInputManager() *InputManager {
	dir := func(d types.Direction) Action {
		return Action{Kind: ActionDirection, Direction: d}
	}
	return &InputManager{
		keyMap: map[string]Action{
			KeyArrowUp:    dir(types.Up),
			KeyW:          dir(types.Up),
			KeyArrowDown:  dir(types.Down),
			KeyS:          dir(types.Down),
			KeyArrowLeft:  dir(types.Left),
			KeyA:          dir(types.Left),
			KeyArrowRight: dir(types.Right),
			KeyD:          dir(types.Right),
			KeySpace:      {Kind: ActionStart},
			KeyEnter:      {Kind: ActionStart},
			KeyP:          {Kind: ActionPause},
			KeyQ:          {Kind: ActionQuit},
			KeyEscape:     {Kind: ActionQuit},
		},
	}
}

// Translate maps a key to an action. Unknown keys yield ActionNone.
func (im *InputManager) Translate(key string) Action {
	return im.keyMap[key]
}
