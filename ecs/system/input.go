package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
)

// InputSystem translates keyboard, mouse and gamepad state into the Input
// component each frame. Escape toggles mouse capture; mouse look only feeds
// the turn axis while the cursor is captured.
type InputSystem struct {
	captured   bool
	lastMouseX int
	haveMouse  bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Captured reports whether the cursor is currently captured for mouse look.
func (i *InputSystem) Captured() bool {
	return i != nil && i.captured
}

// Release drops mouse capture, restoring the cursor.
func (i *InputSystem) Release() {
	if i == nil || !i.captured {
		return
	}
	i.captured = false
	i.haveMouse = false
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.captured = !i.captured
		i.haveMouse = false
		if i.captured {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}

	forward := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		forward -= 1
	}

	strafe := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe -= 1
	}

	turn := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		turn += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		turn -= 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		if math.Abs(ly) > stickDeadzone {
			forward = -ly
		}
		if math.Abs(lx) > stickDeadzone {
			strafe = lx
		}
		if math.Abs(rx) > stickDeadzone {
			turn = rx
		}
	}

	mouseTurn := 0.0
	if i.captured {
		x, _ := ebiten.CursorPosition()
		if i.haveMouse {
			mouseTurn = float64(x - i.lastMouseX)
		}
		i.lastMouseX = x
		i.haveMouse = true
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Forward = forward
		input.Strafe = strafe
		input.Turn = turn
		input.MouseTurn = mouseTurn
	})
}
