package component

// Input is the per-frame movement intent written by the input system and
// consumed by the player controller.
type Input struct {
	Forward   float64 // -1..1
	Strafe    float64 // -1..1
	Turn      float64 // -1..1 keyboard turn
	MouseTurn float64 // raw mouse delta in pixels
}

var InputComponent = NewComponent[Input]()
