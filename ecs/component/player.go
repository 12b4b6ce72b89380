package component

// Player marks the player entity and carries its tuning.
type Player struct {
	FOV              float64 // radians
	MoveSpeed        float64 // world units per frame
	TurnSpeed        float64 // radians per frame from keyboard turn
	MouseSensitivity float64 // radians per mouse pixel
}

var PlayerComponent = NewComponent[Player]()
