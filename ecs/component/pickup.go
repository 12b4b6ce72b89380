package component

// Pickup is something the player collects by walking into it.
type Pickup struct {
	Kind   string
	Radius float64 // world units
}

var PickupComponent = NewComponent[Pickup]()
