package component

// Billboard renders the entity as a camera-facing sprite in the 3D view.
type Billboard struct {
	Kind  string  // "chaser" or "coin"
	Scale float64 // 1 = wall height
}

var BillboardComponent = NewComponent[Billboard]()
