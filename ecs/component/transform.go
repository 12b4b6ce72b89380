package component

import "github.com/jakecoffman/cp"

// Transform is a world-space position and facing angle (radians).
type Transform struct {
	Pos   cp.Vector
	Angle float64
}

var TransformComponent = NewComponent[Transform]()
