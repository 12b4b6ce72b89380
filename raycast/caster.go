package raycast

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/levels"
)

// Pose is a viewpoint in world space.
type Pose struct {
	Pos   cp.Vector
	Angle float64
	FOV   float64
}

// Hit is the result of casting a single ray.
type Hit struct {
	// Distance is the perpendicular distance to the wall in world units,
	// already corrected for the fisheye effect.
	Distance float64
	// Cell is the maze rune that stopped the ray, or CellOpen on a miss.
	Cell rune
	// X, Y is the world-space impact point.
	X, Y float64
	// Side is 0 for a vertical (x-side) wall face, 1 for horizontal.
	Side int
}

// missDistance is returned when a ray escapes the grid.
const missDistance = 2000.0

const maxDDASteps = 2000

// CastRay walks the maze grid with DDA until it hits a solid cell.
func CastRay(m *levels.Maze, origin cp.Vector, angle float64) Hit {
	posX := origin.X / levels.BlockSize
	posY := origin.Y / levels.BlockSize
	rayDirX := math.Cos(angle)
	rayDirY := math.Sin(angle)

	mapX := int(math.Floor(posX))
	mapY := int(math.Floor(posY))

	deltaDistX := math.Inf(1)
	if rayDirX != 0 {
		deltaDistX = math.Abs(1 / rayDirX)
	}
	deltaDistY := math.Inf(1)
	if rayDirY != 0 {
		deltaDistY = math.Abs(1 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if rayDirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - posX) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - posY) * deltaDistY
	}

	hit := false
	side := 0
	for i := 0; i < maxDDASteps; i++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}

		if mapX < 0 || mapY < 0 || mapY >= m.Rows() || mapX >= m.Cols() {
			break
		}
		if m.Solid(mapX, mapY) {
			hit = true
			break
		}
	}

	if !hit {
		return Hit{Distance: missDistance, Cell: levels.CellOpen, X: origin.X, Y: origin.Y}
	}

	// perpendicular distance from the accumulated side distances, which
	// avoids dividing by a near-zero ray component
	var perp float64
	if side == 0 {
		perp = sideDistX - deltaDistX
	} else {
		perp = sideDistY - deltaDistY
	}

	distance := perp * levels.BlockSize
	return Hit{
		Distance: distance,
		Cell:     m.At(mapX, mapY),
		X:        origin.X + distance*rayDirX,
		Y:        origin.Y + distance*rayDirY,
		Side:     side,
	}
}
