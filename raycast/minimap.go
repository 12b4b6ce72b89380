package raycast

import (
	"image/color"
	"math"

	"github.com/rmendoza/mazebound/levels"
)

var (
	minimapBG       = color.RGBA{R: 12, G: 18, B: 28, A: 220}
	minimapWall     = color.RGBA{R: 40, G: 40, B: 50, A: 255}
	minimapFloor    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	minimapGridLine = color.RGBA{R: 20, G: 20, B: 28, A: 160}
	minimapBorder   = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	minimapCoin     = color.RGBA{R: 240, G: 196, B: 48, A: 255}
	minimapChaser   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	minimapPlayer   = color.RGBA{R: 255, G: 160, B: 40, A: 255}
	minimapFacing   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	minimapFOVRay   = color.RGBA{R: 255, G: 210, B: 120, A: 120}
)

// RenderMinimap draws a square top-down inset at (xo, yo): cells, grid,
// border, live sprite positions, and the player with facing line and faint
// FOV rays.
func RenderMinimap(fb *Framebuffer, m *levels.Maze, pose Pose, sprites []Billboard, scale, xo, yo int) {
	if fb == nil || m == nil {
		return
	}

	cols := m.Cols()
	rows := m.Rows()
	maxCells := cols
	if rows > maxCells {
		maxCells = rows
	}
	if maxCells < 1 {
		maxCells = 1
	}

	const padding = 24
	side := maxCells*scale + padding

	fb.FillRect(xo, yo, side, side, minimapBG)

	cell := float64(side-padding) / float64(maxCells)
	originX := float64(xo) + padding/2
	originY := float64(yo) + padding/2

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var col color.RGBA
			switch {
			case m.At(c, r) == levels.CellCoin:
				col = minimapCoin
			case m.Walkable(c, r):
				col = minimapFloor
			default:
				col = minimapWall
			}
			px := int(originX + float64(c)*cell)
			py := int(originY + float64(r)*cell)
			size := int(math.Max(cell*0.9, 1))
			fb.FillRect(px, py, size, size, col)
		}
	}

	// subtle grid so corridors read clearly
	for i := 0; i <= maxCells; i++ {
		x := int(originX + float64(i)*cell)
		fb.VLine(x, yo, yo+side-1, minimapGridLine)
		y := int(originY + float64(i)*cell)
		for px := xo; px < xo+side; px++ {
			fb.SetPixel(px, y, minimapGridLine)
		}
	}

	for x := xo; x < xo+side; x++ {
		fb.SetPixel(x, yo, minimapBorder)
		fb.SetPixel(x, yo+side-1, minimapBorder)
	}
	for y := yo; y < yo+side; y++ {
		fb.SetPixel(xo, y, minimapBorder)
		fb.SetPixel(xo+side-1, y, minimapBorder)
	}

	toMap := func(wx, wy float64) (int, int) {
		return int(originX + wx/levels.BlockSize*cell),
			int(originY + wy/levels.BlockSize*cell)
	}

	for _, s := range sprites {
		if s.Kind != SpriteChaser {
			continue
		}
		sx, sy := toMap(s.Pos.X, s.Pos.Y)
		fb.FillRect(sx-1, sy-1, 3, 3, minimapChaser)
	}

	px, py := toMap(pose.Pos.X, pose.Pos.Y)

	dirLen := math.Max(cell*1.5, 6)
	steps := int(dirLen * 1.2)
	for t := 0; t <= steps; t++ {
		f := float64(t) / float64(steps)
		fb.SetPixel(px+int(math.Cos(pose.Angle)*dirLen*f), py+int(math.Sin(pose.Angle)*dirLen*f), minimapFacing)
	}

	r := int(math.Max(cell*0.4, 2))
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy <= r*r {
				fb.SetPixel(px+dx, py+dy, minimapPlayer)
			}
		}
	}

	const fovRays = 8
	for i := 0; i < fovRays; i++ {
		t := float64(i) / float64(fovRays-1)
		a := pose.Angle - pose.FOV/2 + pose.FOV*t
		for d := 0.0; d < float64(side); d += 6 {
			wx := pose.Pos.X + math.Cos(a)*d
			wy := pose.Pos.Y + math.Sin(a)*d
			sx, sy := toMap(wx, wy)
			if sx <= xo || sx >= xo+side-1 || sy <= yo || sy >= yo+side-1 {
				break
			}
			fb.SetPixel(sx, sy, minimapFOVRay)
		}
	}
}
