package raycast

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/rmendoza/mazebound/levels"
)

// Billboard is a world sprite rendered as a camera-facing slice stack.
type Billboard struct {
	Pos   cp.Vector
	Kind  SpriteKind
	Scale float64 // 1 = wall height
}

// wallHeightScale matches slice height to the projected block size.
const wallHeightScale = 70.0

var floorColor = color.RGBA{R: 90, G: 30, B: 30, A: 255}

// RenderWorld draws the 3D view into fb: textured wall columns with a sky
// above and flat floor below, then billboards occluded by a per-column depth
// buffer. columnStep > 1 renders every Nth column and repeats it, trading
// sharpness for speed at high internal resolutions.
func RenderWorld(fb *Framebuffer, m *levels.Maze, pose Pose, atlas *Atlas, sprites []Billboard, columnStep int) {
	if fb == nil || m == nil || atlas == nil {
		return
	}
	if columnStep < 1 {
		columnStep = 1
	}

	numRays := fb.W
	hh := float64(fb.H) / 2

	depth := make([]float64, numRays)

	for i := 0; i < numRays; i += columnStep {
		t := float64(i) / float64(numRays)
		angle := pose.Angle - pose.FOV/2 + pose.FOV*t
		skyU := math.Mod(angle/(2*math.Pi), 1)
		if skyU < 0 {
			skyU++
		}

		hit := CastRay(m, pose.Pos, angle)
		dist := math.Max(hit.Distance, 0.0001)

		stakeH := hh / dist * wallHeightScale
		top := int(hh - stakeH/2)
		bottom := int(hh + stakeH/2)
		if top < 0 {
			top = 0
		}
		if bottom >= fb.H {
			bottom = fb.H - 1
		}

		// wall texture u from the fractional hit position along the face
		fracX := math.Mod(hit.X/levels.BlockSize, 1)
		fracY := math.Mod(hit.Y/levels.BlockSize, 1)
		u := fracX
		if math.Min(fracX, 1-fracX) < math.Min(fracY, 1-fracY) {
			u = fracY
		}

		kind := TextureWall
		if hit.Cell == levels.CellPillar {
			kind = TexturePillar
		}

		for x := i; x < i+columnStep && x < numRays; x++ {
			depth[x] = dist

			for y := 0; y < top; y++ {
				fb.SetPixel(x, y, atlas.SampleSky(skyU, float64(y)/hh))
			}
			span := float64(bottom - top + 1)
			for y := top; y <= bottom; y++ {
				v := (float64(y) - float64(top)) / span
				c := atlas.SampleWall(kind, u, v)
				if hit.Side == 1 {
					c = shade(c, 0.8)
				}
				fb.SetPixel(x, y, c)
			}
			for y := bottom + 1; y < fb.H; y++ {
				fb.SetPixel(x, y, floorColor)
			}
		}
	}

	renderBillboards(fb, pose, atlas, sprites, depth)
}

func renderBillboards(fb *Framebuffer, pose Pose, atlas *Atlas, sprites []Billboard, depth []float64) {
	numRays := fb.W
	hh := float64(fb.H) / 2

	for _, s := range sprites {
		d := s.Pos.Sub(pose.Pos)
		dist := math.Max(d.Length(), 0.001)
		rel := math.Mod(math.Atan2(d.Y, d.X)-pose.Angle+3*math.Pi, 2*math.Pi) - math.Pi
		if math.Abs(rel) > pose.FOV/2 {
			continue
		}

		scale := s.Scale
		if scale <= 0 {
			scale = 1
		}
		screenX := int((rel + pose.FOV/2) / pose.FOV * float64(numRays))
		spriteH := hh / dist * wallHeightScale * scale
		top := int(hh - spriteH/2)
		bottom := int(hh + spriteH/2)

		w := int(math.Max(spriteH, 3))
		half := w / 2
		if half < 1 {
			half = 1
		}

		for xoff := -half; xoff <= half; xoff++ {
			x := screenX + xoff
			if x < 0 || x >= numRays {
				continue
			}
			// keep sprites behind nearer walls, with a little slack so
			// sprites standing in a cell edge don't flicker
			if dist > depth[x]-1 {
				continue
			}
			u := float64(xoff+half) / float64(w)
			for y := int(math.Max(float64(top), 0)); y <= bottom && y < fb.H; y++ {
				v := (float64(y) - float64(top)) / (float64(bottom) - float64(top) + 1)
				if c, ok := atlas.SampleSprite(s.Kind, u, v); ok {
					fb.SetPixel(x, y, c)
				}
			}
		}
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: byte(float64(c.R) * f),
		G: byte(float64(c.G) * f),
		B: byte(float64(c.B) * f),
		A: c.A,
	}
}
