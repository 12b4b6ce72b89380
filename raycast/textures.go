package raycast

import (
	"image"
	"image/color"
	_ "image/png"
	"log"
	"math"
	"os"
	"path/filepath"
)

// TextureKind selects a wall texture.
type TextureKind int

const (
	TextureWall TextureKind = iota
	TexturePillar
)

// SpriteKind selects a billboard texture.
type SpriteKind int

const (
	SpriteChaser SpriteKind = iota
	SpriteCoin
)

const texSize = 64

// textureBuf is a decoded RGBA image sampled with normalized coordinates.
type textureBuf struct {
	w, h int
	pix  []byte
}

func (t *textureBuf) sample(u, v float64) color.RGBA {
	if t == nil || t.w == 0 || t.h == 0 {
		return color.RGBA{R: 255, A: 255}
	}
	x := int(u * float64(t.w))
	y := int(v * float64(t.h))
	if x < 0 {
		x = 0
	}
	if x >= t.w {
		x = t.w - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.h {
		y = t.h - 1
	}
	i := (y*t.w + x) * 4
	return color.RGBA{R: t.pix[i], G: t.pix[i+1], B: t.pix[i+2], A: t.pix[i+3]}
}

// Atlas holds every texture the renderer samples. Missing or unreadable
// texture files fall back to procedural patterns, so the game always has
// something to draw.
type Atlas struct {
	wall   *textureBuf
	pillar *textureBuf
	sky    *textureBuf
	chaser *textureBuf
	coin   *textureBuf
}

// LoadAtlas builds an atlas, overriding procedural textures with PNG files
// from dir (wall.png, pillar.png, sky.png, chaser.png, coin.png) when they
// exist.
func LoadAtlas(dir string) *Atlas {
	a := &Atlas{
		wall:   makeBrick(),
		pillar: makeMarble(),
		sky:    makeSky(),
		chaser: makeChaserSprite(),
		coin:   makeCoinSprite(),
	}
	if dir == "" {
		return a
	}
	for name, dst := range map[string]**textureBuf{
		"wall":   &a.wall,
		"pillar": &a.pillar,
		"sky":    &a.sky,
		"chaser": &a.chaser,
		"coin":   &a.coin,
	} {
		path := filepath.Join(dir, name+".png")
		buf, err := loadPNG(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("textures: %s: %v, using procedural fallback", path, err)
			}
			continue
		}
		*dst = buf
	}
	return a
}

func loadPNG(path string) (*textureBuf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	buf := &textureBuf{w: bounds.Dx(), h: bounds.Dy()}
	buf.pix = make([]byte, buf.w*buf.h*4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, al := img.At(x, y).RGBA()
			buf.pix[i] = byte(r >> 8)
			buf.pix[i+1] = byte(g >> 8)
			buf.pix[i+2] = byte(b >> 8)
			buf.pix[i+3] = byte(al >> 8)
			i += 4
		}
	}
	return buf, nil
}

// SampleWall returns the wall color at normalized texture coordinates.
func (a *Atlas) SampleWall(kind TextureKind, u, v float64) color.RGBA {
	switch kind {
	case TexturePillar:
		return a.pillar.sample(u, v)
	default:
		return a.wall.sample(u, v)
	}
}

// SampleSky returns the sky color for a ray direction u (angle wrapped to
// 0..1) and vertical fraction v.
func (a *Atlas) SampleSky(u, v float64) color.RGBA {
	return a.sky.sample(u, v)
}

// SampleSprite returns the billboard color; alpha below the keying threshold
// means the pixel is skipped.
func (a *Atlas) SampleSprite(kind SpriteKind, u, v float64) (color.RGBA, bool) {
	var c color.RGBA
	switch kind {
	case SpriteCoin:
		c = a.coin.sample(u, v)
	default:
		c = a.chaser.sample(u, v)
	}
	return c, c.A > 16
}

func newTexture() *textureBuf {
	return &textureBuf{w: texSize, h: texSize, pix: make([]byte, texSize*texSize*4)}
}

func (t *textureBuf) set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	i := (y*t.w + x) * 4
	t.pix[i] = c.R
	t.pix[i+1] = c.G
	t.pix[i+2] = c.B
	t.pix[i+3] = c.A
}

func makeBrick() *textureBuf {
	t := newTexture()
	mortar := color.RGBA{R: 60, G: 52, B: 48, A: 255}
	for y := 0; y < texSize; y++ {
		row := y / 16
		for x := 0; x < texSize; x++ {
			shift := 0
			if row%2 == 1 {
				shift = 16
			}
			c := color.RGBA{R: 150, G: 66, B: 50, A: 255}
			if (x+y)%7 == 0 {
				c = color.RGBA{R: 136, G: 58, B: 44, A: 255}
			}
			if y%16 == 0 || (x+shift)%32 == 0 {
				c = mortar
			}
			t.set(x, y, c)
		}
	}
	return t
}

func makeMarble() *textureBuf {
	t := newTexture()
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			vein := math.Sin(float64(x)*0.35+math.Sin(float64(y)*0.2)*2.5) * 0.5
			base := 180 + int(vein*40)
			c := color.RGBA{R: byte(base), G: byte(base), B: byte(base + 12), A: 255}
			if x == 0 || x == texSize-1 {
				c = color.RGBA{R: 110, G: 110, B: 122, A: 255}
			}
			t.set(x, y, c)
		}
	}
	return t
}

func makeSky() *textureBuf {
	t := newTexture()
	top := color.RGBA{R: 16, G: 18, B: 44, A: 255}
	horizon := color.RGBA{R: 88, G: 60, B: 96, A: 255}
	for y := 0; y < texSize; y++ {
		f := float64(y) / float64(texSize-1)
		c := color.RGBA{
			R: byte(float64(top.R) + f*float64(int(horizon.R)-int(top.R))),
			G: byte(float64(top.G) + f*float64(int(horizon.G)-int(top.G))),
			B: byte(float64(top.B) + f*float64(int(horizon.B)-int(top.B))),
			A: 255,
		}
		for x := 0; x < texSize; x++ {
			px := c
			// sparse star field in the upper half
			if f < 0.5 && (x*7+y*13)%97 == 0 {
				px = color.RGBA{R: 230, G: 230, B: 240, A: 255}
			}
			t.set(x, y, px)
		}
	}
	return t
}

func makeChaserSprite() *textureBuf {
	t := newTexture()
	body := color.RGBA{R: 190, G: 32, B: 32, A: 255}
	dark := color.RGBA{R: 120, G: 16, B: 16, A: 255}
	eye := color.RGBA{R: 255, G: 220, B: 80, A: 255}
	cx, cy := float64(texSize)/2, float64(texSize)*0.55
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx := (float64(x) - cx) / (float64(texSize) * 0.30)
			dy := (float64(y) - cy) / (float64(texSize) * 0.42)
			if dx*dx+dy*dy > 1 {
				continue
			}
			c := body
			if dx*dx+dy*dy > 0.72 {
				c = dark
			}
			t.set(x, y, c)
		}
	}
	// horns
	for i := 0; i < 10; i++ {
		t.set(texSize/2-8-i/2, texSize/4-i, dark)
		t.set(texSize/2+8+i/2, texSize/4-i, dark)
	}
	t.set(texSize/2-5, texSize/2-4, eye)
	t.set(texSize/2-4, texSize/2-4, eye)
	t.set(texSize/2+4, texSize/2-4, eye)
	t.set(texSize/2+5, texSize/2-4, eye)
	return t
}

func makeCoinSprite() *textureBuf {
	t := newTexture()
	gold := color.RGBA{R: 240, G: 196, B: 48, A: 255}
	rim := color.RGBA{R: 172, G: 128, B: 24, A: 255}
	shine := color.RGBA{R: 255, G: 240, B: 170, A: 255}
	cx, cy := float64(texSize)/2, float64(texSize)/2
	r := float64(texSize) * 0.32
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			c := gold
			if d > r*0.82 {
				c = rim
			}
			if dx < -r*0.2 && dy < -r*0.2 && d < r*0.7 {
				c = shine
			}
			t.set(x, y, c)
		}
	}
	return t
}
