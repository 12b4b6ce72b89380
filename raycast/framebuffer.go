package raycast

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Framebuffer is a CPU-side RGBA pixel buffer rendered at a reduced internal
// resolution and scaled up at blit time.
type Framebuffer struct {
	W, H int
	Pix  []byte

	img *ebiten.Image
}

func NewFramebuffer(w, h int) *Framebuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Framebuffer{W: w, H: h, Pix: make([]byte, w*h*4)}
}

// Clear fills the whole buffer with one color.
func (f *Framebuffer) Clear(c color.RGBA) {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = c.R
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.B
		f.Pix[i+3] = c.A
	}
}

// SetPixel writes one pixel, ignoring out-of-range coordinates.
func (f *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := (y*f.W + x) * 4
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = c.A
}

// At reads one pixel back; out-of-range reads are transparent black.
func (f *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return color.RGBA{}
	}
	i := (y*f.W + x) * 4
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

// FillRect fills a rectangle, clipped to the buffer.
func (f *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			f.SetPixel(xx, yy, c)
		}
	}
}

// VLine draws a vertical run of pixels in one column.
func (f *Framebuffer) VLine(x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		f.SetPixel(x, y, c)
	}
}

// Blit uploads the buffer and draws it onto screen, preserving aspect ratio
// with letterboxing.
func (f *Framebuffer) Blit(screen *ebiten.Image) {
	if f.img == nil {
		f.img = ebiten.NewImage(f.W, f.H)
	}
	f.img.WritePixels(f.Pix)

	bounds := screen.Bounds()
	dx, dy, dw, dh := LetterboxRect(f.W, f.H, bounds.Dx(), bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/float64(f.W), dh/float64(f.H))
	op.GeoM.Translate(dx, dy)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(f.img, op)
}

// LetterboxRect computes the destination rect that fits a srcW x srcH image
// inside dstW x dstH without stretching.
func LetterboxRect(srcW, srcH, dstW, dstH int) (x, y, w, h float64) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return 0, 0, 0, 0
	}
	srcAspect := float64(srcW) / float64(srcH)
	dstAspect := float64(dstW) / float64(dstH)

	if srcAspect > dstAspect {
		w = float64(dstW)
		h = float64(dstW) / srcAspect
	} else {
		h = float64(dstH)
		w = float64(dstH) * srcAspect
	}
	x = (float64(dstW) - w) / 2
	y = (float64(dstH) - h) / 2
	return x, y, w, h
}
