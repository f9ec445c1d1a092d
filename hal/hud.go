package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// HUD writes status text over a framebuffer.
type HUD struct {
	font   tinyfont.Fonter
	fg     color.RGBA
	bg     color.RGBA
	height int16
}

func NewHUD() *HUD {
	return &HUD{
		font:   &proggy.TinySZ8pt7b,
		fg:     color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
		bg:     color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff},
		height: 12,
	}
}

// Draw writes s on a background strip at the top-left of fb.
func (h *HUD) Draw(fb Framebuffer, s string) {
	if h == nil || fb == nil || fb.Format() != PixelFormatRGB565 {
		return
	}
	d := &fbDisplay{fb: fb}
	w, _ := tinyfont.LineWidth(h.font, s)
	_ = d.FillRectangle(0, 0, int16(w)+4, h.height, h.bg)
	tinyfont.WriteLine(d, h.font, 2, h.height-3, s, h.fg)
}

// fbDisplay adapts a Framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	p := rgb565(c.R, c.G, c.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, d.fb.Width())
	y0 := clampInt(int(y), 0, d.fb.Height())
	x1 := clampInt(int(x)+int(width), 0, d.fb.Width())
	y1 := clampInt(int(y)+int(height), 0, d.fb.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.SetPixel(int16(px), int16(py), c)
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(drivers.Rotation) error { return nil }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
