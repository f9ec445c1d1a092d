package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer allocates an RGB565 framebuffer.
func NewFramebuffer(width, height int) Framebuffer {
	return newHostFramebuffer(width, height)
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// Snapshot converts an RGB565 framebuffer into an opaque RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	copyRGBA(img, fb, nil)
	return img
}

// copyRGBA expands fb into dst, which must match fb's size. scratch, when
// large enough, receives a consistent copy of the RGB565 bytes first.
func copyRGBA(dst *image.RGBA, fb Framebuffer, scratch []byte) []byte {
	src := fb.Buffer()
	if hf, ok := fb.(*hostFramebuffer); ok {
		if len(scratch) < len(hf.buf) {
			scratch = make([]byte, len(hf.buf))
		}
		hf.snapshotRGB565(scratch)
		src = scratch
	}

	w, h, stride := fb.Width(), fb.Height(), fb.StrideBytes()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*stride + x*2
			if off+1 >= len(src) {
				return scratch
			}
			r, g, b := rgb888From565(uint16(src[off]) | uint16(src[off+1])<<8)
			j := dst.PixOffset(x, y)
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
	return scratch
}

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands each channel back to the full 0..255 range.
func rgb888From565(p uint16) (r, g, b uint8) {
	r5 := uint32(p>>11) & 0x1F
	g6 := uint32(p>>5) & 0x3F
	b5 := uint32(p) & 0x1F
	return uint8(r5 * 255 / 31), uint8(g6 * 255 / 63), uint8(b5 * 255 / 31)
}
