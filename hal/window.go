//go:build cgo

package hal

import (
	"context"
	"errors"
	"image"

	"meshview/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int // frame-rate cap
}

// Window is the desktop platform. Ebiten owns the loop: every Update is one
// frame and TPS is the frame-rate cap. Closing the window is the quit signal.
type Window struct {
	cfg WindowConfig

	ctx   context.Context
	frame func() error

	fb      Framebuffer
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	dirty   bool
}

func NewWindow(cfg WindowConfig) *Window {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "meshview"
	}
	return &Window{cfg: cfg}
}

func (w *Window) QuitRequested() bool {
	if w.ctx != nil && w.ctx.Err() != nil {
		return true
	}
	return ebiten.IsWindowBeingClosed()
}

// Present marks fb for display on the next Draw.
func (w *Window) Present(fb Framebuffer) error {
	w.fb = fb
	w.dirty = true
	return nil
}

// WaitNextTick is a no-op; ebiten paces Update at the configured TPS.
func (w *Window) WaitNextTick(context.Context) error { return nil }

// Run opens the window and blocks until it closes.
func (w *Window) Run(ctx context.Context, frame func() error) error {
	w.ctx = ctx
	w.frame = frame

	ebiten.SetWindowTitle(w.cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.cfg.TPS)

	err := ebiten.RunGame(&windowGame{w: w})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type windowGame struct {
	w *Window
}

func (g *windowGame) Update() error {
	if g.w.QuitRequested() {
		return ebiten.Termination
	}
	if g.w.frame == nil {
		return nil
	}
	return g.w.frame()
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	w := g.w
	fb := w.fb
	if fb == nil {
		return
	}
	if w.img == nil || w.img.Bounds().Dx() != fb.Width() || w.img.Bounds().Dy() != fb.Height() {
		w.img = image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
		if w.fbImg != nil {
			w.fbImg.Deallocate()
		}
		w.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
		w.dirty = true
	}
	if w.dirty {
		w.scratch = copyRGBA(w.img, fb, w.scratch)
		w.fbImg.WritePixels(w.img.Pix)
		w.dirty = false
	}
	screen.DrawImage(w.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.w.fb != nil {
		return g.w.fb.Width(), g.w.fb.Height()
	}
	return g.w.cfg.Width, g.w.cfg.Height
}
