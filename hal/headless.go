package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after this many presented frames; 0 runs until cancelled
}

// Headless paces frames with a ticker and presents nothing. The last
// presented framebuffer is kept for snapshots.
type Headless struct {
	cfg HeadlessConfig

	t        *time.Ticker
	quit     bool
	frames   uint64
	lastSeen Framebuffer
}

func NewHeadless(cfg HeadlessConfig) (*Headless, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if time.Second/time.Duration(cfg.Hz) <= 0 {
		return nil, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	return &Headless{cfg: cfg}, nil
}

func (h *Headless) QuitRequested() bool {
	return h.quit || (h.cfg.Ticks > 0 && h.frames >= h.cfg.Ticks)
}

func (h *Headless) Present(fb Framebuffer) error {
	h.frames++
	h.lastSeen = fb
	return nil
}

// WaitNextTick blocks until the next tick. Cancelling ctx does not fail the
// wait; it turns into a quit request.
func (h *Headless) WaitNextTick(ctx context.Context) error {
	if h.QuitRequested() {
		return nil
	}
	if h.t == nil {
		h.t = time.NewTicker(time.Second / time.Duration(h.cfg.Hz))
	}
	select {
	case <-ctx.Done():
		h.quit = true
	case <-h.t.C:
	}
	return nil
}

func (h *Headless) Run(ctx context.Context, frame func() error) error {
	defer h.stop()
	if err := ctx.Err(); err != nil {
		h.quit = true
	}
	return Loop(ctx, h, frame)
}

// Frames reports how many frames were presented.
func (h *Headless) Frames() uint64 { return h.frames }

// LastFrame returns the most recently presented framebuffer, or nil.
func (h *Headless) LastFrame() Framebuffer { return h.lastSeen }

func (h *Headless) stop() {
	if h.t != nil {
		h.t.Stop()
		h.t = nil
	}
}
