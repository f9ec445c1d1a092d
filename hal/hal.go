// Package hal is the viewer's contact point with the outside world: a pixel
// framebuffer and a platform that paces frames, presents them and reports
// when the user asked to quit.
package hal

import (
	"context"
	"errors"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
}

// Platform paces and shows frames.
//
// Per frame the caller checks QuitRequested, produces a frame, hands it to
// Present, then blocks in WaitNextTick until the next frame boundary.
type Platform interface {
	QuitRequested() bool
	Present(fb Framebuffer) error
	WaitNextTick(ctx context.Context) error
}

// Runner is a Platform that owns the frame loop. Run calls frame once per
// tick until the platform quits or frame returns an error.
type Runner interface {
	Platform
	Run(ctx context.Context, frame func() error) error
}

// Loop drives frame on p: quit check, frame, wait. It returns nil when p
// reports a quit request.
func Loop(ctx context.Context, p Platform, frame func() error) error {
	for {
		if p.QuitRequested() {
			return nil
		}
		if err := frame(); err != nil {
			return err
		}
		if err := p.WaitNextTick(ctx); err != nil {
			return err
		}
	}
}
