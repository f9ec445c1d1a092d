//go:build !cgo

package hal

import (
	"context"
	"errors"
)

type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// Window without cgo cannot open; use the headless runner instead.
type Window struct{}

func NewWindow(WindowConfig) *Window { return &Window{} }

func (w *Window) QuitRequested() bool                { return true }
func (w *Window) Present(Framebuffer) error          { return ErrNotImplemented }
func (w *Window) WaitNextTick(context.Context) error { return nil }

func (w *Window) Run(context.Context, func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or pass --headless")
}
