// Package app runs the viewer's frame loop: quit check, one physics tick,
// one wireframe render, present, wait.
package app

import (
	"context"
	"fmt"

	"meshview/hal"
	"meshview/internal/config"
	"meshview/mesh"
	"meshview/physics"
	"meshview/wire"

	"github.com/rs/zerolog"
)

// Driver owns the mesh for the lifetime of the process and threads it
// through the physics stepper and the renderer once per frame.
type Driver struct {
	platform hal.Platform
	fb       hal.Framebuffer
	target   *wire.RGB565Target
	renderer *wire.Renderer
	hud      *hal.HUD

	mesh *mesh.Mesh
	step physics.Stepper
	mode string

	tick  uint64
	stats wire.Stats

	log     zerolog.Logger
	tickLog zerolog.Logger
}

// New binds the physics rule selected by cfg to m. Bounce state snapshots
// m's heights here, so m must be in its rest pose.
func New(p hal.Platform, m *mesh.Mesh, cfg config.Config, log zerolog.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("app: nil mesh")
	}
	step, err := cfg.Variant().New(m)
	if err != nil {
		return nil, err
	}

	fb := hal.NewFramebuffer(cfg.Width, cfg.Height)
	proj := wire.Projector{Width: cfg.Width, Height: cfg.Height, CameraDistance: cfg.CameraDistance}

	d := &Driver{
		platform: p,
		fb:       fb,
		target: &wire.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		renderer: wire.NewRenderer(proj),
		mesh:     m,
		step:     step,
		mode:     cfg.Mode,
		log:      log,
		tickLog:  log.Sample(&zerolog.BasicSampler{N: uint32(cfg.FPS)}),
	}
	if cfg.HUD {
		d.hud = hal.NewHUD()
	}

	lo, hi := m.Bounds()
	log.Info().
		Str("mode", cfg.Mode).
		Str("physics", step.Name()).
		Int("vertices", len(m.Vertices)).
		Int("faces", len(m.Faces)).
		Interface("min", lo).
		Interface("max", hi).
		Msg("scene ready")
	return d, nil
}

// Frame advances the physics by one tick, renders and presents the result.
func (d *Driver) Frame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(d.tick, r)
		}
	}()

	if err := d.step.Step(d.mesh); err != nil {
		return fmt.Errorf("tick %d: %s: %w", d.tick+1, d.step.Name(), err)
	}
	d.tick++

	d.stats = d.renderer.Render(d.target, d.mesh)
	if d.hud != nil {
		d.hud.Draw(d.fb, fmt.Sprintf("%s  tick %d  v %d  f %d", d.mode, d.tick, len(d.mesh.Vertices), len(d.mesh.Faces)))
	}

	d.tickLog.Debug().
		Uint64("tick", d.tick).
		Int("edges", d.stats.Edges).
		Int("skipped", d.stats.Skipped).
		Msg("frame")

	return d.platform.Present(d.fb)
}

// Run drives frames until the platform quits or a frame fails.
func (d *Driver) Run(ctx context.Context) error {
	var err error
	if r, ok := d.platform.(hal.Runner); ok {
		err = r.Run(ctx, d.Frame)
	} else {
		err = hal.Loop(ctx, d.platform, d.Frame)
	}
	if err != nil {
		return err
	}
	d.log.Info().Uint64("ticks", d.tick).Msg("stopped")
	return nil
}

func (d *Driver) Tick() uint64                 { return d.tick }
func (d *Driver) Mesh() *mesh.Mesh             { return d.mesh }
func (d *Driver) Stepper() physics.Stepper     { return d.step }
func (d *Driver) Framebuffer() hal.Framebuffer { return d.fb }
func (d *Driver) Stats() wire.Stats            { return d.stats }
