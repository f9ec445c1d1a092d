// Package config holds the viewer's run-time settings: window size, frame
// rate, camera and the physics rule with its parameters.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"meshview/physics"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

// Preset names.
const (
	ModeCompression     = "compression"
	ModeCompressionFast = "compression-fast"
	ModeBounce          = "bounce"
)

// Config is the complete viewer configuration.
type Config struct {
	Mode           string               `yaml:"mode"`
	Width          int                  `yaml:"width"`
	Height         int                  `yaml:"height"`
	FPS            int                  `yaml:"fps"`
	CameraDistance float64              `yaml:"camera_distance"`
	HUD            bool                 `yaml:"hud"`
	Compression    physics.Compression  `yaml:"compression"`
	Bounce         physics.BounceParams `yaml:"bounce"`
}

var presets = map[string]Config{
	ModeCompression: {
		Mode:           ModeCompression,
		Width:          800,
		Height:         600,
		FPS:            60,
		CameraDistance: -200,
		HUD:            true,
		Compression:    physics.Compression{Speed: 0.1},
		Bounce:         physics.DefaultBounceParams(),
	},
	ModeCompressionFast: {
		Mode:           ModeCompressionFast,
		Width:          800,
		Height:         600,
		FPS:            14400,
		CameraDistance: -200,
		HUD:            true,
		Compression:    physics.Compression{Speed: 200.6},
		Bounce:         physics.DefaultBounceParams(),
	},
	ModeBounce: {
		Mode:           ModeBounce,
		Width:          800,
		Height:         600,
		FPS:            3,
		CameraDistance: -200,
		HUD:            true,
		Compression:    physics.Compression{Speed: 0.1},
		Bounce: physics.BounceParams{
			Ground:         -2,
			Gravity:        4,
			SpringConstant: 10,
			Damping:        0.2,
			MaxCompression: 0.6,
			MaxExtension:   0.7,
		},
	},
}

// Modes lists the preset names in sorted order.
func Modes() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Preset returns the named preset.
func Preset(mode string) (Config, error) {
	c, ok := presets[mode]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown mode %q (have %v)", ErrInvalid, mode, Modes())
	}
	return c, nil
}

// Default is the compression preset.
func Default() Config {
	return presets[ModeCompression]
}

// Load reads a YAML file. Fields not set in the file keep the values of the
// preset named by its mode (compression when absent).
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return c, nil
}

// Decode is Load for an already open source.
func Decode(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	var head struct {
		Mode string `yaml:"mode"`
	}
	if err := yaml.Unmarshal(raw, &head); err != nil {
		return Config{}, err
	}
	if head.Mode == "" {
		head.Mode = ModeCompression
	}
	c, err := Preset(head.Mode)
	if err != nil {
		return Config{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	if _, ok := presets[c.Mode]; !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	}
	return nil
}

// Kind is the physics rule the mode runs.
func (c Config) Kind() physics.Kind {
	if c.Mode == ModeBounce {
		return physics.KindBounce
	}
	return physics.KindCompression
}

// Variant returns the physics rule and parameters for c.
func (c Config) Variant() physics.Variant {
	return physics.Variant{
		Kind:        c.Kind(),
		Compression: c.Compression,
		Bounce:      c.Bounce,
	}
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
