package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"time"

	"meshview/app"
	"meshview/hal"
	"meshview/internal/buildinfo"
	"meshview/internal/config"
	"meshview/mesh"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug   bool             `help:"Whether to enable debug logging."`

	Obj    string `arg:"" name:"obj" help:"Wavefront OBJ file to view." type:"existingfile"`
	Config string `help:"YAML scene configuration." short:"c" type:"existingfile"`
	Mode   string `help:"Physics preset (${modes}). Overrides the config file." short:"m"`

	Width          int      `help:"Window width in pixels."`
	Height         int      `help:"Window height in pixels."`
	FPS            int      `name:"fps" help:"Frame-rate cap."`
	CameraDistance *float64 `help:"Camera offset along Z."`
	HUD            bool     `name:"hud" help:"Draw the status line." default:"true" negatable:""`

	Headless bool   `help:"Run without a window."`
	Ticks    uint64 `help:"Stop after N frames in headless mode (0 = run until interrupted)."`
	Snapshot string `help:"Write the last headless frame to this PNG file." type:"path"`
	Dump     string `help:"Write the deformed mesh to this OBJ file on exit." type:"path"`
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("meshview"),
		kong.Description("Wireframe OBJ viewer with toy mesh physics."),
		kong.UsageOnError(),
		kong.Vars{
			"version": buildinfo.String(),
			"modes":   strings.Join(config.Modes(), ", "),
		},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	m, err := mesh.Load(CLI.Obj)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load mesh")
	}
	log.Info().Str("path", CLI.Obj).Int("vertices", len(m.Vertices)).Int("faces", len(m.Faces)).Msg("loaded mesh")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		platform hal.Runner
		headless *hal.Headless
	)
	if CLI.Headless {
		headless, err = hal.NewHeadless(hal.HeadlessConfig{Hz: cfg.FPS, Ticks: CLI.Ticks})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start headless runner")
		}
		platform = headless
	} else {
		platform = hal.NewWindow(hal.WindowConfig{
			Title:  "meshview: " + cfg.Mode,
			Width:  cfg.Width,
			Height: cfg.Height,
			TPS:    cfg.FPS,
		})
	}

	d, err := app.New(platform, m, cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up scene")
	}

	runErr := d.Run(ctx)
	var pe *app.PanicError
	if errors.As(runErr, &pe) {
		for _, line := range pe.StackLines() {
			log.Error().Msg(line)
		}
	}

	if CLI.Snapshot != "" && headless != nil && headless.LastFrame() != nil {
		if err := app.SaveSnapshot(CLI.Snapshot, headless.LastFrame()); err != nil {
			log.Error().Err(err).Msg("snapshot failed")
		} else {
			log.Info().Str("path", CLI.Snapshot).Msg("wrote snapshot")
		}
	}
	if CLI.Dump != "" {
		if err := app.DumpMesh(CLI.Dump, d.Mesh()); err != nil {
			log.Error().Err(err).Msg("mesh dump failed")
		} else {
			log.Info().Str("path", CLI.Dump).Msg("wrote mesh")
		}
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Uint64("tick", d.Tick()).Msg("viewer stopped")
	}
}

// loadConfig layers preset, config file and flags, in that order.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if CLI.Config != "" {
		c, err := config.Load(CLI.Config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = c
	}
	if CLI.Mode != "" && CLI.Mode != cfg.Mode {
		preset, err := config.Preset(CLI.Mode)
		if err != nil {
			return config.Config{}, err
		}
		// Switching mode replaces the timing and physics of the preset but
		// keeps what the file said about the window.
		preset.Width, preset.Height = cfg.Width, cfg.Height
		preset.CameraDistance = cfg.CameraDistance
		preset.HUD = cfg.HUD
		cfg = preset
	}
	if CLI.Width > 0 {
		cfg.Width = CLI.Width
	}
	if CLI.Height > 0 {
		cfg.Height = CLI.Height
	}
	if CLI.FPS > 0 {
		cfg.FPS = CLI.FPS
	}
	if CLI.CameraDistance != nil {
		cfg.CameraDistance = *CLI.CameraDistance
	}
	if !CLI.HUD {
		cfg.HUD = false
	}
	return cfg, cfg.Validate()
}
