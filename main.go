package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"

	"github.com/bigmistqke/in-out/internal/applog"
	"github.com/bigmistqke/in-out/internal/breath"
	"github.com/bigmistqke/in-out/internal/config"
	"github.com/bigmistqke/in-out/internal/game"
	"github.com/bigmistqke/in-out/internal/storage"
	"github.com/bigmistqke/in-out/internal/tone"
)

const appName = "in-out"

func main() {
	rendererFlag := flag.String("renderer", "", "progress renderer: bar or shader (overrides settings)")
	settingsFlag := flag.String("settings", "", "path to the settings file")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := applog.Setup(*debugFlag)

	if err := run(log, *rendererFlag, *settingsFlag); err != nil {
		log.Error().Err(err).Msg("startup failed")
		_ = zenity.Error(err.Error(), zenity.Title("in-out"))
		os.Exit(1)
	}
}

func run(log zerolog.Logger, rendererName, settingsPath string) error {
	if settingsPath == "" {
		path, err := storage.DefaultPath(appName)
		if err != nil {
			return err
		}
		settingsPath = path
	}

	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		// A broken settings file should not keep the app from starting.
		log.Warn().Err(err).Str("path", settingsPath).Msg("using default settings")
	}
	if rendererName != "" {
		settings.Renderer = rendererName
	}

	durations := breath.NewDurations(settings.InSeconds, settings.OutSeconds, config.DurationMin, config.DurationMax)
	engine := breath.NewEngine(durations, settings.BreathesPerSession)
	cues := tone.NewPlayer(log)

	renderer, err := newRenderer(settings.Renderer)
	if err != nil {
		return err
	}
	log.Info().Str("renderer", settings.Renderer).Int("breathes", settings.BreathesPerSession).Msg("starting")

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("in-out - Space: start/pause, R: reset, Esc/Q: quit")

	g := game.New(log, durations, engine, cues, renderer)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	settings.InSeconds = durations.Get(breath.PhaseIn)
	settings.OutSeconds = durations.Get(breath.PhaseOut)
	if err := storage.SaveSettings(settingsPath, settings); err != nil {
		log.Warn().Err(err).Msg("settings not saved")
	}
	return nil
}

func newRenderer(name string) (game.ProgressRenderer, error) {
	switch name {
	case "bar":
		return game.NewBarRenderer(), nil
	case "shader":
		return game.NewShaderRenderer()
	default:
		return nil, fmt.Errorf("unknown renderer %q (want bar or shader)", name)
	}
}
