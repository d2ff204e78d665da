// Package game hosts the ebiten front end: it maps input onto engine
// operations, ticks the engine once per frame and hands the resulting
// progress to the configured renderer.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/bigmistqke/in-out/internal/breath"
	"github.com/bigmistqke/in-out/internal/config"
	"github.com/bigmistqke/in-out/internal/tone"
)

type Game struct {
	log       zerolog.Logger
	durations *breath.Durations
	engine    *breath.Engine
	cues      *tone.Player
	renderer  ProgressRenderer

	startPause *button
	reset      *button
	inMinus    *button
	inPlus     *button
	outMinus   *button
	outPlus    *button

	prevMode breath.Mode
	prevKey  map[ebiten.Key]bool
}

func New(log zerolog.Logger, durations *breath.Durations, engine *breath.Engine, cues *tone.Player, renderer ProgressRenderer) *Game {
	g := &Game{
		log:       log,
		durations: durations,
		engine:    engine,
		cues:      cues,
		renderer:  renderer,
		prevKey:   map[ebiten.Key]bool{},
	}

	const (
		pad   = 20
		small = 36
		row1  = config.WindowHeight - 170
		row2  = config.WindowHeight - 120
		row3  = config.WindowHeight - 60
	)
	g.inMinus = newRepeatButton(pad, row1, small, small, "-")
	g.inPlus = newRepeatButton(pad+small+8, row1, small, small, "+")
	g.outMinus = newRepeatButton(pad, row2, small, small, "-")
	g.outPlus = newRepeatButton(pad+small+8, row2, small, small, "+")
	g.startPause = newButton(pad, row3, config.ButtonWidth, config.ButtonHeight, "Start/Pause")
	g.reset = newButton(pad+config.ButtonWidth+12, row3, config.ButtonWidth, config.ButtonHeight, "Reset")

	engine.SetPhaseListener(g.onPhaseChange)
	return g
}

func (g *Game) onPhaseChange(p breath.Phase) {
	freq := config.ToneFreqIn
	if p == breath.PhaseOut {
		freq = config.ToneFreqOut
	}
	g.cues.Play(freq)
	g.log.Debug().Stringer("phase", p).Float64("freq", freq).Msg("phase change")
}

func (g *Game) Update() error {
	now := time.Now()

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.startOrToggle()
	}
	if justPressed(ebiten.KeyR) {
		g.engine.Reset()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.startPause.update(now) {
		g.startOrToggle()
	}
	if g.reset.update(now) {
		g.engine.Reset()
	}
	if g.inMinus.update(now) {
		g.durations.Increment(breath.PhaseIn, -config.DurationStep)
	}
	if g.inPlus.update(now) {
		g.durations.Increment(breath.PhaseIn, config.DurationStep)
	}
	if g.outMinus.update(now) {
		g.durations.Increment(breath.PhaseOut, -config.DurationStep)
	}
	if g.outPlus.update(now) {
		g.durations.Increment(breath.PhaseOut, config.DurationStep)
	}

	g.engine.Tick(now)

	if mode := g.engine.Mode(); mode != g.prevMode {
		if mode == breath.ModeCompleted {
			g.log.Info().Msg("session completed")
		}
		g.prevMode = mode
	}
	return nil
}

func (g *Game) startOrToggle() {
	switch g.engine.Mode() {
	case breath.ModeInitial:
		g.engine.Start()
		g.log.Info().
			Float64("in", g.durations.Get(breath.PhaseIn)).
			Float64("out", g.durations.Get(breath.PhaseOut)).
			Msg("session started")
	case breath.ModePlaying, breath.ModePaused:
		g.engine.TogglePause()
	}
	// Completed is terminal; only Reset leaves it.
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.engine.Progress())

	g.inMinus.draw(screen)
	g.inPlus.draw(screen)
	g.outMinus.draw(screen)
	g.outPlus.draw(screen)
	g.startPause.draw(screen)
	g.reset.draw(screen)

	inLabel := fmt.Sprintf("in  %.1fs", g.durations.Get(breath.PhaseIn))
	outLabel := fmt.Sprintf("out %.1fs", g.durations.Get(breath.PhaseOut))
	ebitenutil.DebugPrintAt(screen, inLabel, g.inPlus.x+g.inPlus.w+12, g.inMinus.y+10)
	ebitenutil.DebugPrintAt(screen, outLabel, g.outPlus.x+g.outPlus.w+12, g.outMinus.y+10)

	if status := g.statusText(); status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// statusText maps the session mode to the line shown at the top of the
// window: the remaining count while paused, a completion notice after the
// last breath, a running count while playing.
func (g *Game) statusText() string {
	switch g.engine.Mode() {
	case breath.ModePaused:
		return fmt.Sprintf("%d to go", g.engine.Remaining())
	case breath.ModeCompleted:
		return "Session Completed"
	case breath.ModePlaying:
		target := g.engine.Cycles() + g.engine.Remaining()
		return fmt.Sprintf("breath %d of %d", g.engine.Cycles()+1, target)
	default:
		return ""
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
