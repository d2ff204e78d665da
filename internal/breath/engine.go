package breath

import "time"

// Engine owns the session state: mode, phase, normalized progress and the
// completed-cycle count. It is driven by Tick, called once per animation
// frame with the frame's wall-clock timestamp, and is single-writer: all
// mutation happens inside the frame callback.
type Engine struct {
	durations *Durations
	target    int

	mode     Mode
	phase    Phase
	progress float64
	cycles   int

	prev    time.Time
	hasPrev bool

	onPhase func(Phase)
}

// NewEngine creates an engine in ModeInitial reading its phase durations
// from d. The session completes on the target-th entry into PhaseIn.
func NewEngine(d *Durations, target int) *Engine {
	if target <= 0 {
		target = 1
	}
	return &Engine{durations: d, target: target}
}

// SetPhaseListener registers fn to be called exactly once per phase flip,
// with the phase being entered.
func (e *Engine) SetPhaseListener(fn func(Phase)) { e.onPhase = fn }

func (e *Engine) Mode() Mode        { return e.mode }
func (e *Engine) Phase() Phase      { return e.phase }
func (e *Engine) Progress() float64 { return e.progress }
func (e *Engine) Cycles() int       { return e.cycles }

// Remaining reports how many breaths are left before the session completes.
func (e *Engine) Remaining() int { return e.target - e.cycles }

// Start begins the session. Valid only from ModeInitial; otherwise a no-op.
func (e *Engine) Start() {
	if e.mode != ModeInitial {
		return
	}
	e.mode = ModePlaying
}

// TogglePause flips between ModePlaying and ModePaused. Entering Paused
// clears the delta baseline so that resuming never integrates the paused
// wall-clock gap. A no-op in any other mode.
func (e *Engine) TogglePause() {
	switch e.mode {
	case ModePlaying:
		e.mode = ModePaused
		e.hasPrev = false
	case ModePaused:
		e.mode = ModePlaying
	}
}

// Reset returns the engine to ModeInitial with a fresh session. This is the
// only way out of ModeCompleted.
func (e *Engine) Reset() {
	e.mode = ModeInitial
	e.phase = PhaseIn
	e.progress = 0
	e.cycles = 0
	e.hasPrev = false
}

// Tick advances the engine by the wall-clock delta since the previous tick.
// The first tick of a run only establishes the delta baseline. Durations are
// read fresh every tick, so a mid-phase edit changes the integration rate
// immediately. A tick flips phase at most once, no matter how large the
// delta.
func (e *Engine) Tick(now time.Time) {
	if e.mode != ModePlaying {
		return
	}
	if !e.hasPrev {
		e.prev = now
		e.hasPrev = true
		return
	}
	delta := now.Sub(e.prev)
	e.prev = now

	duration := e.durations.Get(e.phase)
	if duration <= 0 {
		// Configuration race: skip integration rather than divide by zero.
		return
	}

	if e.phase == PhaseIn {
		e.progress += delta.Seconds() / duration
		if e.progress >= 1 {
			e.progress = 1
			e.flip(PhaseOut)
		}
		return
	}

	e.progress -= delta.Seconds() / duration
	if e.progress <= 0 {
		e.progress = 0
		e.flip(PhaseIn)
		e.cycles++
		if e.cycles == e.target {
			e.mode = ModeCompleted
			e.cycles = 0
			e.hasPrev = false
		}
	}
}

func (e *Engine) flip(p Phase) {
	e.phase = p
	if e.onPhase != nil {
		e.onPhase(p)
	}
}
