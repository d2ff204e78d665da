package breath

import (
	"testing"
	"time"
)

func newTestEngine(target int) (*Engine, *Durations) {
	d := NewDurations(4, 4, 0, 100)
	e := NewEngine(d, target)
	return e, d
}

// at converts a millisecond offset into a tick timestamp.
func at(ms int) time.Time {
	return time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
}

func tickN(e *Engine, fromMs, stepMs, n int) {
	for i := 0; i < n; i++ {
		e.Tick(at(fromMs + i*stepMs))
	}
}

func TestStartOnlyFromInitial(t *testing.T) {
	e, _ := newTestEngine(10)
	if e.Mode() != ModeInitial {
		t.Fatalf("new engine mode = %v, want initial", e.Mode())
	}
	e.Start()
	if e.Mode() != ModePlaying {
		t.Fatalf("mode after Start = %v, want playing", e.Mode())
	}
	e.TogglePause()
	e.Start() // no-op from paused
	if e.Mode() != ModePaused {
		t.Fatalf("Start from paused changed mode to %v", e.Mode())
	}
}

func TestTogglePauseIgnoredBeforeStart(t *testing.T) {
	e, _ := newTestEngine(10)
	e.TogglePause()
	if e.Mode() != ModeInitial {
		t.Fatalf("TogglePause from initial changed mode to %v", e.Mode())
	}
}

func TestFirstTickEstablishesBaseline(t *testing.T) {
	e, _ := newTestEngine(10)
	e.Start()
	e.Tick(at(0))
	if e.Progress() != 0 {
		t.Fatalf("progress after baseline tick = %v, want 0", e.Progress())
	}
	e.Tick(at(1000))
	if got, want := e.Progress(), 0.25; got != want {
		t.Fatalf("progress after 1s of a 4s inhale = %v, want %v", got, want)
	}
}

func TestPhaseFlipAtBoundary(t *testing.T) {
	e, _ := newTestEngine(10)
	var flips []Phase
	e.SetPhaseListener(func(p Phase) { flips = append(flips, p) })

	e.Start()
	// 4s inhale sampled every 500ms: flips exactly on the t=4000 tick.
	tickN(e, 0, 500, 8)
	if len(flips) != 0 {
		t.Fatalf("flip before boundary: %v", flips)
	}
	if e.Phase() != PhaseIn {
		t.Fatalf("phase before boundary = %v", e.Phase())
	}
	e.Tick(at(4000))
	if e.Phase() != PhaseOut {
		t.Fatalf("phase at boundary = %v, want out", e.Phase())
	}
	if len(flips) != 1 || flips[0] != PhaseOut {
		t.Fatalf("flips = %v, want exactly one flip to out", flips)
	}
}

func TestSingleFlipOnHugeDelta(t *testing.T) {
	e, _ := newTestEngine(10)
	flips := 0
	e.SetPhaseListener(func(Phase) { flips++ })

	e.Start()
	e.Tick(at(0))
	// One frame spanning several full phases still flips exactly once.
	e.Tick(at(60000))
	if flips != 1 {
		t.Fatalf("flips after huge delta = %d, want 1", flips)
	}
	if e.Phase() != PhaseOut {
		t.Fatalf("phase = %v, want out", e.Phase())
	}
	if p := e.Progress(); p < 0 || p > 1 {
		t.Fatalf("progress out of range after huge delta: %v", p)
	}
}

func TestProgressStaysInRange(t *testing.T) {
	e, _ := newTestEngine(100)
	e.Start()
	// Irregular frame pacing across many phase flips.
	steps := []int{0, 16, 700, 33, 2500, 16, 16, 9000, 50, 125, 4000, 16}
	now := 0
	for i := 0; i < 200; i++ {
		now += steps[i%len(steps)]
		e.Tick(at(now))
		if p := e.Progress(); p < 0 || p > 1 {
			t.Fatalf("progress %v out of [0,1] at t=%dms", p, now)
		}
	}
}

func TestPauseResumeWithoutDrift(t *testing.T) {
	e, _ := newTestEngine(10)
	e.Start()
	e.Tick(at(0))
	e.Tick(at(1000))
	if e.Progress() != 0.25 {
		t.Fatalf("progress before pause = %v, want 0.25", e.Progress())
	}

	e.TogglePause()
	if e.Mode() != ModePaused {
		t.Fatalf("mode = %v, want paused", e.Mode())
	}
	e.Tick(at(2000)) // ignored while paused
	if e.Progress() != 0.25 {
		t.Fatalf("progress advanced while paused: %v", e.Progress())
	}

	// Resume an hour later: the first tick is a fresh baseline, the gap is
	// never integrated.
	e.TogglePause()
	e.Tick(at(3_600_000))
	if e.Progress() != 0.25 {
		t.Fatalf("post-resume baseline tick advanced progress to %v", e.Progress())
	}
	e.Tick(at(3_601_000))
	if e.Progress() != 0.5 {
		t.Fatalf("progress after resumed second = %v, want 0.5", e.Progress())
	}
}

func TestDurationEditMidPhase(t *testing.T) {
	e, d := newTestEngine(10)
	e.Start()
	e.Tick(at(0))
	e.Tick(at(1000))
	if e.Progress() != 0.25 {
		t.Fatalf("progress = %v, want 0.25", e.Progress())
	}

	// Halve the inhale: progress is kept, only the rate changes.
	d.Increment(PhaseIn, -2)
	e.Tick(at(1500))
	if e.Progress() != 0.5 {
		t.Fatalf("progress after edit = %v, want 0.5", e.Progress())
	}
}

func TestZeroDurationSkipsIntegration(t *testing.T) {
	d := NewDurations(4, 4, -1, 100)
	e := NewEngine(d, 10)
	e.Start()
	e.Tick(at(0))
	d.Increment(PhaseIn, -4) // duration 0, legal under the widened bound
	e.Tick(at(1000))
	if e.Progress() != 0 {
		t.Fatalf("integration ran with zero duration: progress = %v", e.Progress())
	}
	d.Increment(PhaseIn, 2)
	e.Tick(at(2000))
	if e.Progress() != 0.5 {
		t.Fatalf("progress after duration restored = %v, want 0.5", e.Progress())
	}
}

func TestCycleCountAndCompletion(t *testing.T) {
	target := 3
	e, _ := newTestEngine(target)
	var flips []Phase
	e.SetPhaseListener(func(p Phase) { flips = append(flips, p) })

	e.Start()
	e.Tick(at(0))
	now := 0
	// Each full breath is 8s (4s in + 4s out); drive whole-phase deltas.
	for i := 0; i < target; i++ {
		now += 4000
		e.Tick(at(now)) // completes inhale
		now += 4000
		e.Tick(at(now)) // completes exhale, re-enters PhaseIn
	}

	if e.Mode() != ModeCompleted {
		t.Fatalf("mode after %d breaths = %v, want completed", target, e.Mode())
	}
	if e.Cycles() != 0 {
		t.Fatalf("cycles after completion = %d, want 0", e.Cycles())
	}
	if len(flips) != target*2 {
		t.Fatalf("flip count = %d, want %d", len(flips), target*2)
	}

	// Completed is terminal: ticking and toggling do nothing.
	e.Tick(at(now + 1000))
	e.TogglePause()
	if e.Mode() != ModeCompleted {
		t.Fatalf("completed mode left via %v", e.Mode())
	}

	e.Reset()
	if e.Mode() != ModeInitial || e.Phase() != PhaseIn || e.Progress() != 0 {
		t.Fatalf("reset state = %v/%v/%v", e.Mode(), e.Phase(), e.Progress())
	}
}

func TestCompletionOnExactlyNthEntry(t *testing.T) {
	e, _ := newTestEngine(2)
	e.Start()
	e.Tick(at(0))
	e.Tick(at(4000))
	e.Tick(at(8000)) // first re-entry into PhaseIn
	if e.Mode() != ModePlaying {
		t.Fatalf("completed one breath early: mode = %v", e.Mode())
	}
	if e.Cycles() != 1 {
		t.Fatalf("cycles = %d, want 1", e.Cycles())
	}
	e.Tick(at(12000))
	e.Tick(at(16000)) // second re-entry
	if e.Mode() != ModeCompleted {
		t.Fatalf("mode after second breath = %v, want completed", e.Mode())
	}
}

func TestCueFiresOncePerBoundary(t *testing.T) {
	e, _ := newTestEngine(10)
	flips := 0
	e.SetPhaseListener(func(Phase) { flips++ })

	e.Start()
	e.Tick(at(0))
	// Many small frames around the boundary: still a single event.
	tickN(e, 16, 16, 300) // 300 frames * 16ms = 4.8s, crosses t=4000 once
	if flips != 1 {
		t.Fatalf("flips around single boundary = %d, want 1", flips)
	}
}
