package breath

// Durations holds the editable per-phase durations in seconds. Values are
// kept strictly inside (min, max); steps that would leave the interval are
// ignored. The engine reads the current value every tick, so edits made
// mid-phase take effect on the next frame.
type Durations struct {
	in  float64
	out float64
	min float64
	max float64
}

// NewDurations creates a Durations with the given initial values and the
// exclusive bounds (min, max). Initial values outside the bounds are clamped
// to the nearest representable step inside them.
func NewDurations(in, out, min, max float64) *Durations {
	d := &Durations{min: min, max: max}
	d.in = d.sanitize(in)
	d.out = d.sanitize(out)
	return d
}

func (d *Durations) sanitize(v float64) float64 {
	if v <= d.min || v >= d.max {
		return (d.min + d.max) / 2
	}
	return v
}

// Get returns the current duration for the phase, in seconds.
func (d *Durations) Get(p Phase) float64 {
	if p == PhaseIn {
		return d.in
	}
	return d.out
}

// Increment adjusts the duration for the phase by delta seconds. If the
// adjusted value would leave the open interval (min, max) the call is a
// silent no-op; repeat-fire callers re-check the bound on every call.
func (d *Durations) Increment(p Phase, delta float64) {
	next := d.Get(p) + delta
	if next <= d.min || next >= d.max {
		return
	}
	if p == PhaseIn {
		d.in = next
	} else {
		d.out = next
	}
}
