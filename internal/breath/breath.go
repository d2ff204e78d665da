// Package breath implements the breath-cycle engine: a frame-driven state
// machine that integrates phase progress from wall-clock deltas, counts
// completed breaths and reports phase transitions.
package breath

// Phase is one of the two breathing sub-states.
type Phase int

const (
	PhaseIn Phase = iota
	PhaseOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIn:
		return "in"
	case PhaseOut:
		return "out"
	default:
		return "unknown"
	}
}

// Mode is the session-level state.
type Mode int

const (
	ModeInitial Mode = iota
	ModePlaying
	ModePaused
	ModeCompleted
)

func (m Mode) String() string {
	switch m {
	case ModeInitial:
		return "initial"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
