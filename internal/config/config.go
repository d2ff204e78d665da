package config

import "time"

const (
	WindowWidth  = 420
	WindowHeight = 640

	// Session
	BreathesPerSession = 10

	// Duration editing (seconds); bounds are exclusive
	DefaultInSeconds  = 4.0
	DefaultOutSeconds = 4.0
	DurationStep      = 0.5
	DurationMin       = 0.0
	DurationMax       = 100.0

	// Hold-to-repeat interval for the +/- buttons
	RepeatInterval = 250 * time.Millisecond

	// Cue tones, Hz; the "out" cue is the higher of the two
	ToneFreqIn  = 440.0
	ToneFreqOut = 660.0

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
)
