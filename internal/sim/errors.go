package sim

import "errors"

var (
	// ErrDayInactive is returned when Tick is called after the day ended.
	// Callers should begin a new day instead.
	ErrDayInactive = errors.New("sim: day is inactive")

	// ErrInvariant reports corrupted entity state, such as a mover flagged
	// in transit whose target equals its current tile.
	ErrInvariant = errors.New("sim: invariant violated")

	ErrNoPendingConfrontation = errors.New("sim: no confrontation pending")
	ErrResolutionPending      = errors.New("sim: confrontation awaiting resolution")
	ErrGameOver               = errors.New("sim: no lives remaining")
)
