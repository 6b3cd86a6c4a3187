package engine

import (
	"math"

	"github.com/lixenwraith/cadence/parameter"
)

// Position is the animated state of one row at a given step value
type Position struct {
	// Trigger is the integer-valued count of completed multiples, floor(step/movement)
	Trigger float64

	// Animated is Trigger plus the smoothstep ease toward the next trigger.
	// Continuous in the step value: the ease reaches exactly 1 as the next
	// trigger lands, where Trigger increments and the ease resets to 0
	Animated float64

	// Displacement is the head position along the lane, Animated * movement * unitSize
	Displacement float64
}

// ComputePosition evaluates a row's animated trigger count and displacement.
// movement must be >= 1; callers guard against zero
func ComputePosition(step float64, movement int, unitSize float64) Position {
	v := float64(movement)

	trigger := math.Floor(step / v)
	nextTriggerAt := (trigger + 1) * v
	distance := nextTriggerAt - step

	animated := trigger
	if distance < parameter.TransitionWidth {
		t := 1 - distance/parameter.TransitionWidth
		animated = trigger + t*t*(3-2*t)
	}

	return Position{
		Trigger:      trigger,
		Animated:     animated,
		Displacement: animated * v * unitSize,
	}
}
