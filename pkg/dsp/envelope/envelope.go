// Package envelope provides envelope generators for audio synthesis
package envelope

import (
	"math"

	"github.com/chewxy/math32"
)

// Stage represents the current envelope stage
type Stage int

const (
	// StageHold is the linear decay phase that settles on the hold level
	StageHold Stage = iota
	// StageAttack is the self-accelerating rise towards full volume
	StageAttack
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageAttack:
		return "Attack"
	case StageHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// Floor is the smallest volume the attack curve starts from. The attack step
// scales with volume^0.25, so it would never leave zero on its own.
const Floor = 1e-4

// Bell implements the two-phase volume envelope shared by every partial of the
// bell. Attack grows by volume^0.25 * attack per sample until it passes 1,
// then the envelope decays linearly by decay per sample and rests on the
// hold level.
//
// Rates are per sample, not per second.
type Bell struct {
	attack float32
	decay  float32
	hold   float32

	stage  Stage
	volume float32
}

// New creates a new envelope in the hold stage, seeded at Floor
func New() *Bell {
	return &Bell{
		stage:  StageHold,
		volume: Floor,
	}
}

// SetAttack sets the attack rate
func (e *Bell) SetAttack(rate float32) {
	e.attack = nonNegative(rate)
}

// SetDecay sets the linear decay per sample
func (e *Bell) SetDecay(rate float32) {
	e.decay = nonNegative(rate)
}

// SetHold sets the hold level (0-1)
func (e *Bell) SetHold(level float32) {
	e.hold = math32.Min(1, nonNegative(level))
}

// SetRates sets all parameters at once
func (e *Bell) SetRates(attack, decay, hold float32) {
	e.SetAttack(attack)
	e.SetDecay(decay)
	e.SetHold(hold)
}

// Trigger enters the attack stage. The current volume is kept, so a retrigger
// while the bell is still ringing rises from where it is.
func (e *Bell) Trigger() {
	e.stage = StageAttack
}

// Reset returns the envelope to the hold stage at Floor
func (e *Bell) Reset() {
	e.stage = StageHold
	e.volume = Floor
}

// Volume returns the current envelope value
func (e *Bell) Volume() float32 {
	return e.volume
}

// Stage returns the current envelope stage
func (e *Bell) Stage() Stage {
	return e.stage
}

// IsAttacking reports whether the envelope is in the attack stage
func (e *Bell) IsAttacking() bool {
	return e.stage == StageAttack
}

// Next advances the envelope by one sample and returns the new volume
func (e *Bell) Next() float32 {
	switch e.stage {
	case StageAttack:
		v := e.volume
		if v < Floor {
			v = Floor
		}
		// v^0.25
		e.volume = v + math32.Sqrt(math32.Sqrt(v))*e.attack
		if e.volume > 1.0 {
			e.volume = 1.0
			e.stage = StageHold
		}

	case StageHold:
		if e.volume <= e.hold {
			e.volume = e.hold
		} else {
			e.volume -= e.decay
			if e.volume < e.hold {
				e.volume = e.hold
			}
		}
	}

	return e.volume
}

// nonNegative maps negative and NaN values to 0 and +Inf to MaxFloat32
func nonNegative(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if math32.IsInf(x, 1) {
		return math.MaxFloat32
	}
	return x
}
