// Package gain provides amplitude and gain-related DSP operations.
package gain

import "math"

// Constants for dB conversion
const (
	// MinDB is the minimum dB value (effectively -infinity)
	MinDB = -200.0
)

// Compensation limits
const (
	// MinCompensationSum floors the divisor so near-silent partials cannot
	// request unbounded gain.
	MinCompensationSum = 0.1

	// MaxCompensationGain is the ceiling of the corrective gain.
	MaxCompensationGain = 1.0
)

// Compensation returns the corrective gain for a summed partial amplitude:
//
//	min(1, amount / max(0.1, sum))
//
// The result is always in [0, 1]. Negative or NaN amount gives 0.
func Compensation(sum, amount float32) float32 {
	if !(amount > 0) {
		return 0
	}
	if !(sum > MinCompensationSum) {
		sum = MinCompensationSum
	}
	g := (1.0 / sum) * amount
	if g > MaxCompensationGain {
		return MaxCompensationGain
	}
	return g
}

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// Apply applies a gain factor to a sample.
func Apply(sample, gain float32) float32 {
	return sample * gain
}
