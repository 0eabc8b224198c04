// Package oscillator provides phase accumulators and table-based waveforms
// evaluated from a normalized phase in [0, 1).
package oscillator

import (
	"github.com/chewxy/math32"
)

const (
	sinTableBits = 10
	sinTableSize = 1 << sinTableBits
	sinTableMask = sinTableSize - 1

	maxTruncate = 1 << 32
)

// sinTable holds one period of sine plus a guard point for interpolation
var sinTable [sinTableSize + 1]float32

func init() {
	for i := range sinTable {
		sinTable[i] = math32.Sin(2 * math32.Pi * float32(i) / sinTableSize)
	}
}

// Wrap discards the integer part of a phase, leaving it in [0, 1).
func Wrap(phase float32) float32 {
	if phase >= 0 && phase < maxTruncate {
		return phase - float32(uint32(phase))
	}
	phase -= math32.Floor(phase)
	if phase >= 1 || phase != phase {
		return 0
	}
	return phase
}

// Sin returns sin(2π·phase) for phase in [0, 1) using a linearly
// interpolated lookup table.
func Sin(phase float32) float32 {
	x := phase * sinTableSize
	i := int(x)
	frac := x - float32(i)
	i &= sinTableMask
	return sinTable[i] + frac*(sinTable[i+1]-sinTable[i])
}

// Parabolic returns a parabolic approximation of sin(2π·phase) for phase in
// [0, 1). Each half period is a single parabola reaching ±1 at the quarter
// points.
func Parabolic(phase float32) float32 {
	if phase < 0.5 {
		return 8 * phase * (1 - 2*phase)
	}
	p := phase - 0.5
	return -8 * p * (1 - 2*p)
}

// Phase is a normalized phase accumulator. It always stays in [0, 1).
type Phase struct {
	value float32
	inc   float32
}

// SetIncrement sets the per-sample phase advance (frequency / sample rate)
func (p *Phase) SetIncrement(inc float32) {
	p.inc = inc
}

// Increment returns the per-sample phase advance
func (p *Phase) Increment() float32 {
	return p.inc
}

// Value returns the current phase
func (p *Phase) Value() float32 {
	return p.value
}

// Reset returns the phase to 0
func (p *Phase) Reset() {
	p.value = 0
}

// Advance moves the phase forward by one sample
func (p *Phase) Advance() {
	p.value = Wrap(p.value + p.inc)
}

// Oscillator is a single phase accumulator clocked at a frequency
type Oscillator struct {
	sampleRate float32
	phase      Phase
}

// New creates a new oscillator
func New(sampleRate float32) *Oscillator {
	o := &Oscillator{sampleRate: sampleRate}
	o.SetFrequency(440.0)
	return o
}

// SetFrequency sets the oscillator frequency
func (o *Oscillator) SetFrequency(freq float32) {
	o.phase.SetIncrement(freq / o.sampleRate)
}

// Phase returns the current phase in [0, 1)
func (o *Oscillator) Phase() float32 {
	return o.phase.Value()
}

// Reset resets the oscillator phase to 0
func (o *Oscillator) Reset() {
	o.phase.Reset()
}

// Parabolic generates a parabolic sine sample and advances the phase
func (o *Oscillator) Parabolic() float32 {
	sample := Parabolic(o.phase.Value())
	o.phase.Advance()
	return sample
}
