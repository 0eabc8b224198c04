// Package dsp provides digital signal processing utilities and algorithms.
package dsp

// Common audio constants used throughout the DSP packages and the bell engine.
const (
	// SampleRate48k is the rate of the hardware the oscillator was tuned for.
	SampleRate48k     = 48000.0
	DefaultSampleRate = SampleRate48k

	// MaxNoteHz is the highest oscillator frequency a host may request.
	// It sits just under Nyquist at 48 kHz.
	MaxNoteHz = 23679.643054

	// Note table range accepted by the note to frequency conversion.
	MinNote = 0
	MaxNote = 151

	// Buffer sizes
	MinBufferSize     = 1
	DefaultBufferSize = 64
	MaxBufferSize     = 8192

	// Q31 full scale
	Q31Max = 0x7FFFFFFF
	Q31Min = -0x80000000
)
