package bell

import (
	"fmt"
	"math"

	"github.com/justyntemme/bellosc/pkg/dsp"
)

// Config holds the engine settings that are fixed for its lifetime
type Config struct {
	// SampleRate in Hz
	SampleRate float64
	// MaxBlockSize is the largest number of frames rendered per call by
	// the host adapter
	MaxBlockSize int
	// MaxHz caps the fundamental. It is further limited to half the sample
	// rate.
	MaxHz float32
	// RetriggerReset makes NoteOn restart the envelope from silence and
	// reset every phase. By default a note-on keeps the current volume and
	// phases, so the bell restrikes while still ringing.
	RetriggerReset bool
}

// DefaultConfig returns a 48 kHz configuration
func DefaultConfig() Config {
	return Config{
		SampleRate:   dsp.DefaultSampleRate,
		MaxBlockSize: dsp.DefaultBufferSize,
		MaxHz:        dsp.MaxNoteHz,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, c.SampleRate)
	}
	if c.MaxBlockSize < dsp.MinBufferSize || c.MaxBlockSize > dsp.MaxBufferSize {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidBlockSize,
			c.MaxBlockSize, dsp.MinBufferSize, dsp.MaxBufferSize)
	}
	if !(c.MaxHz > 0) || math.IsInf(float64(c.MaxHz), 0) {
		return fmt.Errorf("%w: %v", ErrInvalidMaxHz, c.MaxHz)
	}
	return nil
}

// ceiling returns the effective fundamental limit
func (c Config) ceiling() float32 {
	nyquist := float32(c.SampleRate / 2)
	if c.MaxHz < nyquist {
		return c.MaxHz
	}
	return nyquist
}
