// Package param provides host parameters with lock-free value access.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter represents a host-automatable parameter. The normalized value is
// stored atomically so a control thread may write while the audio thread
// reads.
type Parameter struct {
	ID           uint32
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64 // normalized
	StepCount    int32
	Flags        uint32

	// Atomic value for lock-free access in audio thread
	value atomic.Uint64
	// Set on every write, cleared by PollChange
	changed atomic.Bool

	// Value formatting
	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// CanAutomate marks a parameter the host may automate
const CanAutomate uint32 = 1 << 0

// GetValue returns the current normalized value (0-1)
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue sets the normalized value, clamped to 0-1. NaN is stored as 0 so
// malformed host input never reaches the audio thread.
func (p *Parameter) SetValue(value float64) {
	p.value.Store(math.Float64bits(clamp01(value)))
	p.changed.Store(true)
}

// PollChange reports whether the value was written since the last poll and
// returns the current normalized value. It is meant for a single reader,
// usually the audio thread picking up host changes once per block.
func (p *Parameter) PollChange() (float64, bool) {
	if !p.changed.Swap(false) {
		return 0, false
	}
	return p.GetValue(), true
}

// GetPlainValue converts normalized to plain value
func (p *Parameter) GetPlainValue() float64 {
	return p.Denormalize(p.GetValue())
}

// SetPlainValue converts plain to normalized value
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.Normalize(plain))
}

// Reset restores the default value
func (p *Parameter) Reset() {
	p.SetValue(p.DefaultValue)
}

// FormatValue returns formatted parameter value
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	if p.StepCount > 0 {
		// For discrete parameters, show integer
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses string to normalized value
func (p *Parameter) ParseValue(str string) (float64, error) {
	if p.parseFunc != nil {
		plain, err := p.parseFunc(str)
		if err != nil {
			return 0, err
		}
		return p.Normalize(plain), nil
	}
	plain, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", p.Name, err)
	}
	return p.Normalize(plain), nil
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	return clamp01((plain - p.Min) / (p.Max - p.Min))
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + clamp01(normalized)*(p.Max-p.Min)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
