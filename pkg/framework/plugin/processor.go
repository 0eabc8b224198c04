// Package plugin defines the contract between a host and an instrument.
package plugin

import (
	"github.com/justyntemme/bellosc/pkg/framework/param"
	"github.com/justyntemme/bellosc/pkg/framework/process"
)

// Plugin describes an instrument and creates its processor
type Plugin interface {
	GetInfo() Info
	CreateProcessor() Processor
}

// Processor is the audio side of an instrument
type Processor interface {
	// Initialize is called once before processing with the host's sample
	// rate and largest block size.
	Initialize(sampleRate float64, maxBlockSize int32) error
	// ProcessAudio renders one block - zero allocations allowed!
	ProcessAudio(ctx *process.Context)
	// GetParameters returns the parameter registry
	GetParameters() *param.Registry
	// SetActive is called when processing starts/stops
	SetActive(active bool) error
	// GetLatencySamples returns the processing latency
	GetLatencySamples() int32
	// GetTailSamples returns how long output continues after input stops
	GetTailSamples() int32
}

// BaseProcessor provides common functionality for audio processors
type BaseProcessor struct {
	params     *param.Registry
	sampleRate float64
	active     bool

	// Optional callbacks for customization
	onInitialize func(sampleRate float64, maxBlockSize int32) error
	onSetActive  func(active bool) error
}

// NewBaseProcessor creates a new base processor around a registry
func NewBaseProcessor(params *param.Registry) *BaseProcessor {
	if params == nil {
		params = param.NewRegistry()
	}
	return &BaseProcessor{params: params}
}

// Initialize implements the Processor interface
func (b *BaseProcessor) Initialize(sampleRate float64, maxBlockSize int32) error {
	b.sampleRate = sampleRate

	if b.onInitialize != nil {
		return b.onInitialize(sampleRate, maxBlockSize)
	}

	return nil
}

// GetParameters implements the Processor interface
func (b *BaseProcessor) GetParameters() *param.Registry {
	return b.params
}

// SetActive implements the Processor interface
func (b *BaseProcessor) SetActive(active bool) error {
	b.active = active

	if b.onSetActive != nil {
		return b.onSetActive(active)
	}

	return nil
}

// IsActive reports whether processing is running
func (b *BaseProcessor) IsActive() bool {
	return b.active
}

// GetLatencySamples implements the Processor interface - default no latency
func (b *BaseProcessor) GetLatencySamples() int32 {
	return 0
}

// GetTailSamples implements the Processor interface - default no tail
func (b *BaseProcessor) GetTailSamples() int32 {
	return 0
}

// SampleRate returns the current sample rate
func (b *BaseProcessor) SampleRate() float64 {
	return b.sampleRate
}

// OnInitialize sets a callback for initialization
func (b *BaseProcessor) OnInitialize(fn func(sampleRate float64, maxBlockSize int32) error) {
	b.onInitialize = fn
}

// OnSetActive sets a callback for activation/deactivation
func (b *BaseProcessor) OnSetActive(fn func(active bool) error) {
	b.onSetActive = fn
}
