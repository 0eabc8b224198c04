// Package process provides the per-buffer processing context handed from the
// host to an instrument.
package process

import "github.com/justyntemme/bellosc/pkg/midi"

// Context provides a clean API for audio processing with zero allocations
type Context struct {
	Output     []float32
	SampleRate float64

	// Pre-allocated output storage
	outputBuffer []float32

	events *midi.EventQueue
}

// NewContext creates a new process context with pre-allocated buffers
func NewContext(maxBlockSize int, sampleRate float64) *Context {
	return &Context{
		SampleRate:   sampleRate,
		outputBuffer: make([]float32, maxBlockSize),
		events:       midi.NewEventQueue(),
	}
}

// Begin sizes the output for the next block. Frame counts above the
// pre-allocated size are truncated.
func (c *Context) Begin(frames int) []float32 {
	if frames > len(c.outputBuffer) {
		frames = len(c.outputBuffer)
	}
	if frames < 0 {
		frames = 0
	}
	c.Output = c.outputBuffer[:frames]
	return c.Output
}

// MaxBlockSize returns the largest block the context can hold
func (c *Context) MaxBlockSize() int {
	return len(c.outputBuffer)
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	return len(c.Output)
}

// AddInputEvent queues a host event for the next block. It returns false
// when the queue is full and the event was dropped.
func (c *Context) AddInputEvent(event midi.Event) bool {
	return c.events.Add(event)
}

// DrainInputEvents hands every queued event to fn in sample-offset order
func (c *Context) DrainInputEvents(fn func(midi.Event)) {
	c.events.Drain(fn)
}

// PendingEvents returns the number of queued events
func (c *Context) PendingEvents() int {
	return c.events.Size()
}
