package bell

import (
	"github.com/justyntemme/bellosc/pkg/dsp"
	"github.com/justyntemme/bellosc/pkg/dsp/envelope"
	"github.com/justyntemme/bellosc/pkg/dsp/gain"
	"github.com/justyntemme/bellosc/pkg/dsp/mix"
	"github.com/justyntemme/bellosc/pkg/dsp/oscillator"
	"github.com/justyntemme/bellosc/pkg/framework/param"
	"github.com/justyntemme/bellosc/pkg/midi"
)

// Engine is a single bell voice. Render, RenderFloat and NoteOn must be
// called from one goroutine; SetParameter and SetParameterNormalized may be
// called from any goroutine and take effect at the start of the next
// buffer.
type Engine struct {
	cfg        Config
	sampleRate float32
	maxHz      float32

	bank  bank
	env   *envelope.Bell
	blend *oscillator.Oscillator

	params   ParameterSet
	registry *param.Registry
	handles  [numParams]*param.Parameter

	fundamental float32
}

// New creates an engine. Call Initialize before rendering.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:        cfg,
		sampleRate: float32(cfg.SampleRate),
		maxHz:      cfg.ceiling(),
		bank:       newBank(),
		env:        envelope.New(),
		blend:      oscillator.New(float32(cfg.SampleRate)),
		registry:   newRegistry(),
	}
	for id := range e.handles {
		e.handles[id] = e.registry.Get(uint32(id))
	}
	e.Initialize()
	return e, nil
}

// Initialize restores the power-on state: default parameters, silent
// envelope seeded at the attack floor and all phases at zero.
func (e *Engine) Initialize() {
	e.bank = newBank()
	e.env.Reset()
	e.blend.Reset()
	e.fundamental = 0

	e.registry.ResetAll()
	e.params = ParameterSet{}
	e.syncParameters()
}

// reconfigure switches sample rate and block size without touching the
// parameters. The envelope and phases restart.
func (e *Engine) reconfigure(sampleRate float64, maxBlockSize int) error {
	cfg := e.cfg
	cfg.SampleRate = sampleRate
	cfg.MaxBlockSize = maxBlockSize
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg
	e.sampleRate = float32(sampleRate)
	e.maxHz = cfg.ceiling()
	e.blend = oscillator.New(e.sampleRate)
	e.bank.reset()
	e.env.Reset()
	return nil
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Registry returns the host parameters. Values are raw codes.
func (e *Engine) Registry() *param.Registry {
	return e.registry
}

// Parameters returns the parameter set used by the last rendered buffer
func (e *Engine) Parameters() ParameterSet {
	return e.params
}

// SetParameter sets a parameter from its raw code. Out of range and
// non-finite codes are clamped, unknown ids are ignored.
func (e *Engine) SetParameter(id uint32, code float64) {
	_ = e.registry.SetPlain(id, code)
}

// SetParameterNormalized sets a parameter from a 0-1 host value
func (e *Engine) SetParameterNormalized(id uint32, value float64) {
	if id < numParams {
		e.handles[id].SetValue(value)
	}
}

// NoteOn starts the attack. Volume and phases carry over unless the engine
// was configured with RetriggerReset.
func (e *Engine) NoteOn() {
	if e.cfg.RetriggerReset {
		e.env.Reset()
		e.bank.reset()
		e.blend.Reset()
	}
	e.env.Trigger()
}

// NoteOff does nothing; the bell decays on its own.
func (e *Engine) NoteOff() {}

// Volume returns the envelope volume
func (e *Engine) Volume() float32 {
	return e.env.Volume()
}

// Attacking reports whether the envelope is in its attack stage
func (e *Engine) Attacking() bool {
	return e.env.IsAttacking()
}

// Fundamental returns the fundamental of the last rendered buffer in Hz
func (e *Engine) Fundamental() float32 {
	return e.fundamental
}

// Render fills dst with Q31 samples at the given pitch. fine (0-255) bends
// the pitch towards the next note.
func (e *Engine) Render(dst []int32, note, fine uint8) {
	e.begin(note, fine)
	for i := range dst {
		dst[i] = dsp.Float32ToQ31(e.tick())
	}
}

// RenderPitch is Render with the note and fine offset packed into one word
func (e *Engine) RenderPitch(dst []int32, pitch uint16) {
	note, fine := midi.SplitPitch(pitch)
	e.Render(dst, note, fine)
}

// RenderFloat fills dst with float samples in [-1, 1]
func (e *Engine) RenderFloat(dst []float32, note, fine uint8) {
	e.begin(note, fine)
	for i := range dst {
		dst[i] = e.tick()
	}
}

// RenderBuffer renders frames samples into a new slice. It allocates and is
// meant for offline use.
func (e *Engine) RenderBuffer(note, fine uint8, frames int) []int32 {
	if frames < 0 {
		frames = 0
	}
	out := make([]int32, frames)
	e.Render(out, note, fine)
	return out
}

// begin picks up parameter changes and tunes the oscillators for a buffer
func (e *Engine) begin(note, fine uint8) {
	e.syncParameters()

	e.fundamental = midi.PitchToFrequency(note, fine, e.maxHz)
	e.bank.tune(e.fundamental, e.sampleRate)
	e.blend.SetFrequency(e.fundamental)
}

// tick renders one sample
func (e *Engine) tick() float32 {
	volume := e.env.Next()

	sig, sum := e.bank.next(volume)
	sig = gain.Apply(sig, gain.Compensation(sum, e.params.Compensation))

	return mix.DryWet(sig, e.blend.Parabolic(), e.params.Shape)
}

func (e *Engine) syncParameters() {
	changed := false
	for id, p := range e.handles {
		if _, ok := p.PollChange(); ok {
			e.params.apply(uint32(id), float32(p.GetPlainValue()))
			changed = true
		}
	}
	if changed {
		e.env.SetRates(e.params.Attack, e.params.Decay, e.params.Hold)
	}
}
