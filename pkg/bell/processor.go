package bell

import (
	"fmt"

	"github.com/justyntemme/bellosc/pkg/framework/debug"
	"github.com/justyntemme/bellosc/pkg/framework/plugin"
	"github.com/justyntemme/bellosc/pkg/framework/process"
	"github.com/justyntemme/bellosc/pkg/framework/voice"
	"github.com/justyntemme/bellosc/pkg/midi"
)

// DefaultNote is the pitch before any note has been played (C4)
const DefaultNote = 60

// Plugin describes the bell instrument
type Plugin struct{}

// GetInfo implements plugin.Plugin
func (Plugin) GetInfo() plugin.Info {
	return plugin.Info{
		ID:       "com.bellosc.risset",
		Name:     "Risset Bell",
		Version:  "1.0.0",
		Vendor:   "bellosc",
		Category: "Instrument|Synth",
	}
}

// CreateProcessor implements plugin.Plugin
func (Plugin) CreateProcessor() plugin.Processor {
	// DefaultConfig always validates
	p, _ := NewProcessor(DefaultConfig())
	return p
}

// Processor adapts an Engine to the host processing interface. Note events
// are applied at their sample offset; pitch follows the most recent held
// note.
type Processor struct {
	*plugin.BaseProcessor

	engine *Engine
	notes  *voice.Mono

	// Block state while draining events
	out []float32
	pos int
}

// NewProcessor creates a processor around a new engine
func NewProcessor(cfg Config) (*Processor, error) {
	eng, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("bell processor: %w", err)
	}

	p := &Processor{
		BaseProcessor: plugin.NewBaseProcessor(eng.Registry()),
		engine:        eng,
		notes:         voice.NewMono(DefaultNote),
	}
	p.OnInitialize(p.initialize)
	p.OnSetActive(p.setActive)
	return p, nil
}

// Engine returns the underlying engine
func (p *Processor) Engine() *Engine {
	return p.engine
}

// Note returns the sounding note
func (p *Processor) Note() uint8 {
	return p.notes.Current()
}

func (p *Processor) initialize(sampleRate float64, maxBlockSize int32) error {
	if err := p.engine.reconfigure(sampleRate, int(maxBlockSize)); err != nil {
		return fmt.Errorf("bell processor: %w", err)
	}
	debug.Debug("processor initialized: %.0f Hz, block %d", sampleRate, maxBlockSize)
	return nil
}

func (p *Processor) setActive(active bool) error {
	if !active {
		debug.Debug("processor deactivated, releasing %d held notes", p.notes.Held())
		p.notes.Reset()
	}
	return nil
}

// ProcessAudio renders one block. Events split the block so that each
// note-on lands on its own sample. An inactive processor outputs silence and
// drops its events.
func (p *Processor) ProcessAudio(ctx *process.Context) {
	if !p.IsActive() {
		for i := range ctx.Output {
			ctx.Output[i] = 0
		}
		ctx.DrainInputEvents(func(midi.Event) {})
		return
	}

	p.out = ctx.Output
	p.pos = 0

	ctx.DrainInputEvents(p.handleEvent)
	p.renderTo(len(p.out))

	p.out = nil
}

func (p *Processor) handleEvent(event midi.Event) {
	p.renderTo(int(event.SampleOffset()))

	if p.notes.ProcessEvent(event) {
		p.engine.NoteOn()
	} else if event.Type() == midi.EventTypeNoteOff {
		p.engine.NoteOff()
	}
}

// renderTo renders from the current position up to end, clamped to the block
func (p *Processor) renderTo(end int) {
	if end > len(p.out) {
		end = len(p.out)
	}
	if end <= p.pos {
		return
	}
	p.engine.RenderFloat(p.out[p.pos:end], p.notes.Current(), 0)
	p.pos = end
}
