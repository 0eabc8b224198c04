package bell

import (
	"github.com/justyntemme/bellosc/pkg/dsp/oscillator"
)

// bank renders the eleven partials from the shared envelope volume.
type bank struct {
	partials [NumPartials]Partial
	norm     float32
	phases   [NumPartials]oscillator.Phase
}

func newBank() bank {
	return bank{
		partials: partials,
		norm:     normalization,
	}
}

// tune sets the per-sample phase increment of every partial. It is called
// once per buffer, so pitch changes inside a buffer are not tracked.
func (b *bank) tune(fundamental, sampleRate float32) {
	for i := range b.partials {
		p := &b.partials[i]
		b.phases[i].SetIncrement((p.Ratio*fundamental + p.Detune) / sampleRate)
	}
}

// amplitude returns the shaped amplitude of partial i at an envelope volume:
// the fourth power of its level over the normalization.
func (b *bank) amplitude(i int, volume float32) float32 {
	a := b.partials[i].Level(volume)
	a *= a
	return a * a / b.norm
}

// next renders one sample at the given envelope volume. It returns the
// summed signal and the sum of the shaped amplitudes.
func (b *bank) next(volume float32) (signal, sum float32) {
	for i := range b.partials {
		a := b.amplitude(i, volume)
		sum += a
		signal += a * oscillator.Sin(b.phases[i].Value())
		b.phases[i].Advance()
	}
	return signal, sum
}

func (b *bank) reset() {
	for i := range b.phases {
		b.phases[i].Reset()
	}
}
