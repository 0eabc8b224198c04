package bell

// NumPartials is the number of spectral components of the bell
const NumPartials = 11

// PartialSpec is one entry of the partial table.
type PartialSpec struct {
	// Amplitude is the static weight of the partial
	Amplitude float32
	// Duration is the fraction of the envelope range, in (0, 1], during
	// which the partial sounds
	Duration float32
	// Ratio multiplies the fundamental
	Ratio float32
	// Detune is added to the partial frequency in Hz
	Detune float32
}

// Partial is a PartialSpec with the duration terms precomputed for the
// render loop.
type Partial struct {
	Amplitude          float32
	InverseDuration    float32
	DurationComplement float32
	Ratio              float32
	Detune             float32
}

// Amplitudes are given relative to the loudest partial (2.67).
const loudest = 2.67

// Risset's bell, after Puckette, "The Theory and Technique of Electronic
// Music", p. 107ff.
var partialSpecs = [NumPartials]PartialSpec{
	// amp                dur     ratio  detune
	{1.00 / loudest, 1.000, 0.56, 0.00},
	{0.67 / loudest, 0.900, 0.56, 1.00},
	{1.00 / loudest, 0.650, 0.92, 0.00},
	{1.80 / loudest, 0.550, 0.92, 1.70},
	{2.67 / loudest, 0.325, 1.19, 0.00},
	{1.67 / loudest, 0.350, 1.70, 0.00},
	{1.46 / loudest, 0.250, 2.00, 0.00},
	{1.33 / loudest, 0.200, 2.74, 0.00},
	{1.33 / loudest, 0.150, 3.00, 0.00},
	{1.00 / loudest, 0.100, 3.76, 0.00},
	{1.33 / loudest, 0.075, 4.07, 0.00},
}

var (
	partials      [NumPartials]Partial
	normalization float32
)

func init() {
	for i, spec := range partialSpecs {
		partials[i] = newPartial(spec)
		a2 := spec.Amplitude * spec.Amplitude
		normalization += a2 * a2
	}
}

func newPartial(spec PartialSpec) Partial {
	return Partial{
		Amplitude:          spec.Amplitude,
		InverseDuration:    1 / spec.Duration,
		DurationComplement: 1 - spec.Duration,
		Ratio:              spec.Ratio,
		Detune:             spec.Detune,
	}
}

// PartialSpecs returns a copy of the partial table
func PartialSpecs() [NumPartials]PartialSpec {
	return partialSpecs
}

// Partials returns a copy of the derived partial table
func Partials() [NumPartials]Partial {
	return partials
}

// Normalization returns the sum of the fourth powers of all partial
// amplitudes. Dividing each shaped amplitude by it makes the shaped
// amplitudes sum to 1 at full volume.
func Normalization() float32 {
	return normalization
}

// Level returns the unshaped amplitude of the partial at an envelope volume.
// It is zero until volume exceeds the duration complement, then rises
// linearly to Amplitude at volume 1.
func (p *Partial) Level(volume float32) float32 {
	a := volume - p.DurationComplement
	if !(a > 0) {
		return 0
	}
	return a * p.InverseDuration * p.Amplitude
}
