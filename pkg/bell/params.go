package bell

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/justyntemme/bellosc/pkg/dsp/mix"
	"github.com/justyntemme/bellosc/pkg/framework/param"
)

// Parameter IDs
const (
	ParamHold uint32 = iota
	ParamCompensation
	ParamAttack
	ParamShape
	ParamDecay

	numParams = 5
)

// Raw code ranges. Hold, compensation and attack are 0-100 knobs, shape and
// decay are 10-bit knobs.
const (
	PercentScale  = 100
	TenBitScale   = 1023
	MaxAttackRate = 0.001
	MaxDecayRate  = 0.00004
	holdGain      = 1.02
)

// Default raw codes
const (
	DefaultHoldCode         = 0
	DefaultCompensationCode = 100
	DefaultAttackCode       = 0
	DefaultShapeCode        = 0
	DefaultDecayCode        = 512
)

// ParameterSet is the engine side view of the parameters, read by the render
// loop.
type ParameterSet struct {
	// Shape blends bell (0) and parabolic sine (1)
	Shape float32
	// Decay is the linear volume decrement per sample
	Decay float32
	// Hold is the level the envelope rests on, 0-1
	Hold float32
	// Compensation scales the loudness correction, 0-1
	Compensation float32
	// Attack is the attack rate per sample
	Attack float32
}

// String returns a readable form of the parameter set
func (s ParameterSet) String() string {
	return fmt.Sprintf("shape=%.3f decay=%.3g hold=%.3f comp=%.2f attack=%.3g",
		s.Shape, s.Decay, s.Hold, s.Compensation, s.Attack)
}

// DefaultParameters returns the parameter set of the default raw codes
func DefaultParameters() ParameterSet {
	return ParameterSet{
		Shape:        MapShape(DefaultShapeCode),
		Decay:        MapDecay(DefaultDecayCode),
		Hold:         MapHold(DefaultHoldCode),
		Compensation: MapCompensation(DefaultCompensationCode),
		Attack:       MapAttack(DefaultAttackCode),
	}
}

// normalize maps a raw code to [0, 1]. NaN maps to 0.
func normalize(code, scale float32) float32 {
	return mix.ClampAmount(code / scale)
}

// MapHold maps a 0-100 code to the hold level. Two square roots flatten the
// control so equal steps sound roughly equal.
func MapHold(code float32) float32 {
	h := math32.Sqrt(math32.Sqrt(normalize(code, PercentScale))) * holdGain
	if h > 1 {
		return 1
	}
	return h
}

// MapCompensation maps a 0-100 code to a compensation amount in [0, 1]
func MapCompensation(code float32) float32 {
	return normalize(code, PercentScale)
}

// MapAttack maps a 0-100 code to an attack rate. Larger codes give slower
// attacks; 100 stops the attack altogether.
func MapAttack(code float32) float32 {
	return (1 - normalize(code, PercentScale)) * MaxAttackRate
}

// MapShape maps a 10-bit code to a shape amount in [0, 1]
func MapShape(code float32) float32 {
	return normalize(code, TenBitScale)
}

// MapDecay maps a 10-bit code to a decay rate. Larger codes decay slower;
// 1023 sustains forever.
func MapDecay(code float32) float32 {
	return (1 - normalize(code, TenBitScale)) * MaxDecayRate
}

// apply maps a raw code into the field of s selected by id. Unknown ids are
// ignored.
func (s *ParameterSet) apply(id uint32, code float32) {
	switch id {
	case ParamHold:
		s.Hold = MapHold(code)
	case ParamCompensation:
		s.Compensation = MapCompensation(code)
	case ParamAttack:
		s.Attack = MapAttack(code)
	case ParamShape:
		s.Shape = MapShape(code)
	case ParamDecay:
		s.Decay = MapDecay(code)
	}
}

// newRegistry builds the host parameters. Values are stored as raw codes.
func newRegistry() *param.Registry {
	percent := func(id uint32, name, short string, def float64) *param.Parameter {
		return param.New(id, name).
			ShortName(short).
			Range(0, PercentScale).
			Steps(PercentScale).
			Default(def).
			Unit("%").
			Formatter(param.PercentFormatter, param.PercentParser).
			Build()
	}
	tenBit := func(id uint32, name, short string, def float64) *param.Parameter {
		return param.New(id, name).
			ShortName(short).
			Range(0, TenBitScale).
			Steps(TenBitScale).
			Default(def).
			Formatter(param.FullScaleFormatter(TenBitScale), param.FullScaleParser(TenBitScale)).
			Build()
	}

	r := param.NewRegistry()
	// IDs are constants, Add cannot fail
	_ = r.Add(
		percent(ParamHold, "Hold", "hold", DefaultHoldCode),
		percent(ParamCompensation, "Compensation", "comp", DefaultCompensationCode),
		percent(ParamAttack, "Attack", "attack", DefaultAttackCode),
		tenBit(ParamShape, "Shape", "shape", DefaultShapeCode),
		tenBit(ParamDecay, "Decay", "decay", DefaultDecayCode),
	)
	return r
}
