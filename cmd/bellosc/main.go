package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justyntemme/bellosc/pkg/bell"
	"github.com/justyntemme/bellosc/pkg/dsp"
	"github.com/justyntemme/bellosc/pkg/framework/debug"
)

var version = "1.0.0"

// Shared flags
var (
	logLevel       string
	sampleRate     float64
	blockSize      int
	retriggerReset bool

	holdCode   float64
	compCode   float64
	attackCode float64
	shapeCode  float64
	decayCode  float64

	// name=value pairs in display units, e.g. hold=40% or shape=25%
	paramValues []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		debug.Error("%v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bellosc",
	Short: "Risset bell additive oscillator",
	Long: `bellosc renders and plays an eleven partial additive bell after
Jean-Claude Risset, as described by Miller Puckette.

Timbre parameters take the raw codes a hardware host would send:
hold, comp and attack are 0-100, shape and decay are 0-1023.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := debug.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		debug.SetOutput(cmd.ErrOrStderr())
		debug.SetLevel(level)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, off)")
	pf.Float64VarP(&sampleRate, "sample-rate", "r", dsp.DefaultSampleRate, "Sample rate in Hz")
	pf.IntVarP(&blockSize, "block", "b", dsp.DefaultBufferSize, "Frames rendered per block")
	pf.BoolVar(&retriggerReset, "retrigger-reset", false, "Restart envelope and phases on every strike")

	pf.Float64Var(&holdCode, "hold", bell.DefaultHoldCode, "Hold level code (0-100)")
	pf.Float64Var(&compCode, "comp", bell.DefaultCompensationCode, "Gain compensation code (0-100)")
	pf.Float64Var(&attackCode, "attack", bell.DefaultAttackCode, "Attack code (0-100, higher is slower)")
	pf.Float64Var(&shapeCode, "shape", bell.DefaultShapeCode, "Shape code (0-1023, bell to parabolic sine)")
	pf.Float64Var(&decayCode, "decay", bell.DefaultDecayCode, "Decay code (0-1023, higher is longer)")
	pf.StringArrayVar(&paramValues, "set", nil, "Set a parameter by name in display units, e.g. --set shape=25% (repeatable)")

	rootCmd.AddCommand(renderCmd, playCmd, tableCmd, spectrumCmd)
}

// newEngine builds an engine from the shared flags
func newEngine() (*bell.Engine, error) {
	cfg := bell.DefaultConfig()
	cfg.SampleRate = sampleRate
	cfg.MaxBlockSize = blockSize
	cfg.RetriggerReset = retriggerReset

	eng, err := bell.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	eng.SetParameter(bell.ParamHold, holdCode)
	eng.SetParameter(bell.ParamCompensation, compCode)
	eng.SetParameter(bell.ParamAttack, attackCode)
	eng.SetParameter(bell.ParamShape, shapeCode)
	eng.SetParameter(bell.ParamDecay, decayCode)

	if err := applyParamValues(eng, paramValues); err != nil {
		return nil, err
	}

	debug.Debug("engine: %.0f Hz, block %d, retrigger reset %v", cfg.SampleRate, cfg.MaxBlockSize, cfg.RetriggerReset)
	return eng, nil
}

// applyParamValues sets parameters from name=value pairs. Names are the
// parameter names or short names; values are parsed by the parameter's own
// formatter, so "hold=40%" and "decay=75%" both work.
func applyParamValues(eng *bell.Engine, pairs []string) error {
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("--set %q: want name=value", pair)
		}

		p := eng.Registry().Lookup(strings.TrimSpace(name))
		if p == nil {
			return fmt.Errorf("--set %q: unknown parameter %q", pair, name)
		}
		normalized, err := p.ParseValue(value)
		if err != nil {
			return fmt.Errorf("--set %q: %w", pair, err)
		}
		p.SetValue(normalized)
		debug.Debug("%s = %s", p.Name, p.FormatValue(normalized))
	}
	return nil
}
