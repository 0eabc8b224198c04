// Package bell implements a monophonic additive bell oscillator after
// Jean-Claude Risset's bell, as described by Miller Puckette in "The Theory
// and Technique of Electronic Music".
//
// Eleven inharmonic partials share one volume envelope. Each partial only
// sounds while the envelope is above its own duration threshold, so short
// partials drop out first as the bell decays. Partial amplitudes are shaped
// quartically and normalized, a corrective gain keeps the level steady as
// partials drop out, and a shape control blends the bell with a parabolic
// sine at the fundamental.
//
// Example usage:
//
//	eng, err := bell.New(bell.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	eng.Initialize()
//	eng.SetParameter(bell.ParamHold, 30)
//	eng.NoteOn()
//
//	out := make([]int32, 64)
//	eng.Render(out, 60, 0)
package bell
