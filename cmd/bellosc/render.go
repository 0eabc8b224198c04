package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/youpy/go-wav"

	"github.com/justyntemme/bellosc/pkg/bell"
	"github.com/justyntemme/bellosc/pkg/dsp"
	"github.com/justyntemme/bellosc/pkg/dsp/gain"
	"github.com/justyntemme/bellosc/pkg/framework/debug"
	"github.com/justyntemme/bellosc/pkg/midi"
)

var (
	renderOutput   string
	renderNote     int
	renderFine     int
	renderDuration float64
	renderStrike   float64
	renderProfile  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the bell to a 16-bit mono WAV file",
	Long: `Render strikes the bell once at the start (and again every --strike
seconds if set) and writes the result as 16-bit mono PCM.

Examples:
  bellosc render -o bell.wav
  bellosc render -o low.wav --note 48 --duration 8 --hold 20 --decay 900
  bellosc render -o roll.wav --strike 0.25 --retrigger-reset`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output WAV file (required)")
	renderCmd.Flags().IntVarP(&renderNote, "note", "n", bell.DefaultNote, "Note number (0-151)")
	renderCmd.Flags().IntVar(&renderFine, "fine", 0, "Fine pitch towards the next note (0-255)")
	renderCmd.Flags().Float64VarP(&renderDuration, "duration", "d", 4, "Length in seconds")
	renderCmd.Flags().Float64Var(&renderStrike, "strike", 0, "Restrike interval in seconds (0 strikes once)")
	renderCmd.Flags().BoolVar(&renderProfile, "profile", false, "Print render timing")
	_ = renderCmd.MarkFlagRequired("output")
}

func checkPitch(note, fine int) (uint8, uint8, error) {
	if note < dsp.MinNote || note > dsp.MaxNote {
		return 0, 0, fmt.Errorf("note %d out of range %d-%d", note, dsp.MinNote, dsp.MaxNote)
	}
	if fine < 0 || fine > midi.FineSteps {
		return 0, 0, fmt.Errorf("fine %d out of range 0-%d", fine, midi.FineSteps)
	}
	return uint8(note), uint8(fine), nil
}

func runRender(cmd *cobra.Command, args []string) error {
	note, fine, err := checkPitch(renderNote, renderFine)
	if err != nil {
		return err
	}
	if !(renderDuration > 0) {
		return fmt.Errorf("duration must be positive, got %v", renderDuration)
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	frames := int(math.Round(renderDuration * sampleRate))
	strikeEvery := int(math.Round(renderStrike * sampleRate))

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	w := wav.NewWriter(out, uint32(frames), 1, uint32(sampleRate), 16)

	profiler := debug.NewBlockProfiler(sampleRate)
	block := make([]int32, blockSize)
	floats := make([]float32, blockSize)
	samples := make([]wav.Sample, blockSize)
	var peak float32

	pitch := midi.JoinPitch(note, fine)
	eng.NoteOn()
	nextStrike := strikeEvery

	for pos := 0; pos < frames; {
		n := blockSize
		if rest := frames - pos; rest < n {
			n = rest
		}
		// Blocks end on strike boundaries so strikes land on their sample
		if strikeEvery > 0 && nextStrike > pos && nextStrike-pos < n {
			n = nextStrike - pos
		}

		done := profiler.Start(n)
		eng.RenderPitch(block[:n], pitch)
		done()

		dsp.Q31ToFloat32Buffer(floats[:n], block[:n])
		stats := debug.AnalyzeBuffer(floats[:n])
		if !stats.Finite() {
			debug.Warn("block at %d: %d NaN and %d infinite samples", pos, stats.NaNCount, stats.InfCount)
		}
		if p := dsp.Peak(floats[:n]); p > peak {
			peak = p
		}
		for i := 0; i < n; i++ {
			samples[i].Values[0] = int(dsp.Float32ToInt16(floats[i]))
		}
		if err := w.WriteSamples(samples[:n]); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}

		pos += n
		if strikeEvery > 0 && pos == nextStrike {
			eng.NoteOn()
			nextStrike += strikeEvery
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	debug.Info("wrote %s: %d frames at %.0f Hz, %.1f Hz fundamental, peak %.1f dBFS",
		renderOutput, frames, sampleRate, eng.Fundamental(), gain.LinearToDb(float64(peak)))
	if renderProfile {
		fmt.Fprint(cmd.OutOrStdout(), profiler.Report())
	}
	return nil
}
