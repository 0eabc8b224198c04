package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/youpy/go-wav"

	"github.com/justyntemme/bellosc/pkg/bell"
	"github.com/justyntemme/bellosc/pkg/dsp/analysis"
	"github.com/justyntemme/bellosc/pkg/framework/debug"
	"github.com/justyntemme/bellosc/pkg/midi"
)

var (
	spectrumInput  string
	spectrumNote   int
	spectrumSize   int
	spectrumOffset float64
	spectrumPeaks  int
	spectrumFloor  float64
	spectrumWindow string
	spectrumLevels float64
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Show the strongest partials of a strike or a WAV file",
	Long: `Spectrum renders a strike (or reads --input) and lists the
strongest spectral peaks of a window starting --offset seconds in.
With --levels it also prints the RMS level over time, which shows the
decay down to the hold level.

Examples:
  bellosc spectrum --note 57
  bellosc spectrum --input bell.wav --size 16384 --peaks 20
  bellosc spectrum --levels 0.25 --decay 800`,
	RunE: runSpectrum,
}

func init() {
	f := spectrumCmd.Flags()
	f.StringVarP(&spectrumInput, "input", "i", "", "Analyze a WAV file instead of rendering")
	f.IntVarP(&spectrumNote, "note", "n", bell.DefaultNote, "Note number to render")
	f.IntVar(&spectrumSize, "size", 8192, "FFT size (power of two)")
	f.Float64Var(&spectrumOffset, "offset", 0.1, "Window start in seconds")
	f.IntVar(&spectrumPeaks, "peaks", 12, "Number of peaks to list")
	f.Float64Var(&spectrumFloor, "floor", -80, "Ignore peaks below this level (dB)")
	f.StringVar(&spectrumWindow, "window", analysis.BlackmanHarrisWindow.String(), "Window (rectangular, hann, blackman-harris)")
	f.Float64Var(&spectrumLevels, "levels", 0, "Print RMS levels every N seconds (0 disables)")
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	window, ok := analysis.ParseWindow(spectrumWindow)
	if !ok {
		return fmt.Errorf("unknown window %q", spectrumWindow)
	}
	fft, err := analysis.NewFFTChecked(spectrumSize, window)
	if err != nil {
		return err
	}
	if spectrumOffset < 0 {
		return fmt.Errorf("offset must not be negative, got %v", spectrumOffset)
	}

	var (
		samples     []float32
		rate        float64
		fundamental float64
	)
	if spectrumInput != "" {
		samples, rate, err = readWav(spectrumInput)
	} else {
		samples, fundamental, err = renderStrikeSamples(spectrumSize)
		rate = sampleRate
	}
	if err != nil {
		return err
	}

	start := int(spectrumOffset * rate)
	if start >= len(samples) {
		return fmt.Errorf("offset %.3fs is past the end (%.3fs)", spectrumOffset, float64(len(samples))/rate)
	}
	fft.Forward(samples[start:])
	peaks := fft.Peaks(rate, spectrumFloor, spectrumPeaks)

	out := cmd.OutOrStdout()
	level := analysis.Measure(samples)
	fmt.Fprintf(out, "%d samples at %.0f Hz, peak %.1f dB, rms %.1f dB, %s window of %d\n\n",
		len(samples), rate, level.PeakDB(), level.RMSDB(), window, fft.Size())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	if fundamental > 0 {
		fmt.Fprintln(tw, "Hz\tdB\tnote\tratio\t")
	} else {
		fmt.Fprintln(tw, "Hz\tdB\tnote\t")
	}
	for _, p := range peaks {
		note := nearestNote(p.Frequency)
		if fundamental > 0 {
			fmt.Fprintf(tw, "%.2f\t%.1f\t%s\t%.3f\t\n", p.Frequency, p.MagnitudeDB, note, p.Frequency/fundamental)
		} else {
			fmt.Fprintf(tw, "%.2f\t%.1f\t%s\t\n", p.Frequency, p.MagnitudeDB, note)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if spectrumLevels > 0 {
		step := int(spectrumLevels * rate)
		if step < 1 {
			step = 1
		}
		fmt.Fprintln(out)
		for i, rms := range analysis.RMSEnvelope(samples, step) {
			fmt.Fprintf(out, "%7.2fs %7.1f dB\n", float64(i*step)/rate, 20*math.Log10(math.Max(rms, 1e-6)))
		}
	}
	return nil
}

// nearestNote names the closest note to hz with the offset in cents,
// e.g. "A4+12"
func nearestNote(hz float64) string {
	if hz <= 0 {
		return "-"
	}
	exact := float64(midi.FrequencyToNote(float32(hz)))
	n := math.Round(exact)
	if n < 0 || n > midi.MaxNote {
		return "-"
	}
	cents := math.Round((exact - n) * 100)
	if cents == 0 {
		cents = 0 // no "-0"
	}
	return fmt.Sprintf("%s%+.0f", midi.NoteNumberToName(uint8(n)), cents)
}

// renderStrikeSamples renders one strike long enough to cover the analysis window
// and the requested level timeline.
func renderStrikeSamples(size int) ([]float32, float64, error) {
	note, _, err := checkPitch(spectrumNote, 0)
	if err != nil {
		return nil, 0, err
	}
	eng, err := newEngine()
	if err != nil {
		return nil, 0, err
	}

	frames := int(spectrumOffset*sampleRate) + size
	if want := int(spectrumLevels * sampleRate * 20); want > frames {
		frames = want
	}

	samples := make([]float32, frames)
	eng.NoteOn()
	for pos := 0; pos < frames; pos += blockSize {
		end := pos + blockSize
		if end > frames {
			end = frames
		}
		eng.RenderFloat(samples[pos:end], note, 0)
	}
	debug.LogBufferStats(samples, "strike")
	return samples, float64(eng.Fundamental()), nil
}

// readWav reads the first channel of a WAV file as float samples
func readWav(path string) ([]float32, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	var samples []float32
	for {
		chunk, err := r.ReadSamples()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", path, err)
		}
		for _, s := range chunk {
			samples = append(samples, float32(r.FloatValue(s, 0)))
		}
	}
	debug.Debug("read %s: %d samples, %d channels, %d bit", path, len(samples), format.NumChannels, format.BitsPerSample)
	return samples, float64(format.SampleRate), nil
}
