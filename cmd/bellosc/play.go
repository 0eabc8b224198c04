package main

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/justyntemme/bellosc/pkg/bell"
	"github.com/justyntemme/bellosc/pkg/dsp/buffer"
	"github.com/justyntemme/bellosc/pkg/framework/debug"
	"github.com/justyntemme/bellosc/pkg/midi"
)

var playNote int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the bell live from the keyboard",
	Long: `Play opens the default audio device and strikes the bell from the
computer keyboard:

  a w s e d f t g y h u j k   notes C to C
  z / x                       octave down / up
  space                       strike the current note again
  [ / ]                       shape down / up
  q or Ctrl-C                 quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playNote, "note", "n", bell.DefaultNote, "Starting note number")
}

const keyboardRow = "awsedftgyhujk"

// bellStream runs the engine on its own goroutine and feeds the audio device
// through a ring buffer. Strikes and pitch changes from the keyboard are
// handed over atomically and applied before the next rendered block.
type bellStream struct {
	eng   *bell.Engine
	ring  *buffer.Ring
	block []float32
	read  []float32

	note   atomic.Uint32
	strike atomic.Bool
	pitch  uint8
}

// playLatency is how far rendering runs ahead of the device
const playLatency = 20 * time.Millisecond

func newBellStream(eng *bell.Engine, note uint8) *bellStream {
	cfg := eng.Config()
	s := &bellStream{
		eng:   eng,
		ring:  buffer.NewRingForLatency(cfg.SampleRate, playLatency, cfg.MaxBlockSize),
		block: make([]float32, cfg.MaxBlockSize),
		pitch: note,
	}
	s.note.Store(uint32(note))
	return s
}

// Strike queues a note-on at the given note
func (s *bellStream) Strike(note uint8) {
	s.note.Store(uint32(note))
	s.strike.Store(true)
}

// Run renders blocks into the ring until ctx is done. It keeps at least one
// block buffered even when a block is longer than the latency target.
func (s *bellStream) Run(ctx context.Context) {
	target := s.ring.Capacity() / 4
	if target < len(s.block) {
		target = len(s.block)
	}
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		for s.ring.Available() < target && s.ring.Free() >= len(s.block) {
			if s.strike.Swap(false) {
				s.pitch = uint8(s.note.Load())
				s.eng.NoteOn()
			}
			s.eng.RenderFloat(s.block, s.pitch, 0)
			s.ring.Write(s.block)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Read implements io.Reader with mono float32 little endian samples
func (s *bellStream) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if cap(s.read) < frames {
		s.read = make([]float32, frames)
	}
	samples := s.read[:frames]
	s.ring.Read(samples)

	for i, v := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	return frames * 4, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	note, _, err := checkPitch(playNote, 0)
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs an interactive terminal")
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	stream := newBellStream(eng, note)
	renderCtx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go stream.Run(renderCtx)

	player := otoCtx.NewPlayer(stream)
	defer func() {
		player.Close()
		if s := stream.ring.Stats(); s.Underruns > 0 {
			debug.Warn("%d buffer underruns", s.Underruns)
		}
	}()
	player.Play()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw terminal: %w", err)
	}
	defer term.Restore(fd, oldState)

	// Raw mode needs explicit carriage returns
	fmt.Fprintf(cmd.OutOrStdout(), "playing at %.0f Hz, q to quit\r\n", sampleRate)

	octave := int(note) - int(note)%12
	shape := shapeCode
	buf := make([]byte, 1)

	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read key: %w", err)
		}

		key := buf[0]
		switch {
		case key == 'q' || key == 3: // Ctrl-C
			return nil
		case key == ' ':
			stream.Strike(uint8(stream.note.Load()))
		case key == 'z' && octave >= 12:
			octave -= 12
		case key == 'x' && octave+24 <= midi.MaxNote:
			octave += 12
		case key == '[' || key == ']':
			if key == '[' {
				shape = math.Max(0, shape-64)
			} else {
				shape = math.Min(bell.TenBitScale, shape+64)
			}
			eng.SetParameter(bell.ParamShape, shape)
			debug.Debug("shape %.0f\r", shape)
		default:
			if i := strings.IndexByte(keyboardRow, key); i >= 0 {
				n := octave + i
				if n > midi.MaxNote {
					n = midi.MaxNote
				}
				stream.Strike(uint8(n))
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %7.1f Hz\r\n",
					midi.NoteNumberToName(uint8(n)), midi.NoteToFrequency(uint8(n)))
			}
		}
	}
}
