package dsp

import (
	"testing"

	"github.com/justyntemme/bellosc/pkg/midi"
)

func TestMaxNoteMatchesNoteTable(t *testing.T) {
	if MaxNote != midi.MaxNote {
		t.Errorf("MaxNote = %d, note table ends at %d", MaxNote, midi.MaxNote)
	}
}

func TestMaxNoteBelowNyquist(t *testing.T) {
	if MaxNoteHz >= DefaultSampleRate/2 {
		t.Errorf("MaxNoteHz %f must stay below Nyquist %f", MaxNoteHz, DefaultSampleRate/2)
	}
}

func TestBufferSizes(t *testing.T) {
	if !(MinBufferSize <= DefaultBufferSize && DefaultBufferSize <= MaxBufferSize) {
		t.Errorf("buffer sizes out of order: %d %d %d", MinBufferSize, DefaultBufferSize, MaxBufferSize)
	}
}
