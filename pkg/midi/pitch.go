package midi

import (
	"fmt"

	"github.com/chewxy/math32"
)

const (
	// TuningA4 is the reference frequency of note 69
	TuningA4 = 440.0

	// MaxNote is the highest note the frequency table covers
	MaxNote = 151

	// FineSteps is the resolution of the fine pitch byte
	FineSteps = 255
)

// NoteToFrequency converts a note number to Hz (A4 = 440 Hz at note 69).
// Notes above MaxNote are clamped.
func NoteToFrequency(note uint8) float32 {
	if note > MaxNote {
		note = MaxNote
	}
	return TuningA4 * math32.Exp2((float32(note)-69.0)/12.0)
}

// FrequencyToNote converts Hz to a fractional note number. Non-positive
// frequencies return 0.
func FrequencyToNote(freq float32) float32 {
	if !(freq > 0) {
		return 0
	}
	note := 69.0 + 12.0*math32.Log2(freq/TuningA4)
	if note < 0 {
		return 0
	}
	return note
}

// SplitPitch decodes a 16-bit pitch word: note in the high byte, fine offset
// towards the next note in the low byte.
func SplitPitch(pitch uint16) (note, fine uint8) {
	return uint8(pitch >> 8), uint8(pitch & 0x00FF)
}

// JoinPitch encodes a note and fine offset into a pitch word
func JoinPitch(note, fine uint8) uint16 {
	return uint16(note)<<8 | uint16(fine)
}

// PitchToFrequency returns the fundamental for a note plus a fine offset
// (0-255 spans one semitone), interpolated linearly in Hz between the two
// neighbouring notes and clamped to maxHz.
func PitchToFrequency(note, fine uint8, maxHz float32) float32 {
	f0 := NoteToFrequency(note)
	next := note
	if next < MaxNote {
		next++
	}
	f1 := NoteToFrequency(next)
	hz := f0 + (f1-f0)*float32(fine)/FineSteps
	if hz > maxHz {
		hz = maxHz
	}
	return hz
}

// NoteNumberToName returns the note name with octave, e.g. 60 is "C4"
func NoteNumberToName(note uint8) string {
	noteNames := [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	octave := int(note/12) - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}
