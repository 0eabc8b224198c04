// Package voice tracks held notes for a monophonic instrument.
package voice

import (
	"github.com/justyntemme/bellosc/pkg/midi"
)

// MaxHeldNotes is the depth of the held-note stack
const MaxHeldNotes = 16

// Mono implements last-note priority for a single voice. It only decides
// which note sounds; what a trigger does is up to the instrument.
type Mono struct {
	held [MaxHeldNotes]uint8
	n    int

	current uint8
}

// NewMono creates a tracker whose pitch starts at note
func NewMono(note uint8) *Mono {
	return &Mono{current: note}
}

// NoteOn pushes a note and makes it current. It reports whether the note is
// a fresh trigger, which is always true for a monophonic bell.
func (m *Mono) NoteOn(note uint8) bool {
	m.remove(note)
	if m.n == MaxHeldNotes {
		// Drop the oldest held note
		copy(m.held[:], m.held[1:])
		m.n--
	}
	m.held[m.n] = note
	m.n++
	m.current = note
	return true
}

// NoteOff releases a note. When the current note is released and others are
// still held, the most recent of them becomes current. The pitch of the last
// released note is kept so the tail rings at the same pitch.
func (m *Mono) NoteOff(note uint8) {
	m.remove(note)
	if m.n > 0 {
		m.current = m.held[m.n-1]
	}
}

// ProcessEvent routes a note event
func (m *Mono) ProcessEvent(event midi.Event) (trigger bool) {
	switch e := event.(type) {
	case midi.NoteOnEvent:
		if e.Velocity == 0 {
			m.NoteOff(e.NoteNumber)
			return false
		}
		return m.NoteOn(e.NoteNumber)
	case midi.NoteOffEvent:
		m.NoteOff(e.NoteNumber)
	}
	return false
}

// Current returns the sounding note
func (m *Mono) Current() uint8 {
	return m.current
}

// Held returns the number of held notes
func (m *Mono) Held() int {
	return m.n
}

// Reset forgets all held notes
func (m *Mono) Reset() {
	m.n = 0
}

func (m *Mono) remove(note uint8) {
	for i := 0; i < m.n; i++ {
		if m.held[i] == note {
			copy(m.held[i:m.n-1], m.held[i+1:m.n])
			m.n--
			return
		}
	}
}
