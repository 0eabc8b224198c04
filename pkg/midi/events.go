// Package midi provides host note events, an event queue and note to
// frequency conversion.
package midi

import "fmt"

// EventType identifies the kind of host event
type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
)

// String returns the event type name
func (t EventType) String() string {
	switch t {
	case EventTypeNoteOff:
		return "NoteOff"
	case EventTypeNoteOn:
		return "NoteOn"
	default:
		return "Unknown"
	}
}

// Event is a host trigger delivered alongside an audio buffer
type Event interface {
	Type() EventType
	Channel() uint8
	SampleOffset() int32
	String() string
}

// BaseEvent carries the fields shared by all events
type BaseEvent struct {
	EventChannel uint8
	Offset       int32
}

// Channel returns the MIDI channel
func (e BaseEvent) Channel() uint8 {
	return e.EventChannel
}

// SampleOffset returns the position of the event within its buffer
func (e BaseEvent) SampleOffset() int32 {
	return e.Offset
}

// NoteOnEvent strikes a note
type NoteOnEvent struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

// Type implements Event
func (e NoteOnEvent) Type() EventType {
	return EventTypeNoteOn
}

func (e NoteOnEvent) String() string {
	return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d, offset:%d}",
		e.EventChannel, e.NoteNumber, e.Velocity, e.Offset)
}

// NoteOffEvent releases a note
type NoteOffEvent struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

// Type implements Event
func (e NoteOffEvent) Type() EventType {
	return EventTypeNoteOff
}

func (e NoteOffEvent) String() string {
	return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d, offset:%d}",
		e.EventChannel, e.NoteNumber, e.Velocity, e.Offset)
}
