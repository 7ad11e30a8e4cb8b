package ecs

import (
	"github.com/phanxgames/textbind"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TextChanged is published when an EventSink's text changes.
type TextChanged struct {
	Name string
	Text string
	Prev string
}

// TextChangedEvent is the Donburi event type for text changes. Events are
// queued; call ProcessEvents from a system to deliver them.
var TextChangedEvent = events.NewEventType[TextChanged]()

// EventSink is a textbind.TextSink and textbind.TextSource backed by a
// Donburi world.
type EventSink struct {
	world   donburi.World
	name    string
	text    string
	changed textbind.Event
}

var (
	_ textbind.TextSink   = (*EventSink)(nil)
	_ textbind.TextSource = (*EventSink)(nil)
)

// NewEventSink creates a sink that publishes TextChanged events named name
// into world.
func NewEventSink(world donburi.World, name string) *EventSink {
	return &EventSink{world: world, name: name}
}

// Name returns the name carried by published events.
func (s *EventSink) Name() string {
	return s.name
}

// Text returns the last text set.
func (s *EventSink) Text() string {
	return s.text
}

// SetText stores text and, if it differs from the current text, publishes
// a TextChanged event and fires Changed.
func (s *EventSink) SetText(text string) {
	if text == s.text {
		return
	}
	prev := s.text
	s.text = text
	TextChangedEvent.Publish(s.world, TextChanged{Name: s.name, Text: text, Prev: prev})
	s.changed.Invoke()
}

// Changed returns the change event.
func (s *EventSink) Changed() *textbind.Event {
	return &s.changed
}
