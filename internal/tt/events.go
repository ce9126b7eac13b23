package tt

import (
	"github.com/rickchristie/isolate"
)

// EventRecorder subscribes to every plugin event and keeps them in order.
type EventRecorder struct {
	Events []isolate.Event
}

// NewEventRecorder creates an empty EventRecorder.
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (r *EventRecorder) OnResetCreated(e *isolate.ResetCreatedEvent) {
	r.Events = append(r.Events, e)
}

func (r *EventRecorder) OnSelectorIsolated(e *isolate.SelectorIsolatedEvent) {
	r.Events = append(r.Events, e)
}

func (r *EventRecorder) OnRuleSkipped(e *isolate.RuleSkippedEvent) {
	r.Events = append(r.Events, e)
}

func (r *EventRecorder) OnSelectorsPublished(e *isolate.SelectorsPublishedEvent) {
	r.Events = append(r.Events, e)
}

// Names returns the EventName of every recorded event.
func (r *EventRecorder) Names() []string {
	names := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		names = append(names, e.Name())
	}
	return names
}

// Published returns the recorded SelectorsPublishedEvents.
func (r *EventRecorder) Published() []*isolate.SelectorsPublishedEvent {
	var out []*isolate.SelectorsPublishedEvent
	for _, e := range r.Events {
		if p, ok := e.(*isolate.SelectorsPublishedEvent); ok {
			out = append(out, p)
		}
	}
	return out
}

// Skipped returns the recorded RuleSkippedEvents.
func (r *EventRecorder) Skipped() []*isolate.RuleSkippedEvent {
	var out []*isolate.RuleSkippedEvent
	for _, e := range r.Events {
		if s, ok := e.(*isolate.RuleSkippedEvent); ok {
			out = append(out, s)
		}
	}
	return out
}

// Dispatch lets the recorder stand in for events.Registry.
func (r *EventRecorder) Dispatch(event isolate.Event) {
	r.Events = append(r.Events, event)
}

// Compile-time checks.
var (
	_ isolate.Publisher                    = (*EventRecorder)(nil)
	_ isolate.ResetCreatedSubscriber       = (*EventRecorder)(nil)
	_ isolate.SelectorIsolatedSubscriber   = (*EventRecorder)(nil)
	_ isolate.RuleSkippedSubscriber        = (*EventRecorder)(nil)
	_ isolate.SelectorsPublishedSubscriber = (*EventRecorder)(nil)
)
