package events

import (
	"github.com/rickchristie/isolate"
)

// Registry manages event subscribers and dispatches events to them.
//
// Subscribers can implement any combination of subscriber interfaces - they
// only receive events for the interfaces they implement. They are called in
// the order they subscribed.
//
// # Thread Safety
//
// Registry is NOT thread-safe. Subscribe before handing the registry to a
// plugin.
type Registry struct {
	subscribers []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		subscribers: make([]any, 0),
	}
}

// Subscribe adds a subscriber to the registry.
func (r *Registry) Subscribe(subscriber any) *Registry {
	r.subscribers = append(r.subscribers, subscriber)
	return r
}

// Dispatch sends an event to all matching subscribers.
func (r *Registry) Dispatch(event isolate.Event) {
	switch e := event.(type) {
	case *isolate.ResetCreatedEvent:
		for _, s := range r.subscribers {
			if sub, ok := s.(isolate.ResetCreatedSubscriber); ok {
				sub.OnResetCreated(e)
			}
		}
	case *isolate.SelectorIsolatedEvent:
		for _, s := range r.subscribers {
			if sub, ok := s.(isolate.SelectorIsolatedSubscriber); ok {
				sub.OnSelectorIsolated(e)
			}
		}
	case *isolate.RuleSkippedEvent:
		for _, s := range r.subscribers {
			if sub, ok := s.(isolate.RuleSkippedSubscriber); ok {
				sub.OnRuleSkipped(e)
			}
		}
	case *isolate.SelectorsPublishedEvent:
		for _, s := range r.subscribers {
			if sub, ok := s.(isolate.SelectorsPublishedSubscriber); ok {
				sub.OnSelectorsPublished(e)
			}
		}
	}
}

// Len returns the number of registered subscribers.
func (r *Registry) Len() int {
	return len(r.subscribers)
}

// Clear removes all registered subscribers.
func (r *Registry) Clear() {
	r.subscribers = make([]any, 0)
}

// Compile-time check.
var _ isolate.Publisher = (*Registry)(nil)
