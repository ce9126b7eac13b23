package isolate

import "time"

// -----------------------------------------------------------------------------
// Event Interface
// -----------------------------------------------------------------------------

// Event is implemented by every event the plugin publishes.
type Event interface {
	// Name returns the EventName of the event.
	Name() string
	isolateEvent()
}

// BaseEvent carries the fields shared by all events.
type BaseEvent struct {
	// EventName is one of the EventName* constants.
	EventName string

	// Timestamp is when the event was published.
	Timestamp time.Time
}

// Name returns the event name.
func (e BaseEvent) Name() string { return e.EventName }

func (BaseEvent) isolateEvent() {}

// Publisher receives events from the plugin. events.Registry implements it.
type Publisher interface {
	Dispatch(event Event)
}

// -----------------------------------------------------------------------------
// Plugin Events
// -----------------------------------------------------------------------------

// ResetCreatedEvent is published once, when the reset sheet and its rule are
// generated.
type ResetCreatedEvent struct {
	BaseEvent

	// Style is the resolved reset style the rule was seeded with.
	Style Style
}

// SelectorIsolatedEvent is published when a selector joins the reset rule.
type SelectorIsolatedEvent struct {
	BaseEvent

	// Key is the name of the rule that was isolated.
	Key string

	// Selector is the selector that was added.
	Selector string

	// Tier is the policy layer that admitted the rule.
	Tier Tier
}

// RuleSkippedEvent is published when a rule is not isolated.
type RuleSkippedEvent struct {
	BaseEvent

	// Key is the name of the rule.
	Key string

	// Tier is the policy layer that rejected the rule.
	Tier Tier

	// Reason explains a gate rejection. Empty for option-driven skips.
	Reason string
}

// SelectorsPublishedEvent is published every time the reset rule's selector
// is rewritten.
type SelectorsPublishedEvent struct {
	BaseEvent

	// Selector is the full joined selector text that was written.
	Selector string

	// Count is the number of selectors in it.
	Count int

	// Forced is true when the write came from the end-of-sheet flush rather
	// than the scheduler.
	Forced bool
}
