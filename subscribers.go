package isolate

// Subscriber interfaces define type-safe event subscriptions.
//
// Implement any combination of these interfaces on a single struct to receive
// multiple event types. events.Registry detects which interfaces your struct
// implements and calls the appropriate methods.
//
// # Example
//
//	type AuditSubscriber struct {
//	    logger zerolog.Logger
//	}
//
//	func (s *AuditSubscriber) OnSelectorIsolated(event *isolate.SelectorIsolatedEvent) {
//	    s.logger.Info().Str("selector", event.Selector).Msg("isolated")
//	}
//
//	registry := events.NewRegistry()
//	registry.Subscribe(&AuditSubscriber{logger: log.Logger})

// ResetCreatedSubscriber receives ResetCreatedEvent events.
type ResetCreatedSubscriber interface {
	OnResetCreated(event *ResetCreatedEvent)
}

// SelectorIsolatedSubscriber receives SelectorIsolatedEvent events.
type SelectorIsolatedSubscriber interface {
	OnSelectorIsolated(event *SelectorIsolatedEvent)
}

// RuleSkippedSubscriber receives RuleSkippedEvent events.
type RuleSkippedSubscriber interface {
	OnRuleSkipped(event *RuleSkippedEvent)
}

// SelectorsPublishedSubscriber receives SelectorsPublishedEvent events.
type SelectorsPublishedSubscriber interface {
	OnSelectorsPublished(event *SelectorsPublishedEvent)
}
