// Package events provides the subscription registry for isolate plugin
// events.
//
// # Quick Start
//
//	type AuditSubscriber struct{}
//
//	func (s *AuditSubscriber) OnSelectorsPublished(event *isolate.SelectorsPublishedEvent) {
//	    log.Printf("reset rule now covers %d selectors", event.Count)
//	}
//
//	registry := events.NewRegistry()
//	registry.Subscribe(&AuditSubscriber{})
//
//	plugin := isolate.New(cfg, isolate.WithEvents(registry))
//
// # Event Types
//
//   - ResetCreatedEvent: the reset sheet and rule were generated
//   - SelectorIsolatedEvent: a selector joined the reset rule
//   - RuleSkippedEvent: a rule was not isolated, with the deciding tier
//   - SelectorsPublishedEvent: the reset selector was rewritten
//
// # Subscriber Interfaces
//
// Implement any combination of:
//   - isolate.ResetCreatedSubscriber
//   - isolate.SelectorIsolatedSubscriber
//   - isolate.RuleSkippedSubscriber
//   - isolate.SelectorsPublishedSubscriber
package events
