package isolate

// Event name constants define the EventName values for plugin events.
//
// # Naming Convention
//
// Event names follow the pattern: "namespace:subject:action"
//   - namespace: "isolate" for every event the plugin publishes
//   - subject: what the event is about (reset, selector, rule, selectors)
//   - action: what happened to it
//
// # Examples
//
//	isolate:reset:created         // reset sheet and rule were generated
//	isolate:selectors:published   // reset selector was rewritten
const (
	EventNameResetCreated       = "isolate:reset:created"
	EventNameSelectorIsolated   = "isolate:selector:isolated"
	EventNameRuleSkipped        = "isolate:rule:skipped"
	EventNameSelectorsPublished = "isolate:selectors:published"
)
