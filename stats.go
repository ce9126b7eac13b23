package isolate

// Stats counts what the plugin did. It is a plain value: Plugin.Stats
// returns a copy.
//
// # Use Cases
//
//   - Tests assert coalescing: many accepted rules in one pass should yield
//     one Publishes increment.
//   - Hosts log a summary after a build.
type Stats struct {
	// RulesSeen counts every OnProcessRule call.
	RulesSeen int64

	// RulesIsolated counts rules whose verdict was isolate.
	RulesIsolated int64

	// RulesSkipped counts rules rejected by the gate or by a policy tier.
	RulesSkipped int64

	// DuplicateSelectors counts isolated rules whose selector was already in
	// the reset rule.
	DuplicateSelectors int64

	// Publishes counts writes of the reset selector.
	Publishes int64

	// ForcedFlushes counts the writes that came from OnProcessSheet.
	ForcedFlushes int64
}
