package isolate

// -----------------------------------------------------------------------------
// Host Hook Interfaces
// -----------------------------------------------------------------------------
//
// The host engine drives plugins through these interfaces. A plugin
// implements any combination of them and is registered with hooks.Registry:
//
//	registry := hooks.NewRegistry()
//	registry.Register(isolate.New(isolate.DefaultConfig()))
//
//	for _, rule := range sheetRules {
//	    registry.FireProcessRule(rule, sheet)
//	}
//	registry.FireProcessSheet(sheet)
//
// # Error Handling
//
// Hooks do not return errors. They run inside the host's own rule
// construction path, so a hook must not panic either: the isolate plugin
// recovers and logs anything that goes wrong inside it.
// -----------------------------------------------------------------------------

// ProcessRuleHook is implemented by plugins that want to see every rule as a
// sheet is built.
//
// sheet is nil for rules created outside any sheet.
type ProcessRuleHook interface {
	OnProcessRule(rule Rule, sheet Sheet)
}

// ProcessSheetHook is implemented by plugins that want to know when all rules
// of a sheet have been processed. Hosts that lack this event still work with
// the isolate plugin, but the final write then waits for the scheduler.
type ProcessSheetHook interface {
	OnProcessSheet(sheet Sheet)
}
