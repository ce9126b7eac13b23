// Package hooks provides the host-side registry that drives plugins.
//
// A styling engine registers its plugins once and then fires one event per
// rule while building a sheet, followed by one event when the sheet is done.
// Each plugin implements only the hook interfaces it cares about.
//
// # Hook Interfaces
//
//   - [isolate.ProcessRuleHook] - Called once per rule as a sheet is built
//   - [isolate.ProcessSheetHook] - Called once after all rules of a sheet
//
// # Creating a Hook
//
//	type CountingHook struct{ rules int }
//
//	func (h *CountingHook) OnProcessRule(rule isolate.Rule, sheet isolate.Sheet) {
//	    h.rules++
//	}
//
//	// Compile-time check
//	var _ isolate.ProcessRuleHook = (*CountingHook)(nil)
//
// # Registering Hooks
//
//	registry := hooks.NewRegistry()
//	registry.Register(isolate.New(isolate.DefaultConfig()))
//	registry.Register(&CountingHook{})
//
// See package memsheet for an engine that fires these events.
package hooks
