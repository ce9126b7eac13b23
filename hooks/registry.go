package hooks

import (
	"github.com/rickchristie/isolate"
)

// Registry manages a collection of plugins and dispatches host events to
// them.
//
// Plugins can implement any combination of hook interfaces - they only
// receive events for the interfaces they implement. Plugins are called in
// the order they are registered.
//
// # Thread Safety
//
// Registry is NOT thread-safe. Register all plugins before building sheets.
// Fire methods should only be called by the host engine.
type Registry struct {
	hooks []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireProcessRule dispatches a rule to all registered ProcessRuleHook
// implementations. sheet is nil for rules created outside a sheet.
func (r *Registry) FireProcessRule(rule isolate.Rule, sheet isolate.Sheet) {
	for _, h := range r.hooks {
		if hook, ok := h.(isolate.ProcessRuleHook); ok {
			hook.OnProcessRule(rule, sheet)
		}
	}
}

// FireProcessSheet dispatches a completed sheet to all registered
// ProcessSheetHook implementations.
func (r *Registry) FireProcessSheet(sheet isolate.Sheet) {
	for _, h := range r.hooks {
		if hook, ok := h.(isolate.ProcessSheetHook); ok {
			hook.OnProcessSheet(sheet)
		}
	}
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.hooks)
}

// Clear removes all registered plugins.
func (r *Registry) Clear() {
	r.hooks = make([]any, 0)
}
