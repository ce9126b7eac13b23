// Package isolate keeps inherited CSS properties from leaking into selected
// rules of a CSS-in-JS styling engine.
//
// The plugin watches every rule the host engine builds. Rules that qualify
// are collected into the selector of one generated reset rule, which sets
// every inheritable property back to its initial value. The reset rule lives
// in its own sheet, created lazily and ordered before all other sheets, so
// the isolated rules' own declarations still win.
//
// # Quick Start
//
//	engine := memsheet.New()
//	plugin := isolate.New(isolate.DefaultConfig(),
//	    isolate.WithScheduler(engine.Scheduler()),
//	)
//	engine.Use(plugin)
//
//	engine.Build([]memsheet.Block{
//	    memsheet.StyleBlock("link", isolate.Style{"color": "red"}),
//	    memsheet.StyleBlock("item", isolate.Style{"color": "blue", "isolate": false}),
//	}, isolate.SheetOptions{})
//
//	fmt.Println(engine.String())
//
// # Choosing Rules
//
// Three options decide whether a rule is isolated. The most specific one that
// is set wins:
//
//  1. The "isolate" declaration in the rule's own style. It is removed from
//     the style before output.
//  2. The Isolate field of the owning sheet's SheetOptions.
//  3. Config.Isolate on the plugin. Unset means true.
//
// Each option is a boolean or a rule name; a name isolates only the rule
// with that key. At-rules, rules nested in @media or @keyframes, rules with
// no sheet, and the reset rule itself are never isolated.
//
// # Reset Declarations
//
// Config.Reset is "inherited" by default. A mapping is merged over the
// inherited preset, its keys winning:
//
//	cfg := isolate.Config{
//	    Isolate: isolate.Bool(true),
//	    Reset:   isolate.ResetOverrides(isolate.Style{"font-family": "inherit"}),
//	}
//
// # Write Coalescing
//
// Accepted selectors are written to the reset rule through a Debouncer on
// the host's Scheduler. A pass that isolates many rules rewrites the reset
// selector once. OnProcessSheet forces any pending write so the reset rule
// is complete when a sheet finishes building.
//
// # Hooks and Events
//
// Hosts dispatch to the plugin through the interfaces in hooks.go; the hooks
// package provides a Registry for that. Observers subscribe to the events in
// events.go through events.Registry. See loggers.LoggerSubscriber for an
// observer that prints every event.
package isolate
