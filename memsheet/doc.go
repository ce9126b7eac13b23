// Package memsheet is a small in-memory styling engine that hosts isolate
// plugins.
//
// It implements the host object model of package isolate (rules, sheets, a
// sheet factory), generates class selectors, fires plugin hooks through a
// hooks.Registry while sheets are built, and renders CSS text. It does not
// touch a DOM; "attaching" a sheet only marks it active.
//
// # Quick Start
//
//	engine := memsheet.New()
//	engine.Use(isolate.New(isolate.DefaultConfig(),
//	    isolate.WithScheduler(engine.Scheduler()),
//	))
//
//	sheet := engine.Build([]memsheet.Block{
//	    memsheet.StyleBlock("link", isolate.Style{"color": "red"}),
//	    memsheet.StyleBlock("linkItem", isolate.Style{"color": "blue"}),
//	}, isolate.SheetOptions{})
//
//	engine.Tick()
//	fmt.Println(engine.String())
//
// # Sheet Files
//
// ParseSheetsYAML reads sheets from YAML, keeping declaration order:
//
//	options:
//	  isolate: false
//	rules:
//	  link:
//	    color: red
//	  "@media print":
//	    link:
//	      color: black
//
// Multiple YAML documents in one stream produce multiple sheets.
package memsheet
