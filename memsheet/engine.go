package memsheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rickchristie/isolate"
	"github.com/rickchristie/isolate/hooks"
)

// Engine builds sheets and runs plugins on them.
//
// Engine is NOT thread-safe.
type Engine struct {
	plugins *hooks.Registry
	queue   *isolate.Queue
	sheets  []*Sheet
	nextID  int
	counter int
}

// New creates an Engine with no plugins.
func New() *Engine {
	return &Engine{
		plugins: hooks.NewRegistry(),
		queue:   isolate.NewQueue(),
		sheets:  make([]*Sheet, 0),
	}
}

// Use registers plugins. They run in registration order.
func (e *Engine) Use(plugins ...any) *Engine {
	for _, p := range plugins {
		e.plugins.Register(p)
	}
	return e
}

// Scheduler returns the engine's deferred task queue. Pass it to plugins that
// defer work with isolate.WithScheduler.
func (e *Engine) Scheduler() *isolate.Queue {
	return e.queue
}

// Tick runs every deferred task and returns how many ran.
func (e *Engine) Tick() int {
	return e.queue.Drain()
}

// CreateStyleSheet registers an empty sheet. It implements
// isolate.SheetFactory.
func (e *Engine) CreateStyleSheet(opts isolate.SheetOptions) isolate.Sheet {
	return e.newSheet(opts)
}

// Build creates a sheet from blocks, running plugins on every rule and then
// on the sheet itself.
func (e *Engine) Build(blocks []Block, opts isolate.SheetOptions) *Sheet {
	sheet := e.newSheet(opts)
	for _, b := range blocks {
		sheet.addBlock(b, nil)
	}
	e.plugins.FireProcessSheet(sheet)
	return sheet
}

// BuildSpec creates a sheet from a parsed sheet file.
func (e *Engine) BuildSpec(spec SheetSpec) *Sheet {
	return e.Build(spec.Blocks, spec.Options)
}

// CreateRule creates a style rule that belongs to no sheet and runs plugins
// on it.
func (e *Engine) CreateRule(name string, style isolate.Style) *Rule {
	rule := &Rule{
		typ:      isolate.RuleTypeStyle,
		key:      name,
		selector: "." + e.className(name, 0),
		style:    style,
		engine:   e,
	}
	e.plugins.FireProcessRule(rule, nil)
	return rule
}

// Sheets returns every registered sheet ordered by index. Sheets with equal
// indexes keep creation order.
func (e *Engine) Sheets() []*Sheet {
	out := make([]*Sheet, len(e.sheets))
	copy(out, e.sheets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].opts.Index < out[j].opts.Index
	})
	return out
}

// Reset drops every registered sheet. Plugins stay registered.
func (e *Engine) Reset() {
	e.sheets = make([]*Sheet, 0)
}

// String renders all sheets in order.
func (e *Engine) String() string {
	var parts []string
	for _, s := range e.Sheets() {
		if css := s.String(); css != "" {
			parts = append(parts, css)
		}
	}
	return strings.Join(parts, "\n")
}

func (e *Engine) newSheet(opts isolate.SheetOptions) *Sheet {
	s := &Sheet{
		id:      e.nextID,
		engine:  e,
		opts:    opts,
		byName:  make(map[string]*Rule),
		classes: make(map[string]string),
	}
	e.nextID++
	e.sheets = append(e.sheets, s)
	return s
}

// className generates "key-sheetID-counter".
func (e *Engine) className(key string, sheetID int) string {
	e.counter++
	return fmt.Sprintf("%s-%d-%d", key, sheetID, e.counter)
}

// Compile-time check.
var _ isolate.SheetFactory = (*Engine)(nil)
