package isolate

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Plugin isolates style rules by adding their selectors to one generated
// reset rule.
//
// # Overview
//
// The host calls OnProcessRule for every rule it builds. The plugin runs the
// Classifier on it and, when the rule qualifies, hands it to the Aggregator,
// which records the selector and schedules a coalesced rewrite of the reset
// rule's selector. OnProcessSheet forces that write at the end of a sheet so
// the reset rule is current when the caller next reads it.
//
// # Creating and Using
//
//	queue := isolate.NewQueue()
//	plugin := isolate.New(isolate.DefaultConfig(),
//	    isolate.WithScheduler(queue),
//	    isolate.WithLogger(log.Logger),
//	)
//
//	registry := hooks.NewRegistry()
//	registry.Register(plugin)
//
// # Thread Safety
//
// Plugin is NOT thread-safe. Every hook, and the Scheduler the plugin was
// given, must be driven from the goroutine that runs the host. State is per
// instance: construct one Plugin per host.
type Plugin struct {
	config     Config
	classifier *Classifier
	aggregator *Aggregator

	logger    zerolog.Logger
	events    Publisher
	clock     TimeProvider
	scheduler Scheduler
	stats     Stats
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithScheduler sets the Scheduler used to defer selector writes. Without
// it every accepted rule writes immediately.
func WithScheduler(s Scheduler) Option {
	return func(p *Plugin) {
		if s != nil {
			p.scheduler = s
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

// WithEvents sets the Publisher that receives plugin events.
func WithEvents(events Publisher) Option {
	return func(p *Plugin) {
		p.events = events
	}
}

// WithTimeProvider sets the clock used to stamp events.
func WithTimeProvider(clock TimeProvider) Option {
	return func(p *Plugin) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// New creates a Plugin.
func New(cfg Config, opts ...Option) *Plugin {
	p := &Plugin{
		config:    cfg,
		logger:    zerolog.Nop(),
		clock:     NewDefaultTimeProvider(),
		scheduler: Immediate{},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.logger = p.logger.With().Str("plugin", "isolate").Logger()
	p.classifier = NewClassifier(cfg.Isolate)
	p.aggregator = NewAggregator(cfg.Reset, p.scheduler)
	p.aggregator.onCreate = p.resetCreated
	p.aggregator.onPublish = p.selectorsPublished
	return p
}

// OnProcessRule classifies rule and records its selector when it qualifies.
func (p *Plugin) OnProcessRule(rule Rule, sheet Sheet) {
	defer p.recoverHook("OnProcessRule")

	p.stats.RulesSeen++
	verdict := p.classifier.Classify(rule, sheet, p.aggregator.ResetSheet())
	if !verdict.Isolate {
		p.stats.RulesSkipped++
		p.publish(&RuleSkippedEvent{
			BaseEvent: p.base(EventNameRuleSkipped),
			Key:       ruleKey(rule),
			Tier:      verdict.Tier,
			Reason:    verdict.Reason,
		})
		return
	}

	p.stats.RulesIsolated++
	switch p.aggregator.OnRuleAccepted(rule) {
	case AcceptAdded:
		p.logger.Debug().
			Str("key", rule.Key()).
			Str("selector", rule.Selector()).
			Str("tier", string(verdict.Tier)).
			Msg("selector isolated")
		p.publish(&SelectorIsolatedEvent{
			BaseEvent: p.base(EventNameSelectorIsolated),
			Key:       rule.Key(),
			Selector:  rule.Selector(),
			Tier:      verdict.Tier,
		})
	case AcceptDuplicate:
		p.stats.DuplicateSelectors++
	case AcceptUnavailable:
		p.logger.Debug().Str("key", rule.Key()).Msg("no sheet factory, rule not isolated")
	}
}

// OnProcessSheet flushes a pending selector write.
func (p *Plugin) OnProcessSheet(_ Sheet) {
	defer p.recoverHook("OnProcessSheet")

	if p.aggregator.OnBuildComplete() {
		p.stats.ForcedFlushes++
	}
}

// Flush writes a pending selector update now, for hosts that do not emit
// OnProcessSheet. It reports whether a write was pending.
func (p *Plugin) Flush() bool {
	return p.aggregator.OnBuildComplete()
}

// Config returns the configuration the plugin was created with.
func (p *Plugin) Config() Config {
	return p.config
}

// Selectors returns the isolated selectors in first-seen order.
func (p *Plugin) Selectors() []string {
	return p.aggregator.Selectors()
}

// ResetSheet returns the generated reset sheet, or nil if nothing has been
// isolated yet.
func (p *Plugin) ResetSheet() Sheet {
	return p.aggregator.ResetSheet()
}

// ResetRule returns the generated reset rule, or nil if nothing has been
// isolated yet.
func (p *Plugin) ResetRule() Rule {
	return p.aggregator.ResetRule()
}

// Stats returns a snapshot of the plugin counters.
func (p *Plugin) Stats() Stats {
	return p.stats
}

func (p *Plugin) resetCreated(style Style) {
	p.logger.Debug().Int("declarations", len(style)).Msg("reset sheet created")
	p.publish(&ResetCreatedEvent{
		BaseEvent: p.base(EventNameResetCreated),
		Style:     style,
	})
}

func (p *Plugin) selectorsPublished(selector string, count int, forced bool) {
	p.stats.Publishes++
	p.logger.Debug().Int("selectors", count).Bool("forced", forced).Msg("reset selector published")
	p.publish(&SelectorsPublishedEvent{
		BaseEvent: p.base(EventNameSelectorsPublished),
		Selector:  selector,
		Count:     count,
		Forced:    forced,
	})
}

func (p *Plugin) base(name string) BaseEvent {
	return BaseEvent{EventName: name, Timestamp: p.clock.Now()}
}

func (p *Plugin) publish(event Event) {
	if p.events != nil {
		p.events.Dispatch(event)
	}
}

// recoverHook keeps a failure inside the plugin from aborting the host's
// rule construction.
func (p *Plugin) recoverHook(hook string) {
	if r := recover(); r != nil {
		p.logger.Error().
			Str("hook", hook).
			Err(fmt.Errorf("%v", r)).
			Msg("recovered panic in hook")
	}
}

func ruleKey(rule Rule) string {
	if rule == nil {
		return ""
	}
	return rule.Key()
}

// Compile-time checks.
var (
	_ ProcessRuleHook  = (*Plugin)(nil)
	_ ProcessSheetHook = (*Plugin)(nil)
)
