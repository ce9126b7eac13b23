package isolate

// AcceptResult is the outcome of Aggregator.OnRuleAccepted.
type AcceptResult uint8

const (
	// AcceptAdded means the selector was new and a write was requested.
	AcceptAdded AcceptResult = iota

	// AcceptDuplicate means the selector was already in the reset rule.
	AcceptDuplicate

	// AcceptUnavailable means no reset rule exists and none could be created,
	// so nothing was recorded.
	AcceptUnavailable
)

// Aggregator collects isolated selectors into the single reset rule.
//
// The reset sheet is created lazily, through the factory of the first
// accepted rule, so a build that isolates nothing never emits an empty reset
// block. Selector writes go through a Debouncer: every accepted rule in one
// host pass collapses into one write of the joined selector list.
//
// Aggregator is NOT thread-safe.
type Aggregator struct {
	reset      ResetOption
	selectors  *SelectorSet
	debouncer  *Debouncer
	resetSheet Sheet
	resetRule  Rule

	onCreate  func(style Style)
	onPublish func(selector string, count int, forced bool)
}

// NewAggregator creates an Aggregator that seeds the reset rule from reset
// and schedules selector writes on scheduler (nil writes immediately).
func NewAggregator(reset ResetOption, scheduler Scheduler) *Aggregator {
	a := &Aggregator{
		reset:     reset,
		selectors: NewSelectorSet(),
	}
	a.debouncer = NewDebouncer(scheduler, a.publish)
	return a
}

// OnRuleAccepted records the selector of a rule the classifier admitted.
func (a *Aggregator) OnRuleAccepted(rule Rule) AcceptResult {
	if a.resetRule == nil {
		// A reset sheet without a rule means the host refused the rule once
		// already; do not ask again.
		if a.resetSheet != nil || !a.createReset(rule.Factory()) {
			return AcceptUnavailable
		}
	}
	if !a.selectors.Add(rule.Selector()) {
		return AcceptDuplicate
	}
	a.debouncer.Trigger()
	return AcceptAdded
}

// OnBuildComplete writes a pending selector update synchronously. It reports
// whether a write was pending.
func (a *Aggregator) OnBuildComplete() bool {
	return a.debouncer.Flush()
}

// Pending reports whether a selector write is waiting for the scheduler.
func (a *Aggregator) Pending() bool {
	return a.debouncer.Pending()
}

// Selectors returns the isolated selectors in first-seen order.
func (a *Aggregator) Selectors() []string {
	return a.selectors.Slice()
}

// ResetSheet returns the generated reset sheet, or nil before the first
// accepted rule.
func (a *Aggregator) ResetSheet() Sheet {
	return a.resetSheet
}

// ResetRule returns the generated reset rule, or nil before the first
// accepted rule.
func (a *Aggregator) ResetRule() Rule {
	return a.resetRule
}

// createReset builds the reset sheet and rule once. The reset style is
// resolved here, at first use.
func (a *Aggregator) createReset(factory SheetFactory) bool {
	if factory == nil {
		return false
	}
	sheet := factory.CreateStyleSheet(SheetOptions{
		Link:  true,
		Meta:  ResetSheetMeta,
		Index: ResetSheetIndex,
	})
	if sheet == nil {
		return false
	}
	// The host runs its plugins on the rule added below, this one included.
	// The sheet must be known before that so the classifier rejects it.
	a.resetSheet = sheet

	style := a.reset.Resolve()
	rule := sheet.AddRule(ResetRuleName, style)
	if rule == nil {
		return false
	}
	sheet.Attach()

	a.resetRule = rule
	if a.onCreate != nil {
		a.onCreate(style)
	}
	return true
}

func (a *Aggregator) publish(forced bool) {
	if a.resetRule == nil {
		return
	}
	selector := a.selectors.Join()
	a.resetRule.SetSelector(selector)
	if a.onPublish != nil {
		a.onPublish(selector, a.selectors.Len(), forced)
	}
}
