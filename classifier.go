package isolate

// Decision is the outcome of one tier of the isolation policy.
type Decision uint8

const (
	// DecisionUnset means the tier has no opinion; the next tier decides.
	DecisionUnset Decision = iota

	// DecisionIsolate admits the rule into the reset selector.
	DecisionIsolate

	// DecisionSkip keeps the rule out of the reset selector.
	DecisionSkip
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case DecisionIsolate:
		return "isolate"
	case DecisionSkip:
		return "skip"
	default:
		return "unset"
	}
}

// Tier names the layer of the policy that produced a verdict.
type Tier string

const (
	// TierGate is the eligibility check that runs before any option is read.
	TierGate Tier = "gate"

	// TierRule is the "isolate" declaration inside the rule's own style.
	TierRule Tier = "rule"

	// TierSheet is the "isolate" option of the owning sheet.
	TierSheet Tier = "sheet"

	// TierGlobal is the plugin-wide "isolate" option.
	TierGlobal Tier = "global"
)

// Verdict is the classification of one rule.
type Verdict struct {
	// Isolate is true when the rule's selector belongs in the reset rule.
	Isolate bool

	// Tier is the layer that decided.
	Tier Tier

	// Reason explains a gate rejection. Empty for option-driven verdicts.
	Reason string
}

// tier is one layer of the override chain.
type tier struct {
	name Tier
	eval func(rule Rule, sheet Sheet) Decision
}

// Classifier decides per rule whether it should be isolated.
//
// The policy is an ordered chain: rule declaration, then sheet option, then
// the plugin option. The first tier with an opinion wins. Rules that fail the
// eligibility gate are rejected before any tier runs.
//
// Classifier is NOT thread-safe and mutates rule styles (it strips the
// "isolate" declaration).
type Classifier struct {
	tiers []tier
}

// NewClassifier creates a Classifier whose last tier is global. An unset
// global value means true.
func NewClassifier(global Isolate) *Classifier {
	if !global.IsSet() {
		global = Bool(true)
	}
	return &Classifier{
		tiers: []tier{
			{name: TierRule, eval: ruleTier},
			{name: TierSheet, eval: sheetTier},
			{name: TierGlobal, eval: func(rule Rule, _ Sheet) Decision {
				return global.decide(rule.Key())
			}},
		},
	}
}

// Classify returns the verdict for rule in sheet. resetSheet is the sheet the
// plugin generated, if any; its own rules are never isolated.
func (c *Classifier) Classify(rule Rule, sheet Sheet, resetSheet Sheet) Verdict {
	if reason := ineligible(rule, sheet, resetSheet); reason != "" {
		return Verdict{Tier: TierGate, Reason: reason}
	}
	for _, t := range c.tiers {
		switch t.eval(rule, sheet) {
		case DecisionIsolate:
			return Verdict{Isolate: true, Tier: t.name}
		case DecisionSkip:
			return Verdict{Isolate: false, Tier: t.name}
		}
	}
	// The global tier always has an opinion.
	return Verdict{Isolate: true, Tier: TierGlobal}
}

// ShouldIsolate reports whether rule in sheet should be isolated under cfg.
// Like Classify, it consumes the rule's "isolate" declaration.
func ShouldIsolate(rule Rule, sheet Sheet, cfg Config) bool {
	return NewClassifier(cfg.Isolate).Classify(rule, sheet, nil).Isolate
}

// ineligible returns a non-empty reason when the rule can never be isolated.
func ineligible(rule Rule, sheet Sheet, resetSheet Sheet) string {
	switch {
	case rule == nil:
		return "no rule"
	case rule.Type() != RuleTypeStyle:
		return "not a style rule"
	case sheet == nil:
		return "no sheet"
	case resetSheet != nil && sheet == resetSheet:
		return "reset sheet"
	case rule.Style() == nil:
		return "no declarations"
	}
	if parent := rule.Parent(); parent != nil {
		switch parent.Type() {
		case RuleTypeKeyframes, RuleTypeConditional:
			return "nested in " + string(parent.Type())
		}
	}
	return ""
}

// ruleTier consumes the "isolate" declaration so it never reaches the
// emitted CSS. A value that is neither bool nor string is dropped and the
// tier stays unset.
func ruleTier(rule Rule, _ Sheet) Decision {
	style := rule.Style()
	raw, ok := style[StyleKeyIsolate]
	if !ok {
		return DecisionUnset
	}
	delete(style, StyleKeyIsolate)
	v, _ := ParseIsolate(raw)
	return v.decide(rule.Key())
}

func sheetTier(rule Rule, sheet Sheet) Decision {
	return sheet.Options().Isolate.decide(rule.Key())
}
