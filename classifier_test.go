package isolate_test

import (
	"testing"

	"github.com/rickchristie/isolate"
	"github.com/rickchristie/isolate/internal/tt"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Gate(t *testing.T) {
	keyframes := &tt.FakeRule{RuleType: isolate.RuleTypeKeyframes, Name: "@keyframes id"}
	media := &tt.FakeRule{RuleType: isolate.RuleTypeConditional, Name: "@media print"}
	resetSheet := tt.NewSheet(isolate.SheetOptions{Meta: isolate.ResetSheetMeta})
	sheet := tt.NewSheet(isolate.SheetOptions{})

	tests := []struct {
		name   string
		rule   isolate.Rule
		sheet  isolate.Sheet
		reason string
	}{
		{
			name:   "keyframes block",
			rule:   keyframes,
			sheet:  sheet,
			reason: "not a style rule",
		},
		{
			name:   "font-face block",
			rule:   &tt.FakeRule{RuleType: isolate.RuleTypeFontFace, Name: "@font-face", Declarations: isolate.Style{"src": "x"}},
			sheet:  sheet,
			reason: "not a style rule",
		},
		{
			name:   "no sheet",
			rule:   tt.NewStyleRule("link", isolate.Style{"color": "red"}),
			sheet:  nil,
			reason: "no sheet",
		},
		{
			name:   "reset sheet",
			rule:   tt.NewStyleRule("reset", isolate.Style{"color": "red"}),
			sheet:  resetSheet,
			reason: "reset sheet",
		},
		{
			name:   "no declarations",
			rule:   tt.NewStyleRule("link", nil),
			sheet:  sheet,
			reason: "no declarations",
		},
		{
			name:   "nested in keyframes",
			rule:   tt.NewStyleRule("from", isolate.Style{"top": 0}).WithParent(keyframes),
			sheet:  sheet,
			reason: "nested in keyframes",
		},
		{
			name:   "nested in conditional",
			rule:   tt.NewStyleRule("link", isolate.Style{"color": "red"}).WithParent(media),
			sheet:  sheet,
			reason: "nested in conditional",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := isolate.NewClassifier(isolate.Bool(true))

			verdict := c.Classify(tc.rule, tc.sheet, resetSheet)

			assert.False(t, verdict.Isolate)
			assert.Equal(t, isolate.TierGate, verdict.Tier)
			assert.Equal(t, tc.reason, verdict.Reason)
		})
	}
}

func TestClassifier_Tiers(t *testing.T) {
	type input struct {
		ruleKey string
		style   isolate.Style
		sheet   isolate.Isolate
		global  isolate.Isolate
	}

	type expected struct {
		isolate bool
		tier    isolate.Tier
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:     "default global isolates",
			input:    input{ruleKey: "link", style: isolate.Style{"color": "red"}},
			expected: expected{isolate: true, tier: isolate.TierGlobal},
		},
		{
			name:     "global false",
			input:    input{ruleKey: "link", style: isolate.Style{}, global: isolate.Bool(false)},
			expected: expected{isolate: false, tier: isolate.TierGlobal},
		},
		{
			name:     "global name matches",
			input:    input{ruleKey: "root", style: isolate.Style{}, global: isolate.Named("root")},
			expected: expected{isolate: true, tier: isolate.TierGlobal},
		},
		{
			name:     "global name does not match",
			input:    input{ruleKey: "link", style: isolate.Style{}, global: isolate.Named("root")},
			expected: expected{isolate: false, tier: isolate.TierGlobal},
		},
		{
			name:     "sheet false beats global true",
			input:    input{ruleKey: "link", style: isolate.Style{}, sheet: isolate.Bool(false), global: isolate.Bool(true)},
			expected: expected{isolate: false, tier: isolate.TierSheet},
		},
		{
			name:     "sheet true beats global false",
			input:    input{ruleKey: "link", style: isolate.Style{}, sheet: isolate.Bool(true), global: isolate.Bool(false)},
			expected: expected{isolate: true, tier: isolate.TierSheet},
		},
		{
			name:     "sheet name admits matching rule",
			input:    input{ruleKey: "root", style: isolate.Style{}, sheet: isolate.Named("root")},
			expected: expected{isolate: true, tier: isolate.TierSheet},
		},
		{
			name:     "sheet name rejects other rules",
			input:    input{ruleKey: "link", style: isolate.Style{}, sheet: isolate.Named("root")},
			expected: expected{isolate: false, tier: isolate.TierSheet},
		},
		{
			name:     "rule false beats sheet true",
			input:    input{ruleKey: "link", style: isolate.Style{"isolate": false}, sheet: isolate.Bool(true)},
			expected: expected{isolate: false, tier: isolate.TierRule},
		},
		{
			name:     "rule true beats sheet false",
			input:    input{ruleKey: "link", style: isolate.Style{"isolate": true}, sheet: isolate.Bool(false)},
			expected: expected{isolate: true, tier: isolate.TierRule},
		},
		{
			name:     "rule true beats sheet name",
			input:    input{ruleKey: "link", style: isolate.Style{"isolate": true}, sheet: isolate.Named("root")},
			expected: expected{isolate: true, tier: isolate.TierRule},
		},
		{
			name:     "rule name compares against own key",
			input:    input{ruleKey: "link", style: isolate.Style{"isolate": "other"}},
			expected: expected{isolate: false, tier: isolate.TierRule},
		},
		{
			name:     "unusable rule value falls through",
			input:    input{ruleKey: "link", style: isolate.Style{"isolate": 1}, sheet: isolate.Bool(false)},
			expected: expected{isolate: false, tier: isolate.TierSheet},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule := tt.NewStyleRule(tc.input.ruleKey, tc.input.style)
			sheet := tt.NewSheet(isolate.SheetOptions{Isolate: tc.input.sheet})
			c := isolate.NewClassifier(tc.input.global)

			verdict := c.Classify(rule, sheet, nil)

			assert.Equal(t, tc.expected.isolate, verdict.Isolate)
			assert.Equal(t, tc.expected.tier, verdict.Tier)
			assert.Empty(t, verdict.Reason)
		})
	}
}

func TestClassifier_ConsumesIsolateDeclaration(t *testing.T) {
	rule := tt.NewStyleRule("link", isolate.Style{"color": "blue", "isolate": false})
	sheet := tt.NewSheet(isolate.SheetOptions{})

	isolate.NewClassifier(isolate.Unset()).Classify(rule, sheet, nil)

	_, ok := rule.Style()["isolate"]
	assert.False(t, ok, "isolate declaration must be stripped")
	assert.Equal(t, isolate.Style{"color": "blue"}, rule.Style())
}

func TestClassifier_GateKeepsIsolateDeclaration(t *testing.T) {
	media := &tt.FakeRule{RuleType: isolate.RuleTypeConditional, Name: "@media print"}
	rule := tt.NewStyleRule("link", isolate.Style{"isolate": true}).WithParent(media)
	sheet := tt.NewSheet(isolate.SheetOptions{})

	verdict := isolate.NewClassifier(isolate.Unset()).Classify(rule, sheet, nil)

	assert.False(t, verdict.Isolate)
	assert.Contains(t, rule.Style(), "isolate")
}

func TestShouldIsolate(t *testing.T) {
	sheet := tt.NewSheet(isolate.SheetOptions{})

	assert.True(t, isolate.ShouldIsolate(
		tt.NewStyleRule("link", isolate.Style{}), sheet, isolate.DefaultConfig()))
	assert.True(t, isolate.ShouldIsolate(
		tt.NewStyleRule("link", isolate.Style{}), sheet, isolate.Config{}))
	assert.False(t, isolate.ShouldIsolate(
		tt.NewStyleRule("link", isolate.Style{}), sheet, isolate.Config{Isolate: isolate.Bool(false)}))
	assert.False(t, isolate.ShouldIsolate(
		tt.NewStyleRule("link", isolate.Style{}), nil, isolate.DefaultConfig()))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "unset", isolate.DecisionUnset.String())
	assert.Equal(t, "isolate", isolate.DecisionIsolate.String())
	assert.Equal(t, "skip", isolate.DecisionSkip.String())
}
