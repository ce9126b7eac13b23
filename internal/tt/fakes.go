package tt

import (
	"github.com/rickchristie/isolate"
)

// -----------------------------------------------------------------------------
// FakeRule - implements isolate.Rule
// -----------------------------------------------------------------------------

// FakeRule is a hand-built rule for classifier and aggregator tests.
type FakeRule struct {
	RuleType     isolate.RuleType
	Name         string
	SelectorText string
	Declarations isolate.Style
	ParentRule   isolate.Rule
	RuleFactory  isolate.SheetFactory

	// SetSelectorCalls counts SetSelector calls.
	SetSelectorCalls int
}

// NewStyleRule creates a style rule named name with selector "."+name.
func NewStyleRule(name string, style isolate.Style) *FakeRule {
	return &FakeRule{
		RuleType:     isolate.RuleTypeStyle,
		Name:         name,
		SelectorText: "." + name,
		Declarations: style,
	}
}

// WithFactory sets the rule's factory.
func (r *FakeRule) WithFactory(f isolate.SheetFactory) *FakeRule {
	r.RuleFactory = f
	return r
}

// WithParent sets the rule's parent.
func (r *FakeRule) WithParent(p isolate.Rule) *FakeRule {
	r.ParentRule = p
	return r
}

// WithSelector overrides the selector.
func (r *FakeRule) WithSelector(sel string) *FakeRule {
	r.SelectorText = sel
	return r
}

func (r *FakeRule) Type() isolate.RuleType { return r.RuleType }
func (r *FakeRule) Key() string            { return r.Name }
func (r *FakeRule) Selector() string       { return r.SelectorText }
func (r *FakeRule) Style() isolate.Style   { return r.Declarations }

func (r *FakeRule) SetSelector(sel string) {
	r.SelectorText = sel
	r.SetSelectorCalls++
}

func (r *FakeRule) Parent() isolate.Rule {
	if r.ParentRule == nil {
		return nil
	}
	return r.ParentRule
}

func (r *FakeRule) Factory() isolate.SheetFactory {
	if r.RuleFactory == nil {
		return nil
	}
	return r.RuleFactory
}

// -----------------------------------------------------------------------------
// FakeSheet - implements isolate.Sheet
// -----------------------------------------------------------------------------

// FakeSheet records added rules. It does not run plugins.
type FakeSheet struct {
	Opts     isolate.SheetOptions
	Added    []*FakeRule
	Attached bool

	// RefuseRules makes AddRule return nil.
	RefuseRules bool
}

// NewSheet creates a FakeSheet with opts.
func NewSheet(opts isolate.SheetOptions) *FakeSheet {
	return &FakeSheet{Opts: opts}
}

func (s *FakeSheet) Options() isolate.SheetOptions { return s.Opts }

func (s *FakeSheet) AddRule(name string, style isolate.Style) isolate.Rule {
	if s.RefuseRules {
		return nil
	}
	r := NewStyleRule(name, style)
	s.Added = append(s.Added, r)
	return r
}

func (s *FakeSheet) GetRule(name string) isolate.Rule {
	for _, r := range s.Added {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func (s *FakeSheet) Attach() { s.Attached = true }

// -----------------------------------------------------------------------------
// FakeFactory - implements isolate.SheetFactory
// -----------------------------------------------------------------------------

// FakeFactory hands out FakeSheets and records them.
type FakeFactory struct {
	Created []*FakeSheet

	// RefuseSheets makes CreateStyleSheet return nil.
	RefuseSheets bool

	// RefuseRules is copied onto every created sheet.
	RefuseRules bool

	// Panic makes CreateStyleSheet panic with this value when non-nil.
	Panic any
}

// NewFactory creates an empty FakeFactory.
func NewFactory() *FakeFactory {
	return &FakeFactory{}
}

func (f *FakeFactory) CreateStyleSheet(opts isolate.SheetOptions) isolate.Sheet {
	if f.Panic != nil {
		panic(f.Panic)
	}
	if f.RefuseSheets {
		return nil
	}
	s := NewSheet(opts)
	s.RefuseRules = f.RefuseRules
	f.Created = append(f.Created, s)
	return s
}

// Compile-time checks.
var (
	_ isolate.Rule         = (*FakeRule)(nil)
	_ isolate.Sheet        = (*FakeSheet)(nil)
	_ isolate.SheetFactory = (*FakeFactory)(nil)
)
