package memsheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rickchristie/isolate"
)

// -----------------------------------------------------------------------------
// Blocks
// -----------------------------------------------------------------------------

// Block is the input form of one rule. The rule type follows from Name:
// "@media ...", "@supports ..." and "@container ..." are conditional groups,
// "@keyframes name" holds keyframe steps, "@font-face" carries a style, any
// other "@" name is a simple at-rule, everything else is a style rule.
type Block struct {
	Name     string
	Style    isolate.Style
	Children []Block
}

// StyleBlock returns a style rule block.
func StyleBlock(name string, style isolate.Style) Block {
	return Block{Name: name, Style: style}
}

// NestedBlock returns an at-rule block holding children.
func NestedBlock(name string, children ...Block) Block {
	return Block{Name: name, Children: children}
}

// TypeOf returns the rule type a block name produces.
func TypeOf(name string) isolate.RuleType {
	if !strings.HasPrefix(name, "@") {
		return isolate.RuleTypeStyle
	}
	word := name
	if i := strings.IndexAny(name, " ("); i > 0 {
		word = name[:i]
	}
	switch word {
	case "@media", "@supports", "@container":
		return isolate.RuleTypeConditional
	case "@keyframes":
		return isolate.RuleTypeKeyframes
	case "@font-face":
		return isolate.RuleTypeFontFace
	default:
		return isolate.RuleTypeSimple
	}
}

// -----------------------------------------------------------------------------
// Sheet
// -----------------------------------------------------------------------------

// Sheet is an ordered collection of rules. It implements isolate.Sheet.
type Sheet struct {
	id       int
	engine   *Engine
	opts     isolate.SheetOptions
	rules    []*Rule
	byName   map[string]*Rule
	classes  map[string]string
	attached bool
}

// ID returns the sheet's engine-wide identifier.
func (s *Sheet) ID() int {
	return s.id
}

// Options returns the options the sheet was created with.
func (s *Sheet) Options() isolate.SheetOptions {
	return s.opts
}

// AddRule appends a style rule and runs plugins on it.
func (s *Sheet) AddRule(name string, style isolate.Style) isolate.Rule {
	rule := s.addBlock(StyleBlock(name, style), nil)
	return rule
}

// GetRule returns the top-level rule registered under name, or nil.
func (s *Sheet) GetRule(name string) isolate.Rule {
	if r, ok := s.byName[name]; ok {
		return r
	}
	return nil
}

// Rule is GetRule returning the concrete type.
func (s *Sheet) Rule(name string) *Rule {
	return s.byName[name]
}

// Rules returns the top-level rules in order.
func (s *Sheet) Rules() []*Rule {
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Classes maps style rule names to their generated class names.
func (s *Sheet) Classes() map[string]string {
	out := make(map[string]string, len(s.classes))
	for k, v := range s.classes {
		out[k] = v
	}
	return out
}

// Attach marks the sheet active.
func (s *Sheet) Attach() {
	s.attached = true
}

// Detach marks the sheet inactive.
func (s *Sheet) Detach() {
	s.attached = false
}

// Attached reports whether Attach was called.
func (s *Sheet) Attached() bool {
	return s.attached
}

// String renders the sheet as CSS.
func (s *Sheet) String() string {
	var sb strings.Builder
	for _, r := range s.rules {
		r.render(&sb, "")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// addBlock builds the rule for b (and its children) under parent, registers
// it and runs plugins on it.
func (s *Sheet) addBlock(b Block, parent *Rule) *Rule {
	rule := &Rule{
		typ:    TypeOf(b.Name),
		key:    b.Name,
		style:  b.Style,
		parent: parent,
		sheet:  s,
		engine: s.engine,
	}

	switch {
	case rule.typ == isolate.RuleTypeStyle && parent != nil && parent.typ == isolate.RuleTypeKeyframes:
		rule.typ = isolate.RuleTypeKeyframe
		rule.selector = b.Name
	case rule.typ == isolate.RuleTypeStyle:
		rule.selector = "." + s.class(b.Name)
	default:
		rule.selector = b.Name
	}

	if parent == nil {
		s.rules = append(s.rules, rule)
		s.byName[b.Name] = rule
	} else {
		parent.children = append(parent.children, rule)
	}

	s.engine.plugins.FireProcessRule(rule, s)

	for _, child := range b.Children {
		s.addBlock(child, rule)
	}
	return rule
}

// class returns the class for name, generating it on first use so a name
// nested in an at-rule shares its top-level class.
func (s *Sheet) class(name string) string {
	if c, ok := s.classes[name]; ok {
		return c
	}
	c := s.engine.className(name, s.id)
	s.classes[name] = c
	return c
}

// -----------------------------------------------------------------------------
// Rule
// -----------------------------------------------------------------------------

// Rule is one rule of a Sheet. It implements isolate.Rule.
type Rule struct {
	typ      isolate.RuleType
	key      string
	selector string
	style    isolate.Style
	parent   *Rule
	children []*Rule
	sheet    *Sheet
	engine   *Engine
}

// Type returns the rule type.
func (r *Rule) Type() isolate.RuleType { return r.typ }

// Key returns the declared name.
func (r *Rule) Key() string { return r.key }

// Selector returns the selector text.
func (r *Rule) Selector() string { return r.selector }

// SetSelector replaces the selector text.
func (r *Rule) SetSelector(selector string) { r.selector = selector }

// Style returns the live declaration map.
func (r *Rule) Style() isolate.Style { return r.style }

// Prop returns one declaration value and whether it is present.
func (r *Rule) Prop(name string) (any, bool) {
	v, ok := r.style[name]
	return v, ok
}

// Parent returns the enclosing at-rule, or nil.
func (r *Rule) Parent() isolate.Rule {
	if r.parent == nil {
		return nil
	}
	return r.parent
}

// Children returns the nested rules of an at-rule.
func (r *Rule) Children() []*Rule {
	return r.children
}

// Factory returns the engine that built the rule.
func (r *Rule) Factory() isolate.SheetFactory {
	if r.engine == nil {
		return nil
	}
	return r.engine
}

// String renders the rule as CSS.
func (r *Rule) String() string {
	var sb strings.Builder
	r.render(&sb, "")
	return strings.TrimSuffix(sb.String(), "\n")
}

func (r *Rule) render(sb *strings.Builder, indent string) {
	switch r.typ {
	case isolate.RuleTypeConditional, isolate.RuleTypeKeyframes:
		var inner strings.Builder
		for _, c := range r.children {
			c.render(&inner, indent+"  ")
		}
		if inner.Len() == 0 {
			return
		}
		fmt.Fprintf(sb, "%s%s {\n%s%s}\n", indent, r.selector, inner.String(), indent)
	case isolate.RuleTypeSimple:
		if len(r.style) == 0 {
			fmt.Fprintf(sb, "%s%s;\n", indent, r.selector)
			return
		}
		renderDeclarations(sb, indent, r.selector, r.style)
	default:
		renderDeclarations(sb, indent, r.selector, r.style)
	}
}

func renderDeclarations(sb *strings.Builder, indent, selector string, style isolate.Style) {
	if len(style) == 0 {
		return
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Every line of a multi-line selector list gets the block indent.
	selector = strings.ReplaceAll(selector, "\n", "\n"+indent)
	fmt.Fprintf(sb, "%s%s {\n", indent, selector)
	for _, k := range keys {
		fmt.Fprintf(sb, "%s  %s: %v;\n", indent, k, style[k])
	}
	fmt.Fprintf(sb, "%s}\n", indent)
}

// Compile-time checks.
var (
	_ isolate.Sheet = (*Sheet)(nil)
	_ isolate.Rule  = (*Rule)(nil)
)
