package isolate

// -----------------------------------------------------------------------------
// Host Object Model
// -----------------------------------------------------------------------------
//
// The plugin does not own rules or sheets. The styling engine that hosts it
// builds them and hands them to the plugin one at a time through the hook
// interfaces in hooks.go. The interfaces below are the minimum surface the
// plugin needs from that engine. See package memsheet for an in-memory engine
// that implements them.
// -----------------------------------------------------------------------------

// RuleType tags the kind of a rule.
type RuleType string

const (
	// RuleTypeStyle is an ordinary selector block with declarations.
	RuleTypeStyle RuleType = "style"

	// RuleTypeKeyframes is an @keyframes block.
	RuleTypeKeyframes RuleType = "keyframes"

	// RuleTypeKeyframe is one step (from, to, 30%) inside an @keyframes block.
	RuleTypeKeyframe RuleType = "keyframe"

	// RuleTypeConditional is a conditional group such as @media or @supports.
	RuleTypeConditional RuleType = "conditional"

	// RuleTypeFontFace is an @font-face block.
	RuleTypeFontFace RuleType = "font-face"

	// RuleTypeSimple is any other at-rule (@charset, @import, ...).
	RuleTypeSimple RuleType = "simple"
)

// Style is the declaration block of a rule, keyed by CSS property name.
//
// The map is shared with the host. The plugin deletes the "isolate" key from
// it so the flag never reaches the emitted CSS.
type Style map[string]any

// Clone returns a shallow copy of the style. A nil style clones to nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	dup := make(Style, len(s))
	for k, v := range s {
		dup[k] = v
	}
	return dup
}

// Rule is one rule owned by a host sheet.
type Rule interface {
	// Type returns the kind of rule.
	Type() RuleType

	// Key returns the name the rule was declared under (e.g. "link").
	Key() string

	// Selector returns the generated selector text (e.g. ".link-0-1-1").
	Selector() string

	// SetSelector replaces the selector text.
	SetSelector(selector string)

	// Style returns the live declaration map, or nil if the rule carries none.
	Style() Style

	// Parent returns the lexical parent rule, or nil at the top level.
	Parent() Rule

	// Factory returns the engine that built the rule, or nil when the rule
	// was created without one.
	Factory() SheetFactory
}

// Sheet is an ordered collection of rules with its own options.
type Sheet interface {
	// Options returns the options the sheet was created with.
	Options() SheetOptions

	// AddRule appends a style rule named name and returns it.
	AddRule(name string, style Style) Rule

	// GetRule returns the rule registered under name, or nil.
	GetRule(name string) Rule

	// Attach marks the sheet active so its rules are rendered.
	Attach()
}

// SheetOptions are the creation options of a sheet.
type SheetOptions struct {
	// Isolate is the per-sheet isolation policy. Unset defers to the plugin.
	Isolate Isolate

	// Meta is an identifying tag for the sheet.
	Meta string

	// Index orders sheets; lower indexes render first.
	Index int

	// Link asks the host to keep rule objects linked to their rendered
	// counterparts so later selector changes are reflected.
	Link bool
}

// SheetFactory creates sheets. The reset sheet is requested through it.
type SheetFactory interface {
	CreateStyleSheet(opts SheetOptions) Sheet
}
