package isolate

import "math"

// =============================================================================
// Names the plugin reads from or writes to the host
// =============================================================================

const (
	// StyleKeyIsolate is the declaration consumed from a rule's style.
	StyleKeyIsolate = "isolate"

	// ResetRuleName is the name of the single rule in the reset sheet.
	ResetRuleName = "reset"

	// ResetSheetMeta tags the generated reset sheet.
	ResetSheetMeta = "isolate"

	// ResetSheetIndex orders the reset sheet before every other sheet.
	ResetSheetIndex = math.MinInt

	// SelectorSeparator joins isolated selectors in the reset rule.
	SelectorSeparator = ",\n"
)

// =============================================================================
// Reset presets
// =============================================================================

const (
	// ResetInherited selects the built-in reset of inherited properties.
	ResetInherited = "inherited"
)
