package tt

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// AssertCSS fails the test with a unified diff when the rendered CSS differs
// from the expected text. Leading and trailing whitespace is ignored.
func AssertCSS(t *testing.T, expected, actual string) bool {
	t.Helper()

	expected = strings.TrimSpace(expected)
	actual = strings.TrimSpace(actual)
	if expected == actual {
		return true
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected + "\n"),
		B:        difflib.SplitLines(actual + "\n"),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		t.Errorf("CSS mismatch (diff failed: %v)\nexpected:\n%s\nactual:\n%s", err, expected, actual)
		return false
	}
	t.Errorf("CSS mismatch:\n%s", diff)
	return false
}

// SelectorLines splits a joined reset selector into its parts.
func SelectorLines(selector string) []string {
	if selector == "" {
		return nil
	}
	return strings.Split(selector, ",\n")
}
