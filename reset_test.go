package isolate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolveReset(t *testing.T) {
	tests := []struct {
		name     string
		input    ResetOption
		expected map[string]any
	}{
		{
			name:  "inherited preset",
			input: ResetOption{},
			expected: map[string]any{
				"border-collapse": "separate",
				"font-family":     "serif",
			},
		},
		{
			name:  "override adds a property",
			input: ResetOverrides(Style{"width": "1px"}),
			expected: map[string]any{
				"width":           "1px",
				"border-collapse": "separate",
				"font-family":     "serif",
			},
		},
		{
			name:  "override wins over preset",
			input: ResetOverrides(Style{"font-family": "sans-serif"}),
			expected: map[string]any{
				"font-family":     "sans-serif",
				"border-collapse": "separate",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := ResolveReset(tt.input)
			for k, v := range tt.expected {
				assert.Equal(t, v, style[k], "property %s", k)
			}
		})
	}
}

func TestResolveReset_KeepsUnoverriddenDefaults(t *testing.T) {
	style := ResetOverrides(Style{"width": "1px"}).Resolve()

	assert.Len(t, style, len(inherited)+1)
	for k, v := range inherited {
		assert.Equal(t, v, style[k])
	}
}

func TestResolveReset_ReturnsFreshCopy(t *testing.T) {
	style := ResolveReset(ResetOption{})
	style["font-family"] = "mutated"

	assert.Equal(t, "serif", InheritedReset()["font-family"])
}

func TestParseResetOption(t *testing.T) {
	tests := []struct {
		name          string
		input         any
		expectedWidth any
	}{
		{name: "inherited string", input: "inherited", expectedWidth: nil},
		{name: "unknown string falls back to preset", input: "minimal", expectedWidth: nil},
		{name: "nil", input: nil, expectedWidth: nil},
		{name: "map overrides", input: map[string]any{"width": "1px"}, expectedWidth: "1px"},
		{name: "style overrides", input: Style{"width": "2px"}, expectedWidth: "2px"},
		{name: "unsupported shape", input: []string{"width"}, expectedWidth: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := ParseResetOption(tt.input).Resolve()
			assert.Equal(t, tt.expectedWidth, style["width"])
			assert.Equal(t, "serif", style["font-family"])
		})
	}
}

func TestResetOption_YAMLAndJSON(t *testing.T) {
	var doc struct {
		Reset ResetOption `yaml:"reset"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("reset:\n  width: 1px\n"), &doc))
	assert.Equal(t, Style{"width": "1px"}, doc.Reset.Overrides())

	require.NoError(t, yaml.Unmarshal([]byte("reset: inherited\n"), &doc))
	assert.Nil(t, doc.Reset.Overrides())

	var opt ResetOption
	require.NoError(t, json.Unmarshal([]byte(`{"width":"1px"}`), &opt))
	assert.Equal(t, Style{"width": "1px"}, opt.Overrides())

	out, err := json.Marshal(ResetOption{})
	require.NoError(t, err)
	assert.Equal(t, `"inherited"`, string(out))
}
