package isolate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseIsolate(t *testing.T) {
	type expected struct {
		value Isolate
		ok    bool
	}

	tests := []struct {
		name     string
		input    any
		expected expected
	}{
		{name: "nil is unset", input: nil, expected: expected{value: Unset(), ok: true}},
		{name: "true", input: true, expected: expected{value: Bool(true), ok: true}},
		{name: "false", input: false, expected: expected{value: Bool(false), ok: true}},
		{name: "rule name", input: "root", expected: expected{value: Named("root"), ok: true}},
		{name: "isolate passes through", input: Named("x"), expected: expected{value: Named("x"), ok: true}},
		{name: "number is rejected", input: 1, expected: expected{value: Unset(), ok: false}},
		{name: "map is rejected", input: map[string]any{}, expected: expected{value: Unset(), ok: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParseIsolate(tt.input)
			assert.Equal(t, tt.expected.value, value)
			assert.Equal(t, tt.expected.ok, ok)
		})
	}
}

func TestIsolate_Decide(t *testing.T) {
	tests := []struct {
		name     string
		value    Isolate
		key      string
		expected Decision
	}{
		{name: "unset has no opinion", value: Unset(), key: "link", expected: DecisionUnset},
		{name: "true isolates", value: Bool(true), key: "link", expected: DecisionIsolate},
		{name: "false skips", value: Bool(false), key: "link", expected: DecisionSkip},
		{name: "matching name isolates", value: Named("root"), key: "root", expected: DecisionIsolate},
		{name: "other name skips", value: Named("root"), key: "link", expected: DecisionSkip},
		{name: "empty name matches only empty key", value: Named(""), key: "link", expected: DecisionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.decide(tt.key))
		})
	}
}

func TestIsolate_Accessors(t *testing.T) {
	b, ok := Bool(false).BoolValue()
	assert.True(t, ok)
	assert.False(t, b)

	_, ok = Named("root").BoolValue()
	assert.False(t, ok)

	name, ok := Named("root").Name()
	assert.True(t, ok)
	assert.Equal(t, "root", name)

	assert.False(t, Unset().IsSet())
	assert.True(t, Bool(false).IsSet())
	assert.Equal(t, "unset", Unset().String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, `"root"`, Named("root").String())
}

func TestIsolate_YAML(t *testing.T) {
	var doc struct {
		A Isolate `yaml:"a"`
		B Isolate `yaml:"b"`
		C Isolate `yaml:"c"`
	}
	err := yaml.Unmarshal([]byte("a: false\nb: root\n"), &doc)
	require.NoError(t, err)

	assert.Equal(t, Bool(false), doc.A)
	assert.Equal(t, Named("root"), doc.B)
	assert.Equal(t, Unset(), doc.C)

	err = yaml.Unmarshal([]byte("a: [1, 2]\n"), &doc)
	assert.Error(t, err)

	out, err := yaml.Marshal(map[string]Isolate{"x": Named("root")})
	require.NoError(t, err)
	assert.Equal(t, "x: root\n", string(out))
}

func TestIsolate_JSON(t *testing.T) {
	var v Isolate
	require.NoError(t, json.Unmarshal([]byte(`true`), &v))
	assert.Equal(t, Bool(true), v)

	require.NoError(t, json.Unmarshal([]byte(`"root"`), &v))
	assert.Equal(t, Named("root"), v)

	assert.Error(t, json.Unmarshal([]byte(`12`), &v))

	out, err := json.Marshal(Bool(false))
	require.NoError(t, err)
	assert.Equal(t, "false", string(out))

	out, err = json.Marshal(Unset())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
