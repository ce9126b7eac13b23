package isolate

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ResetOption selects the declarations of the reset rule. The zero value is
// the "inherited" preset.
type ResetOption struct {
	overrides Style
}

// ResetOverrides returns an option that shallow-merges overrides on top of
// the inherited preset. Keys in overrides win.
func ResetOverrides(overrides Style) ResetOption {
	return ResetOption{overrides: overrides.Clone()}
}

// ParseResetOption converts a loosely typed value into a ResetOption.
// Mappings become overrides. Any other shape, including unknown preset
// names, falls back to the inherited preset.
func ParseResetOption(v any) ResetOption {
	switch x := v.(type) {
	case ResetOption:
		return x
	case Style:
		return ResetOverrides(x)
	case map[string]any:
		return ResetOverrides(Style(x))
	default:
		return ResetOption{}
	}
}

// Overrides returns a copy of the caller overrides, nil for the bare preset.
func (o ResetOption) Overrides() Style {
	return o.overrides.Clone()
}

// Resolve returns the declarations for the reset rule.
func (o ResetOption) Resolve() Style {
	return ResolveReset(o)
}

// ResolveReset merges the overrides of opt over the inherited preset.
func ResolveReset(opt ResetOption) Style {
	style := InheritedReset()
	for k, v := range opt.overrides {
		style[k] = v
	}
	return style
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts "inherited" or a
// mapping of property overrides.
func (o *ResetOption) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*o = ParseResetOption(raw)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o ResetOption) MarshalYAML() (any, error) {
	if o.overrides == nil {
		return ResetInherited, nil
	}
	return map[string]any(o.overrides), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ResetOption) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*o = ParseResetOption(raw)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o ResetOption) MarshalJSON() ([]byte, error) {
	if o.overrides == nil {
		return json.Marshal(ResetInherited)
	}
	return json.Marshal(map[string]any(o.overrides))
}
