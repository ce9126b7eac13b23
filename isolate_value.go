package isolate

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type isolateKind uint8

const (
	isolateUnset isolateKind = iota
	isolateBool
	isolateNamed
)

// Isolate is an isolation policy value. It is either unset, a boolean, or the
// name of the single rule to isolate. The zero value is unset.
//
// Examples:
//
//	isolate.Bool(false)     // never isolate
//	isolate.Named("root")   // isolate only the rule declared as "root"
//	isolate.Unset()         // defer to the next tier
type Isolate struct {
	kind isolateKind
	on   bool
	name string
}

// Unset returns an Isolate that defers to the next tier.
func Unset() Isolate {
	return Isolate{}
}

// Bool returns a boolean Isolate.
func Bool(b bool) Isolate {
	return Isolate{kind: isolateBool, on: b}
}

// Named returns an Isolate that admits only the rule declared under name.
func Named(name string) Isolate {
	return Isolate{kind: isolateNamed, name: name}
}

// ParseIsolate converts a loosely typed value (as found in a Style or a
// decoded config document) into an Isolate. nil yields Unset. Values that are
// neither bool nor string also yield Unset with ok set to false.
func ParseIsolate(v any) (Isolate, bool) {
	switch x := v.(type) {
	case nil:
		return Unset(), true
	case bool:
		return Bool(x), true
	case string:
		return Named(x), true
	case Isolate:
		return x, true
	default:
		return Unset(), false
	}
}

// IsSet reports whether the value is a boolean or a name.
func (i Isolate) IsSet() bool {
	return i.kind != isolateUnset
}

// BoolValue returns the boolean and true if the value is a boolean.
func (i Isolate) BoolValue() (bool, bool) {
	return i.on, i.kind == isolateBool
}

// Name returns the rule name and true if the value names a rule.
func (i Isolate) Name() (string, bool) {
	return i.name, i.kind == isolateNamed
}

// decide maps the value to a classifier decision for the rule declared
// under key.
func (i Isolate) decide(key string) Decision {
	switch i.kind {
	case isolateBool:
		if i.on {
			return DecisionIsolate
		}
		return DecisionSkip
	case isolateNamed:
		if i.name == key {
			return DecisionIsolate
		}
		return DecisionSkip
	default:
		return DecisionUnset
	}
}

// String renders the value the way it would be written in a config file.
func (i Isolate) String() string {
	switch i.kind {
	case isolateBool:
		return fmt.Sprintf("%t", i.on)
	case isolateNamed:
		return fmt.Sprintf("%q", i.name)
	default:
		return "unset"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Isolate) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, ok := ParseIsolate(raw)
	if !ok {
		return fmt.Errorf("isolate: expected bool or string, got %T", raw)
	}
	*i = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (i Isolate) MarshalYAML() (any, error) {
	return i.raw(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Isolate) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, ok := ParseIsolate(raw)
	if !ok {
		return fmt.Errorf("isolate: expected bool or string, got %T", raw)
	}
	*i = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (i Isolate) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.raw())
}

func (i Isolate) raw() any {
	switch i.kind {
	case isolateBool:
		return i.on
	case isolateNamed:
		return i.name
	default:
		return nil
	}
}
