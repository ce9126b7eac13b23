package isolate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Config is the plugin-wide configuration. It is fixed for the life of a
// Plugin.
//
// Example (YAML):
//
//	isolate: true
//	reset:
//	  width: 1px
type Config struct {
	// Isolate is the global isolation policy: a boolean, or the name of the
	// only rule to isolate. Unset means true.
	Isolate Isolate `yaml:"isolate" json:"isolate"`

	// Reset selects the reset declarations: "inherited" (the zero value) or a
	// mapping merged over it.
	Reset ResetOption `yaml:"reset" json:"reset"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{Isolate: Bool(true)}
}

// ConfigFromMap builds a Config from a decoded document. Values of the wrong
// shape are ignored rather than rejected; use DecodeConfig for validation.
func ConfigFromMap(m map[string]any) Config {
	cfg := DefaultConfig()
	if v, ok := ParseIsolate(m["isolate"]); ok && v.IsSet() {
		cfg.Isolate = v
	}
	if raw, ok := m["reset"]; ok {
		cfg.Reset = ParseResetOption(raw)
	}
	return cfg
}

// -----------------------------------------------------------------------------
// Loading
// -----------------------------------------------------------------------------

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the Format from a file extension. Unknown extensions
// are read as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := DecodeConfig(data, FormatFromPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes data in the given format, validates it against the
// config schema and builds a Config. Empty input yields DefaultConfig.
func DecodeConfig(data []byte, format Format) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultConfig(), nil
	}

	var doc map[string]any
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s config: %w", format, err)
	}
	if err := validateConfig(doc); err != nil {
		return Config{}, err
	}
	return ConfigFromMap(doc), nil
}

// ConfigError wraps a schema validation failure of a config document.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// configSchemaJSON constrains the known keys only. Unknown keys are allowed
// and ignored.
const configSchemaJSON = `{
	"type": "object",
	"properties": {
		"isolate": {"type": ["boolean", "string"]},
		"reset": {
			"type": ["string", "object"],
			"additionalProperties": {"type": ["string", "number"]}
		}
	}
}`

var configSchema = mustCompileSchema(configSchemaJSON)

func mustCompileSchema(src string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("failed to parse config schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("config.json", doc); err != nil {
		panic(fmt.Sprintf("failed to add config schema: %v", err))
	}
	compiled, err := c.Compile("config.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile config schema: %v", err))
	}
	return compiled
}

// validateConfig round-trips doc through JSON so values decoded by the YAML
// and TOML parsers reach the validator as JSON types.
func validateConfig(doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := configSchema.Validate(inst); err != nil {
		return &ConfigError{Err: err}
	}
	return nil
}
