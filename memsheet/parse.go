package memsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/rickchristie/isolate"
	"gopkg.in/yaml.v3"
)

// SheetSpec is a parsed sheet file.
type SheetSpec struct {
	Options isolate.SheetOptions
	Blocks  []Block
}

type sheetFile struct {
	Options struct {
		Isolate isolate.Isolate `yaml:"isolate"`
		Index   int             `yaml:"index"`
		Meta    string          `yaml:"meta"`
	} `yaml:"options"`
	Rules yaml.Node `yaml:"rules"`
}

// ParseSheetsYAML reads one sheet per YAML document from r. Rule order in
// the output matches the order in the file.
func ParseSheetsYAML(r io.Reader) ([]SheetSpec, error) {
	dec := yaml.NewDecoder(r)
	var specs []SheetSpec
	for i := 0; ; i++ {
		var f sheetFile
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode sheet document %d: %w", i, err)
		}
		blocks, err := parseBlocks(&f.Rules)
		if err != nil {
			return nil, fmt.Errorf("sheet document %d: %w", i, err)
		}
		specs = append(specs, SheetSpec{
			Options: isolate.SheetOptions{
				Isolate: f.Options.Isolate,
				Index:   f.Options.Index,
				Meta:    f.Options.Meta,
			},
			Blocks: blocks,
		})
	}
	return specs, nil
}

// ParseSheetYAML reads exactly one sheet from data.
func ParseSheetYAML(data []byte) (SheetSpec, error) {
	specs, err := ParseSheetsYAML(bytes.NewReader(data))
	if err != nil {
		return SheetSpec{}, err
	}
	if len(specs) != 1 {
		return SheetSpec{}, fmt.Errorf("expected 1 sheet document, got %d", len(specs))
	}
	return specs[0], nil
}

// ParseBlocksYAML reads a bare rules mapping such as `link: {color: red}`.
func ParseBlocksYAML(data []byte) ([]Block, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return parseBlocks(node.Content[0])
	}
	return parseBlocks(&node)
}

// parseBlocks walks a mapping node pair by pair so declaration order is kept.
func parseBlocks(node *yaml.Node) ([]Block, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: rules must be a mapping", node.Line)
	}

	blocks := make([]Block, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		name := key.Value

		switch TypeOf(name) {
		case isolate.RuleTypeConditional, isolate.RuleTypeKeyframes:
			children, err := parseBlocks(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			blocks = append(blocks, NestedBlock(name, children...))
		default:
			style, err := parseStyle(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			blocks = append(blocks, StyleBlock(name, style))
		}
	}
	return blocks, nil
}

func parseStyle(node *yaml.Node) (isolate.Style, error) {
	// `name:` with no value declares a rule without declarations.
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: style must be a mapping", node.Line)
	}
	var style map[string]any
	if err := node.Decode(&style); err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}
	if style == nil {
		style = map[string]any{}
	}
	return isolate.Style(style), nil
}
