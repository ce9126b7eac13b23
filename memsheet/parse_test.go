package memsheet_test

import (
	"strings"
	"testing"

	"github.com/rickchristie/isolate"
	"github.com/rickchristie/isolate/memsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoSheets = `
options:
  isolate: false
  index: 3
  meta: buttons
rules:
  zeta:
    color: red
  alpha:
    color: blue
    isolate: true
  "@media print":
    zeta:
      color: black
---
rules:
  empty:
  "@keyframes fade":
    from: {opacity: 0}
`

func TestParseSheetsYAML(t *testing.T) {
	specs, err := memsheet.ParseSheetsYAML(strings.NewReader(twoSheets))
	require.NoError(t, err)
	require.Len(t, specs, 2)

	first := specs[0]
	assert.Equal(t, isolate.SheetOptions{
		Isolate: isolate.Bool(false),
		Index:   3,
		Meta:    "buttons",
	}, first.Options)
	assert.Equal(t, []memsheet.Block{
		memsheet.StyleBlock("zeta", isolate.Style{"color": "red"}),
		memsheet.StyleBlock("alpha", isolate.Style{"color": "blue", "isolate": true}),
		memsheet.NestedBlock("@media print",
			memsheet.StyleBlock("zeta", isolate.Style{"color": "black"}),
		),
	}, first.Blocks, "rule order follows the file")

	second := specs[1]
	assert.False(t, second.Options.Isolate.IsSet())
	assert.Equal(t, []memsheet.Block{
		memsheet.StyleBlock("empty", nil),
		memsheet.NestedBlock("@keyframes fade",
			memsheet.StyleBlock("from", isolate.Style{"opacity": 0}),
		),
	}, second.Blocks)
}

func TestParseSheetsYAML_NamedIsolate(t *testing.T) {
	specs, err := memsheet.ParseSheetsYAML(strings.NewReader("options: {isolate: root}\n"))
	require.NoError(t, err)
	require.Len(t, specs, 1)

	name, ok := specs[0].Options.Isolate.Name()
	assert.True(t, ok)
	assert.Equal(t, "root", name)
	assert.Empty(t, specs[0].Blocks)
}

func TestParseSheetsYAML_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "rules not a mapping",
			input:    "rules: [a, b]\n",
			contains: "rules must be a mapping",
		},
		{
			name:     "style not a mapping",
			input:    "rules:\n  link: red\n",
			contains: "link: line 2: style must be a mapping",
		},
		{
			name:     "nested style not a mapping",
			input:    "rules:\n  \"@media print\":\n    link: [1]\n",
			contains: "@media print: link:",
		},
		{
			name:     "malformed yaml",
			input:    "rules: {\n",
			contains: "sheet document 0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := memsheet.ParseSheetsYAML(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestParseSheetYAML(t *testing.T) {
	spec, err := memsheet.ParseSheetYAML([]byte("rules:\n  link: {color: red}\n"))
	require.NoError(t, err)
	assert.Len(t, spec.Blocks, 1)

	_, err = memsheet.ParseSheetYAML([]byte(twoSheets))
	assert.EqualError(t, err, "expected 1 sheet document, got 2")
}

func TestParseBlocksYAML(t *testing.T) {
	blocks, err := memsheet.ParseBlocksYAML([]byte("{link: {color: red}, item: {color: blue, isolate: false}}"))
	require.NoError(t, err)

	assert.Equal(t, []memsheet.Block{
		memsheet.StyleBlock("link", isolate.Style{"color": "red"}),
		memsheet.StyleBlock("item", isolate.Style{"color": "blue", "isolate": false}),
	}, blocks)

	_, err = memsheet.ParseBlocksYAML([]byte("- link\n"))
	assert.Error(t, err)
}

func TestBuildSpec(t *testing.T) {
	spec, err := memsheet.ParseSheetYAML([]byte("options: {index: 2}\nrules:\n  link: {color: red}\n"))
	require.NoError(t, err)

	engine := memsheet.New()
	sheet := engine.BuildSpec(spec)

	assert.Equal(t, 2, sheet.Options().Index)
	assert.Equal(t, ".link-0-1 {\n  color: red;\n}", sheet.String())
}
