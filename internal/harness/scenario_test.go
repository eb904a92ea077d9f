package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes content to name under a fresh temp dir and returns its path.
func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidYAML(t *testing.T) {
	path := writeScenario(t, "test.yaml", `
name: test_scenario
description: "Test scenario for validation"
cases:
  - name: bold
    input: "[b]x[/b]"
    expect: "**x**"
  - name: counts
    input: "[i]y[/i]"
    contains: ["*y*"]
    absent: ["[i]"]
    hits: { italic: 1 }
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	require.Len(t, scenario.Cases, 2)
	require.NotNil(t, scenario.Cases[0].Expect)
	assert.Equal(t, "**x**", *scenario.Cases[0].Expect)
	assert.Nil(t, scenario.Cases[1].Expect)
	assert.Equal(t, []string{"*y*"}, scenario.Cases[1].Contains)
	assert.Equal(t, []string{"[i]"}, scenario.Cases[1].Absent)
	assert.Equal(t, map[string]int{"italic": 1}, scenario.Cases[1].Hits)
}

func TestLoadScenario_EmptyExpectIsKept(t *testing.T) {
	path := writeScenario(t, "empty.yml", `
name: empty
description: "empty in, empty out"
cases:
  - name: empty
    input: ""
    expect: ""
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	require.NotNil(t, scenario.Cases[0].Expect)
	assert.Equal(t, "", *scenario.Cases[0].Expect)
}

func TestLoadScenario_ValidCUE(t *testing.T) {
	path := writeScenario(t, "test.cue", `
name:        "cue_scenario"
description: "Scenario written in CUE"
cases: [{
	name:   "underline"
	input:  "[u]x[/u]"
	expect: "<u>x</u>"
	hits: {underline: 1}
}]
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "cue_scenario", scenario.Name)
	require.Len(t, scenario.Cases, 1)
	require.NotNil(t, scenario.Cases[0].Expect)
	assert.Equal(t, "<u>x</u>", *scenario.Cases[0].Expect)
	assert.Equal(t, map[string]int{"underline": 1}, scenario.Cases[0].Hits)
}

func TestLoadScenario_CUENotConcrete(t *testing.T) {
	path := writeScenario(t, "open.cue", `
name:        string
description: "missing a concrete name"
cases: [{name: "a", input: "x", expect: "x"}]
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not concrete")
}

func TestLoadScenario_CUESyntaxError(t *testing.T) {
	path := writeScenario(t, "bad.cue", `name: "x" description: {`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile CUE")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnsupportedExtension(t *testing.T) {
	path := writeScenario(t, "scenario.json", `{}`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scenario file extension")
}

func TestLoadScenario_UnknownFieldRejected(t *testing.T) {
	path := writeScenario(t, "typo.yaml", `
name: typo
description: "misspelled field"
case:
  - name: a
    input: x
    expect: x
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "description: d\ncases:\n  - {name: a, input: x, expect: x}\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\ncases:\n  - {name: a, input: x, expect: x}\n",
			wantErr: "description is required",
		},
		{
			name:    "no cases",
			content: "name: n\ndescription: d\ncases: []\n",
			wantErr: "cases list is required",
		},
		{
			name:    "case without name",
			content: "name: n\ndescription: d\ncases:\n  - {input: x, expect: x}\n",
			wantErr: "cases[0]: name is required",
		},
		{
			name:    "duplicate case",
			content: "name: n\ndescription: d\ncases:\n  - {name: a, input: x, expect: x}\n  - {name: a, input: y, expect: y}\n",
			wantErr: `duplicate case name "a"`,
		},
		{
			name:    "no expectation",
			content: "name: n\ndescription: d\ncases:\n  - {name: a, input: x}\n",
			wantErr: "at least one of expect, contains, absent or hits",
		},
		{
			name:    "unknown rule",
			content: "name: n\ndescription: d\ncases:\n  - {name: a, input: x, hits: {strike: 1}}\n",
			wantErr: `unknown rule "strike"`,
		},
		{
			name:    "negative hits",
			content: "name: n\ndescription: d\ncases:\n  - {name: a, input: x, hits: {bold: -1}}\n",
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, "s.yaml", tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsScenarioFile(t *testing.T) {
	assert.True(t, IsScenarioFile("a.yaml"))
	assert.True(t, IsScenarioFile("dir/a.yml"))
	assert.True(t, IsScenarioFile("a.cue"))
	assert.False(t, IsScenarioFile("a.golden"))
	assert.False(t, IsScenarioFile("a.txt"))
}

func TestLoadScenario_Testdata(t *testing.T) {
	for _, name := range []string{"basic_tags.yaml", "composition.cue"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name))
			require.NoError(t, err)
			assert.NotEmpty(t, scenario.Cases)
		})
	}
}
