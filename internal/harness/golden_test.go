package harness

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Testdata(t *testing.T) {
	// Regenerate with:
	//   go test ./internal/harness -run TestRunWithGolden_Testdata -update
	for _, name := range []string{"basic_tags.yaml", "composition.cue"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name))
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestSnapshot_Canonical(t *testing.T) {
	scenario := &Scenario{
		Name:        "snap",
		Description: "snapshot format",
		Cases: []Case{
			{Name: "size", Input: "[size=2]s[/size]", Expect: strPtr(`<span style="font-size:2;">s</span>`)},
			{Name: "plain", Input: "a\nb", Expect: strPtr("a\nb")},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	snapshot, err := Snapshot(scenario, result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"cases":[{"hits":{"size":1},"name":"size","output":"<span style=\"font-size:2;\">s</span>"},`+
			`{"hits":{},"name":"plain","output":"a\nb"}],"scenario_name":"snap"}`,
		string(snapshot))
}

func TestSnapshot_Deterministic(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "basic_tags.yaml"))
	require.NoError(t, err)

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	a, err := Snapshot(scenario, first)
	require.NoError(t, err)
	b, err := Snapshot(scenario, second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompareAndWriteGolden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golden", "x.golden")
	snapshot := []byte(`{"cases":[],"scenario_name":"x"}`)

	_, err := CompareGolden(path, snapshot)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGoldenMissing))

	require.NoError(t, WriteGolden(path, snapshot))
	assert.FileExists(t, path)

	match, err := CompareGolden(path, snapshot)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = CompareGolden(path, []byte(`{}`))
	require.NoError(t, err)
	assert.False(t, match)
}
