package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/bbcode2md/internal/canon"
)

// GoldenDir is the goldie fixture directory, relative to the package under test.
const GoldenDir = "testdata/golden"

// GoldenSuffix is the golden file extension.
const GoldenSuffix = ".golden"

// Snapshot renders the scenario outcome as canonical JSON:
//
//	{"cases":[{"hits":{...},"name":"...","output":"..."}],"scenario_name":"..."}
//
// Pass/fail and error text are excluded so a snapshot records only what the
// converter produced.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	cases := make([]any, len(result.Cases))
	for i, c := range result.Cases {
		hits := c.Hits
		if hits == nil {
			hits = map[string]int{}
		}
		cases[i] = map[string]any{
			"name":   c.Name,
			"output": c.Output,
			"hits":   hits,
		}
	}

	return canon.Marshal(map[string]any{
		"scenario_name": scenario.Name,
		"cases":         cases,
	})
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result against the scenario's golden file
// without re-running it.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	snapshot, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(GoldenSuffix),
	)
	g.Assert(t, scenario.Name, snapshot)

	return nil
}

// ErrGoldenMissing is returned by CompareGolden when no golden file exists yet.
var ErrGoldenMissing = errors.New("golden file missing")

// CompareGolden reports whether snapshot matches the golden file at path.
// Used by the CLI test command, which runs outside go test.
func CompareGolden(path string, snapshot []byte) (bool, error) {
	want, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("%s: %w", path, ErrGoldenMissing)
	}
	if err != nil {
		return false, fmt.Errorf("read golden file: %w", err)
	}
	return bytes.Equal(want, snapshot), nil
}

// WriteGolden writes snapshot to path, creating parent directories.
func WriteGolden(path string, snapshot []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create golden dir: %w", err)
	}
	if err := os.WriteFile(path, snapshot, 0644); err != nil {
		return fmt.Errorf("write golden file: %w", err)
	}
	return nil
}
