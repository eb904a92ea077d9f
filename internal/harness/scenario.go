package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/bbcode2md/internal/convert"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Cases are converted and checked in order.
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is a single conversion with its expectations.
type Case struct {
	// Name identifies the case within its scenario.
	Name string `yaml:"name" json:"name"`

	// Input is the BBCode text to convert.
	Input string `yaml:"input" json:"input"`

	// Expect is the exact expected output. Nil means the output is not compared
	// as a whole; a pointer keeps an expected empty output distinguishable.
	Expect *string `yaml:"expect,omitempty" json:"expect,omitempty"`

	// Contains lists substrings the output must include.
	Contains []string `yaml:"contains,omitempty" json:"contains,omitempty"`

	// Absent lists substrings the output must not include.
	Absent []string `yaml:"absent,omitempty" json:"absent,omitempty"`

	// Hits maps rule names to expected match counts.
	// Only listed rules are checked.
	Hits map[string]int `yaml:"hits,omitempty" json:"hits,omitempty"`
}

// Scenario file extensions.
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtCUE  = ".cue"
)

// IsScenarioFile reports whether path has a scenario file extension.
func IsScenarioFile(path string) bool {
	switch filepath.Ext(path) {
	case ExtYAML, ExtYML, ExtCUE:
		return true
	}
	return false
}

// LoadScenario reads and parses a scenario file.
// The format is chosen by extension: .yaml/.yml are YAML, .cue is CUE.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	switch filepath.Ext(path) {
	case ExtYAML, ExtYML:
		scenario, err = parseYAML(data)
	case ExtCUE:
		scenario, err = parseCUE(path, data)
	default:
		return nil, fmt.Errorf("unsupported scenario file extension: %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario, nil
}

// parseYAML decodes a YAML scenario with strict field validation
// (catches typos like "case:" vs "cases:").
func parseYAML(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// parseCUE compiles a CUE scenario and decodes it into a Scenario.
// The value must be concrete; open definitions or unresolved fields are errors.
func parseCUE(path string, data []byte) (*Scenario, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE scenario is not concrete: %w", err)
	}

	var scenario Scenario
	if err := value.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Expect == nil && len(c.Contains) == 0 && len(c.Absent) == 0 && len(c.Hits) == 0 {
			return fmt.Errorf("cases[%d] (%s): at least one of expect, contains, absent or hits is required", i, c.Name)
		}

		for rule, count := range c.Hits {
			if _, ok := convert.Lookup(rule); !ok {
				return fmt.Errorf("cases[%d] (%s): unknown rule %q in hits", i, c.Name, rule)
			}
			if count < 0 {
				return fmt.Errorf("cases[%d] (%s): hits for %q must not be negative", i, c.Name, rule)
			}
		}
	}

	return nil
}
