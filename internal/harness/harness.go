package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/bbcode2md/internal/convert"
)

// Harness executes scenarios against a conversion pipeline.
type Harness struct {
	pipeline convert.Pipeline
	logger   *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithPipeline replaces the default rule sequence, for exercising rule subsets.
func WithPipeline(p convert.Pipeline) Option {
	return func(h *Harness) { h.pipeline = p }
}

// WithLogger sets the logger used for per-case debug output.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a harness over the default rules with logging discarded.
func New(opts ...Option) *Harness {
	h := &Harness{
		pipeline: convert.Compose(convert.Rules()...),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with the default harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(scenario)
}

// Run converts every case of the scenario and checks its expectations.
// All cases run even after a failure so the result reports every mismatch.
// An error is returned only when the scenario itself is unusable.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	result := NewResult()
	for _, c := range scenario.Cases {
		report := h.pipeline.Analyze(c.Input)
		cr := CaseResult{
			Name:   c.Name,
			Output: report.Output,
			Hits:   report.HitMap(),
		}
		cr.Errors = checkCase(c, cr)
		cr.Pass = len(cr.Errors) == 0

		h.logger.Debug("case converted",
			"scenario", scenario.Name,
			"case", c.Name,
			"rewrites", report.Total(),
			"pass", cr.Pass,
		)

		result.AddCase(cr)
	}

	return result, nil
}
