package harness

// CaseResult is the outcome of one conversion case.
type CaseResult struct {
	Name   string         `json:"name"`
	Output string         `json:"output"`
	Hits   map[string]int `json:"hits"`
	Pass   bool           `json:"pass"`
	Errors []string       `json:"errors,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every case met all of its expectations.
	Pass bool `json:"pass"`

	// Cases holds per-case outcomes in scenario order.
	// Used for golden comparison.
	Cases []CaseResult `json:"cases"`

	// Errors contains failure messages prefixed with the case name.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Cases:  []CaseResult{},
		Errors: []string{},
	}
}

// AddCase appends a case outcome, folding its failures into the result.
func (r *Result) AddCase(c CaseResult) {
	r.Cases = append(r.Cases, c)
	for _, msg := range c.Errors {
		r.AddError(c.Name + ": " + msg)
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Passed returns the number of passing cases.
func (r *Result) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Pass {
			n++
		}
	}
	return n
}
