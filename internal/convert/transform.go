package convert

// Pipeline is an ordered sequence of rules applied as a left fold.
type Pipeline []Rule

// Compose builds a pipeline that applies rules in the given order.
func Compose(rules ...Rule) Pipeline {
	p := make(Pipeline, len(rules))
	copy(p, rules)
	return p
}

// Transform folds text through every rule in order.
func (p Pipeline) Transform(text string) string {
	for _, r := range p {
		text = r.Apply(text)
	}
	return text
}

// RuleHit records how many matches one rule rewrote.
type RuleHit struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// Report is the outcome of an analyzed conversion.
type Report struct {
	Output string    `json:"output"`
	Hits   []RuleHit `json:"hits"`
}

// Total returns the number of rewrites across all rules.
func (r Report) Total() int {
	n := 0
	for _, h := range r.Hits {
		n += h.Count
	}
	return n
}

// HitMap returns the per-rule counts keyed by rule name, omitting rules that never matched.
func (r Report) HitMap() map[string]int {
	m := make(map[string]int)
	for _, h := range r.Hits {
		if h.Count > 0 {
			m[h.Rule] = h.Count
		}
	}
	return m
}

// Analyze folds text through the pipeline like Transform, additionally counting
// the matches each rule rewrote. Counts are taken against the text as it stood
// when the rule ran, so a rule sees the output of the rules before it.
func (p Pipeline) Analyze(text string) Report {
	report := Report{Hits: make([]RuleHit, 0, len(p))}
	for _, r := range p {
		report.Hits = append(report.Hits, RuleHit{Rule: r.Name, Count: r.Count(text)})
		text = r.Apply(text)
	}
	report.Output = text
	return report
}

var defaultPipeline = Pipeline(defaultRules)

// Transform converts BBCode text to Markdown using the fixed rule sequence.
// It never fails; text without recognised tags is returned unchanged.
func Transform(text string) string {
	return defaultPipeline.Transform(text)
}

// Analyze converts text like Transform and reports per-rule match counts.
func Analyze(text string) Report {
	return defaultPipeline.Analyze(text)
}
