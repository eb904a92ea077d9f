package convert

import (
	"regexp"
	"strings"
)

// Rule is a single BBCode to Markdown rewrite.
// Rules are immutable once built; the compiled pattern is safe for concurrent use.
type Rule struct {
	// Name identifies the rule in reports (e.g., "bold", "url-with-text").
	Name string

	// Pattern is the compiled match expression.
	Pattern *regexp.Regexp

	// Replacement is a regexp.Expand template referencing the pattern's groups.
	Replacement string
}

// Rule names, in application order.
const (
	RuleURLWithText = "url-with-text"
	RuleURL         = "url"
	RuleBold        = "bold"
	RuleItalic      = "italic"
	RuleUnderline   = "underline"
	RuleSize        = "size"
	RuleImage       = "image"
)

// Flags shared by every rule: (?i) case-insensitive tags, (?s) content across newlines.
const patternFlags = `(?is)`

// defaultRules is the fixed rule sequence. Order matters for the link rules only.
var defaultRules = []Rule{
	newRule(RuleURLWithText, `\[url=(.*?)\](.*?)\[/url\]`, `[${2}](${1})`),
	newRule(RuleURL, `\[url\](.*?)\[/url\]`, `[${1}](${1})`),
	newRule(RuleBold, `\[b\](.*?)\[/b\]`, `**${1}**`),
	newRule(RuleItalic, `\[i\](.*?)\[/i\]`, `*${1}*`),
	newRule(RuleUnderline, `\[u\](.*?)\[/u\]`, `<u>${1}</u>`),
	newRule(RuleSize, `\[size=(.*?)\](.*?)\[/size\]`, `<span style="font-size:${1};">${2}</span>`),
	newRule(RuleImage, `\[img\](.*?)\[/img\]`, `![image](${1})`),
}

func newRule(name, pattern, replacement string) Rule {
	return Rule{
		Name:        name,
		Pattern:     regexp.MustCompile(patternFlags + pattern),
		Replacement: replacement,
	}
}

// Rules returns a copy of the fixed rule sequence in application order.
func Rules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// Lookup returns the rule with the given name.
func Lookup(name string) (Rule, bool) {
	for _, r := range defaultRules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply rewrites every non-overlapping match of the rule in text.
// Captured content is inserted verbatim; a '$' inside it is not expanded.
func (r Rule) Apply(text string) string {
	return r.Pattern.ReplaceAllString(text, r.Replacement)
}

// Count returns the number of non-overlapping matches of the rule in text.
func (r Rule) Count(text string) int {
	return len(r.Pattern.FindAllStringIndex(text, -1))
}

// Source returns the pattern without the shared flag prefix, for display.
func (r Rule) Source() string {
	return strings.TrimPrefix(r.Pattern.String(), patternFlags)
}
