// Package harness provides conformance testing for the BBCode converter.
//
// A scenario is a named list of conversion cases. Each case gives a BBCode
// input and one or more expectations about the Markdown the converter
// produces for it.
//
// # Scenario Format
//
// Scenarios are defined in YAML:
//
//	name: basic_tags
//	description: "Each supported tag on its own"
//	cases:
//	  - name: bold
//	    input: "[b]hi[/b]"
//	    expect: "**hi**"
//	  - name: link_rewrites
//	    input: "[url=http://x.com]x[/url] [b]y[/b]"
//	    contains: ["[x](http://x.com)"]
//	    absent: ["[/url]"]
//	    hits: { url-with-text: 1, bold: 1 }
//
// or in CUE, with the same field names:
//
//	name:        "basic_tags"
//	description: "Each supported tag on its own"
//	cases: [{name: "bold", input: "[b]hi[/b]", expect: "**hi**"}]
//
// # Expectations
//
//   - expect: the output must equal this text exactly
//   - contains: each string must appear in the output
//   - absent: no string may appear in the output
//   - hits: per-rule match counts (rules not listed are not checked)
//
// # Golden Snapshots
//
// A scenario's outputs can be snapshotted as canonical JSON and compared
// against testdata/golden/{name}.golden with RunWithGolden. Regenerate with:
//
//	go test ./internal/harness -update
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/basic.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
