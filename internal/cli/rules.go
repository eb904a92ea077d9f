package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/bbcode2md/internal/convert"
)

// RuleInfo describes one conversion rule for display.
type RuleInfo struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the conversion rules in application order",
		Long: `List the conversion rules in the order they are applied.

Patterns are matched case-insensitively and may span lines. Each capture is
non-greedy, so a match ends at the first closing tag.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(rootOpts, cmd)
		},
	}
}

func runRules(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	infos := ruleInfos(convert.Rules())

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPATTERN\tREPLACEMENT")
	for _, info := range infos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", info.Index, info.Name, info.Pattern, info.Replacement)
	}
	return tw.Flush()
}

func ruleInfos(rules []convert.Rule) []RuleInfo {
	infos := make([]RuleInfo, len(rules))
	for i, r := range rules {
		infos[i] = RuleInfo{
			Index:       i + 1,
			Name:        r.Name,
			Pattern:     r.Source(),
			Replacement: r.Replacement,
		}
	}
	return infos
}
