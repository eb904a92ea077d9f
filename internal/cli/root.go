package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the bbcode2md CLI.
// Invoked with a file path and no subcommand, it converts that file.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	convertOpts := &ConvertOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "bbcode2md <file>",
		Short: "bbcode2md - convert BBCode markup to Markdown",
		Long: `Convert forum-style BBCode markup to Markdown.

Supported tags: [url=...]...[/url], [url]...[/url], [b], [i], [u],
[size=...]...[/size] and [img]...[/img]. Tag names are case-insensitive.
Underline and size have no Markdown form and become inline HTML.

Example:
  bbcode2md post.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertArgs(convertOpts, args, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	addConvertFlags(cmd, convertOpts)

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))
	cmd.AddCommand(NewPreviewCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
