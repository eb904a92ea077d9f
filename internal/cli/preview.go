package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/bbcode2md/internal/convert"
	"github.com/roach88/bbcode2md/internal/render"
)

// PreviewOptions holds flags for the preview command.
type PreviewOptions struct {
	*RootOptions
	Output     string
	Standalone bool
	Title      string
}

// PreviewResult is the JSON payload of the preview command.
type PreviewResult struct {
	Input    string `json:"input"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	Output   string `json:"output,omitempty"`
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PreviewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Convert a BBCode file and render the Markdown as HTML",
		Long: `Convert a BBCode file and render the resulting Markdown as HTML.

The input file is never modified. HTML goes to stdout unless --output is set.

Examples:
  bbcode2md preview post.txt
  bbcode2md preview post.txt --standalone -o post.html`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.Standalone, "standalone", false, "wrap the fragment in a complete HTML document")
	cmd.Flags().StringVar(&opts.Title, "title", "", "document title for --standalone (default: file name)")

	return cmd
}

func runPreview(opts *PreviewOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	text, err := readInput(path)
	if err != nil {
		return reportInputError(formatter, err)
	}

	markdown := convert.Transform(text)
	html, err := render.New().HTML(markdown)
	if err != nil {
		return outputError(formatter, ErrCodeGeneric, "failed to render preview", err)
	}

	if opts.Standalone {
		title := opts.Title
		if title == "" {
			title = filepath.Base(path)
		}
		html = render.Document(title, html)
	}
	logger.Debug("preview rendered", "input", path, "bytes", len(html))

	if opts.Output != "" {
		if err := writeOutput(opts.Output, html); err != nil {
			return reportInputError(formatter, err)
		}
	}

	if opts.Format == "json" {
		return formatter.Success(PreviewResult{
			Input:    path,
			Markdown: markdown,
			HTML:     html,
			Output:   opts.Output,
		})
	}

	if opts.Output != "" {
		return formatter.Success(fmt.Sprintf("Preview written: '%s'", opts.Output))
	}
	_, err = io.WriteString(cmd.OutOrStdout(), html)
	return err
}
