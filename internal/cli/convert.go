package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/bbcode2md/internal/canon"
	"github.com/roach88/bbcode2md/internal/convert"
	"github.com/roach88/bbcode2md/internal/store"
)

// ConvertOptions holds flags for the conversion commands.
type ConvertOptions struct {
	*RootOptions
	Output  string // overrides the derived .md path
	History string // conversion history database, empty to skip recording

	// StoreOptions are passed to store.Open when recording history.
	// Tests use them to pin record IDs and timestamps.
	StoreOptions []store.Option
}

// ConvertResult is the JSON payload of a successful conversion.
type ConvertResult struct {
	Input       string         `json:"input"`
	Output      string         `json:"output"`
	InputBytes  int            `json:"input_bytes"`
	OutputBytes int            `json:"output_bytes"`
	RuleHits    map[string]int `json:"rule_hits"`
	HistoryID   string         `json:"history_id,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a BBCode file to Markdown",
		Long: `Convert a BBCode file to Markdown.

The result is written next to the input with the extension replaced by .md,
overwriting any existing file. A .md input is converted in place.

Examples:
  bbcode2md convert post.txt
  bbcode2md convert post.txt -o out/post.md
  bbcode2md convert post.txt --history ./history.db`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertArgs(opts, args, cmd)
		},
	}

	addConvertFlags(cmd, opts)
	return cmd
}

func addConvertFlags(cmd *cobra.Command, opts *ConvertOptions) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output path (default: input path with .md extension)")
	cmd.Flags().StringVar(&opts.History, "history", "", "record the conversion in this SQLite database")
}

// runConvertArgs checks for exactly one path before converting.
// Nothing is read or written on a usage error.
func runConvertArgs(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	if len(args) != 1 {
		return outputError(newFormatter(opts.RootOptions, cmd), ErrCodeUsage, usageLine, nil)
	}
	return runConvert(opts, args[0], cmd)
}

func runConvert(opts *ConvertOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	text, err := readInput(path)
	if err != nil {
		return reportInputError(formatter, err)
	}

	report := convert.Analyze(text)

	outPath := opts.Output
	if outPath == "" {
		outPath = DeriveOutputPath(path)
	}
	logger.Debug("converted", "input", path, "output", outPath, "rewrites", report.Total())

	if err := writeOutput(outPath, report.Output); err != nil {
		return reportInputError(formatter, err)
	}

	result := ConvertResult{
		Input:       path,
		Output:      outPath,
		InputBytes:  len(text),
		OutputBytes: len(report.Output),
		RuleHits:    report.HitMap(),
	}

	if opts.History != "" {
		rec, err := recordConversion(commandContext(cmd), opts, text, report, path, outPath, logger)
		if err != nil {
			return outputError(formatter, ErrCodeStore, "failed to record conversion", err)
		}
		result.HistoryID = rec.ID
	}

	for _, hit := range report.Hits {
		if hit.Count > 0 {
			formatter.VerboseLog("  %s: %d", hit.Rule, hit.Count)
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("Conversion complete: '%s'", outPath))
}

func recordConversion(ctx context.Context, opts *ConvertOptions, text string, report convert.Report, inPath, outPath string, logger *slog.Logger) (store.Conversion, error) {
	st, err := store.Open(opts.History, opts.StoreOptions...)
	if err != nil {
		return store.Conversion{}, err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	rec, err := st.RecordConversion(ctx, store.Conversion{
		InputPath:    absPath(inPath),
		OutputPath:   absPath(outPath),
		InputDigest:  canon.DigestString(canon.DomainInput, text),
		OutputDigest: canon.DigestString(canon.DomainOutput, report.Output),
		InputBytes:   len(text),
		OutputBytes:  len(report.Output),
		RuleHits:     report.HitMap(),
	})
	if err != nil {
		return store.Conversion{}, err
	}
	logger.Debug("conversion recorded", "id", rec.ID, "db", opts.History)
	return rec, nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
