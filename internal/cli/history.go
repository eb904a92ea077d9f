package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/bbcode2md/internal/canon"
	"github.com/roach88/bbcode2md/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Input    string
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Conversions []store.Conversion `json:"conversions"`
	Total       int                `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions",
		Long: `List conversions recorded with --history, newest first.

Example:
  bbcode2md history --db ./history.db
  bbcode2md history --db ./history.db --input post.txt --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of conversions to list (0 for all)")
	cmd.Flags().StringVar(&opts.Input, "input", "", "only list conversions of this input file")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	// Reading history must not create an empty database.
	if _, err := os.Stat(opts.Database); errors.Is(err, os.ErrNotExist) {
		return outputError(formatter, ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.Database), nil)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return outputError(formatter, ErrCodeStore, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := commandContext(cmd)

	var conversions []store.Conversion
	if opts.Input != "" {
		conversions, err = st.ListConversionsForInput(ctx, absPath(opts.Input))
		if err == nil && opts.Limit > 0 && len(conversions) > opts.Limit {
			conversions = conversions[:opts.Limit]
		}
	} else {
		conversions, err = st.ListConversions(ctx, opts.Limit)
	}
	if err != nil {
		return outputError(formatter, ErrCodeStore, "failed to list conversions", err)
	}

	total, err := st.CountConversions(ctx)
	if err != nil {
		return outputError(formatter, ErrCodeStore, "failed to count conversions", err)
	}
	logger.Debug("history loaded", "db", opts.Database, "listed", len(conversions), "total", total)

	if opts.Format == "json" {
		return formatter.Success(HistoryResult{Conversions: conversions, Total: total})
	}

	w := cmd.OutOrStdout()
	if len(conversions) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tID\tRECORDED\tINPUT\tOUTPUT\tBYTES\tHITS")
	for _, c := range conversions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d -> %d\t%s\n",
			c.Seq,
			truncateID(c.ID),
			c.RecordedAt.Local().Format(time.DateTime),
			c.InputPath,
			c.OutputPath,
			c.InputBytes,
			c.OutputBytes,
			formatHits(c.RuleHits),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nShowing %d of %d conversion(s)\n", len(conversions), total)
	return nil
}

// formatHits formats rule hit counts with sorted keys for deterministic output.
func formatHits(hits map[string]int) string {
	if len(hits) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(hits))
	for _, k := range canon.SortedKeys(hits) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, hits[k]))
	}
	return strings.Join(parts, ",")
}

// truncateID truncates a long ID for display.
func truncateID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "..." + id[len(id)-8:]
}
