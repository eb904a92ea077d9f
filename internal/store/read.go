package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested conversion does not exist.
var ErrNotFound = errors.New("conversion not found")

const conversionColumns = `seq, id, input_path, output_path, input_digest, output_digest,
		input_bytes, output_bytes, rule_hits, recorded_at`

// ReadConversion returns the conversion with the given ID.
func (s *Store) ReadConversion(ctx context.Context, id string) (Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+conversionColumns+`
		FROM conversions
		WHERE id = ?
	`, id)

	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Conversion{}, fmt.Errorf("read conversion %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Conversion{}, fmt.Errorf("read conversion %s: %w", id, err)
	}
	return c, nil
}

// ListConversions returns recorded conversions, newest first.
// A limit of zero or less returns every record.
// Returns an empty slice (not nil) when there is no history.
func (s *Store) ListConversions(ctx context.Context, limit int) ([]Conversion, error) {
	query := `SELECT ` + conversionColumns + ` FROM conversions ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryConversions(ctx, query, args...)
}

// ListConversionsForInput returns the history of one input path, newest first.
func (s *Store) ListConversionsForInput(ctx context.Context, inputPath string) ([]Conversion, error) {
	return s.queryConversions(ctx, `
		SELECT `+conversionColumns+`
		FROM conversions
		WHERE input_path = ?
		ORDER BY seq DESC
	`, inputPath)
}

// CountConversions returns the number of recorded conversions.
func (s *Store) CountConversions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count conversions: %w", err)
	}
	return n, nil
}

func (s *Store) queryConversions(ctx context.Context, query string, args ...any) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	conversions := []Conversion{}
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}

	return conversions, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversion(row rowScanner) (Conversion, error) {
	var (
		c          Conversion
		hitsJSON   string
		recordedAt int64
	)
	err := row.Scan(
		&c.Seq,
		&c.ID,
		&c.InputPath,
		&c.OutputPath,
		&c.InputDigest,
		&c.OutputDigest,
		&c.InputBytes,
		&c.OutputBytes,
		&hitsJSON,
		&recordedAt,
	)
	if err != nil {
		return Conversion{}, err
	}

	c.RuleHits, err = unmarshalRuleHits(hitsJSON)
	if err != nil {
		return Conversion{}, err
	}
	c.RecordedAt = time.UnixMilli(recordedAt).UTC()

	return c, nil
}
