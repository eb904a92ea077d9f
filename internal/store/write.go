package store

import (
	"context"
	"fmt"
	"time"
)

// Conversion is one recorded run of the converter over a file.
type Conversion struct {
	Seq          int64          `json:"seq"`
	ID           string         `json:"id"`
	InputPath    string         `json:"input_path"`
	OutputPath   string         `json:"output_path"`
	InputDigest  string         `json:"input_digest"`
	OutputDigest string         `json:"output_digest"`
	InputBytes   int            `json:"input_bytes"`
	OutputBytes  int            `json:"output_bytes"`
	RuleHits     map[string]int `json:"rule_hits"`
	RecordedAt   time.Time      `json:"recorded_at"`
}

// RecordConversion inserts a conversion record and returns it as stored.
// An empty ID is replaced with a generated one (a random UUID by default) and
// a zero RecordedAt with the store clock. Uses ON CONFLICT(id) DO NOTHING, so recording the same ID
// twice keeps the first record.
func (s *Store) RecordConversion(ctx context.Context, c Conversion) (Conversion, error) {
	if c.ID == "" {
		c.ID = s.newID()
	}
	if c.RecordedAt.IsZero() {
		c.RecordedAt = s.now()
	}

	hitsJSON, err := marshalRuleHits(c.RuleHits)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO conversions
		(id, input_path, output_path, input_digest, output_digest, input_bytes, output_bytes, rule_hits, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		c.ID,
		c.InputPath,
		c.OutputPath,
		c.InputDigest,
		c.OutputDigest,
		c.InputBytes,
		c.OutputBytes,
		hitsJSON,
		c.RecordedAt.UnixMilli(),
	)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}

	return s.ReadConversion(ctx, c.ID)
}
