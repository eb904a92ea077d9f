package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/bbcode2md/internal/canon"
)

// marshalRuleHits converts per-rule counts to canonical JSON TEXT for storage.
// Canonical encoding keeps identical hit maps byte-identical in the database.
func marshalRuleHits(hits map[string]int) (string, error) {
	if hits == nil {
		hits = map[string]int{}
	}
	data, err := canon.Marshal(hits)
	if err != nil {
		return "", fmt.Errorf("marshal rule hits: %w", err)
	}
	return string(data), nil
}

// unmarshalRuleHits parses rule-hit JSON TEXT. Empty input yields an empty map.
func unmarshalRuleHits(data string) (map[string]int, error) {
	hits := map[string]int{}
	if data == "" || data == "{}" {
		return hits, nil
	}
	if err := json.Unmarshal([]byte(data), &hits); err != nil {
		return nil, fmt.Errorf("unmarshal rule hits: %w", err)
	}
	return hits, nil
}
