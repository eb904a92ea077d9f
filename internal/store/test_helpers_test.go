package store

import (
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a new file-backed store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestConversion creates a conversion with minimal required fields.
func createTestConversion(id, inputPath string) Conversion {
	return Conversion{
		ID:           id,
		InputPath:    inputPath,
		OutputPath:   inputPath + ".md",
		InputDigest:  "in-" + id,
		OutputDigest: "out-" + id,
		InputBytes:   10,
		OutputBytes:  8,
		RuleHits:     map[string]int{"bold": 1},
		RecordedAt:   time.UnixMilli(1700000000000).UTC(),
	}
}
