package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cardbox/storage"
)

// NewTestDB creates a DB backed by a fresh store under t.TempDir().
// Each call is fully isolated; the data file is cleaned up with the
// temp dir when the test finishes.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "cards.json"))
	require.NoError(t, err)

	return New(store)
}
