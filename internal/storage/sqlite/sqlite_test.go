package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/internal/storage"
	"github.com/mmynk/debtbook/internal/storage/storagetest"
)

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		s, err := New(filepath.Join(t.TempDir(), "data", "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(dbPath)
	require.NoError(t, err)
	want := storagetest.SampleLedger()
	require.NoError(t, store.SaveLedger(ctx, want))
	require.NoError(t, store.Close())

	// Migrations are idempotent and data survives a restart.
	store, err = New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.LoadLedger(ctx)
	require.NoError(t, err)
	storagetest.AssertLedgerEqual(t, want, got)
}

func TestSQLiteStoreKeepsDecimalText(t *testing.T) {
	ctx := context.Background()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveLedger(ctx, storagetest.SampleLedger()))

	var amount string
	err = store.db.QueryRowContext(ctx, "SELECT amount FROM transactions WHERE id = ?", "t1").Scan(&amount)
	require.NoError(t, err)
	assert.Equal(t, "199.95", amount)
}
