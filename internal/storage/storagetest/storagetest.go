// Package storagetest holds the behaviour every storage.Store backend must share.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/internal/storage"
)

// SampleLedger returns a small ledger with an orphaned transaction, a missing
// date and a due date, covering every column a backend must keep.
func SampleLedger() models.Ledger {
	return models.Ledger{
		People: []models.Person{
			{ID: "p-zed", Name: "Zed", Contact: "zed@example.com", Created: models.NewDate(2024, time.January, 2)},
			{ID: "p-anna", Name: "Anna", Note: "neighbour", Created: models.NewDate(2024, time.January, 1)},
		},
		Transactions: []models.Transaction{
			{ID: "t3", PersonID: "p-anna", Kind: models.LentToThem, Amount: decimal.RequireFromString("500"), Date: models.NewDate(2024, time.January, 10), Due: models.NewDate(2024, time.February, 1), Note: "rent"},
			{ID: "t1", PersonID: "p-anna", Kind: models.RepaidToMe, Amount: decimal.RequireFromString("199.95"), Date: models.NewDate(2024, time.February, 1)},
			{ID: "t2", PersonID: "p-ghost", Kind: models.BorrowedFromThem, Amount: decimal.RequireFromString("12.5")},
		},
		SelectedID: "p-anna",
	}
}

// Run exercises a fresh store returned by open.
func Run(t *testing.T, open func(t *testing.T) storage.Store) {
	ctx := context.Background()

	t.Run("empty store loads an empty ledger", func(t *testing.T) {
		s := open(t)
		l, err := s.LoadLedger(ctx)
		require.NoError(t, err)
		assert.Empty(t, l.People)
		assert.Empty(t, l.Transactions)
		assert.Empty(t, l.SelectedID)

		r, err := s.LoadFilter(ctx)
		require.NoError(t, err)
		assert.False(t, r.Active())
	})

	t.Run("ledger round trip keeps order and values", func(t *testing.T) {
		s := open(t)
		want := SampleLedger()
		require.NoError(t, s.SaveLedger(ctx, want))

		got, err := s.LoadLedger(ctx)
		require.NoError(t, err)
		AssertLedgerEqual(t, want, got)
	})

	t.Run("save replaces the previous ledger", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.SaveLedger(ctx, SampleLedger()))

		smaller := SampleLedger()
		smaller.People = smaller.People[:1]
		smaller.Transactions = nil
		smaller.SelectedID = ""
		require.NoError(t, s.SaveLedger(ctx, smaller))

		got, err := s.LoadLedger(ctx)
		require.NoError(t, err)
		require.Len(t, got.People, 1)
		assert.Equal(t, "p-zed", got.People[0].ID)
		assert.Empty(t, got.Transactions)
		assert.Empty(t, got.SelectedID)
	})

	t.Run("filter round trip", func(t *testing.T) {
		s := open(t)
		r, err := models.NewDateRange("2024-01-01", "")
		require.NoError(t, err)
		require.NoError(t, s.SaveFilter(ctx, r))

		got, err := s.LoadFilter(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", got.From.String())
		assert.True(t, got.To.IsEmpty())

		require.NoError(t, s.SaveFilter(ctx, models.DateRange{}))
		got, err = s.LoadFilter(ctx)
		require.NoError(t, err)
		assert.False(t, got.Active())
	})
}

// AssertLedgerEqual compares ledgers field by field; decimals compare by value.
func AssertLedgerEqual(t *testing.T, want, got models.Ledger) {
	t.Helper()
	assert.Equal(t, want.SelectedID, got.SelectedID)

	require.Len(t, got.People, len(want.People))
	for i := range want.People {
		w, g := want.People[i], got.People[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.Name, g.Name)
		assert.Equal(t, w.Contact, g.Contact)
		assert.Equal(t, w.Note, g.Note)
		assert.Equal(t, w.Created.String(), g.Created.String())
	}

	require.Len(t, got.Transactions, len(want.Transactions))
	for i := range want.Transactions {
		w, g := want.Transactions[i], got.Transactions[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.PersonID, g.PersonID)
		assert.Equal(t, w.Kind, g.Kind)
		assert.True(t, w.Amount.Equal(g.Amount), "amount of %s: want %s, got %s", w.ID, w.Amount, g.Amount)
		assert.Equal(t, w.Date.String(), g.Date.String())
		assert.Equal(t, w.Due.String(), g.Due.String())
		assert.Equal(t, w.Note, g.Note)
	}
}
