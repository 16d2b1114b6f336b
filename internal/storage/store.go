// Package storage provides abstractions for persisting the ledger.
package storage

import (
	"context"

	"github.com/mmynk/debtbook/internal/models"
)

// Store defines the persistence collaborator of the ledger engine.
// The ledger is always loaded and saved whole; there is no partial load.
// This abstraction allows swapping storage backends (SQLite, bbolt, memory)
// without changing the service layer.
type Store interface {
	// LoadLedger returns the saved ledger, or an empty one when nothing was saved.
	LoadLedger(ctx context.Context) (models.Ledger, error)

	// SaveLedger replaces the saved ledger with l atomically.
	SaveLedger(ctx context.Context, l models.Ledger) error

	// LoadFilter returns the saved statement date filter (inactive when unset).
	LoadFilter(ctx context.Context) (models.DateRange, error)

	// SaveFilter persists the statement date filter.
	SaveFilter(ctx context.Context, r models.DateRange) error

	// Close releases any resources held by the store.
	Close() error
}
