// Package memory provides an in-process implementation of storage.Store.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps the ledger in memory. Values are cloned on the way in and out so
// callers never share slices with the store.
type Store struct {
	mu     sync.RWMutex
	ledger models.Ledger
	filter models.DateRange
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

func (s *Store) LoadLedger(_ context.Context) (models.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Clone(), nil
}

func (s *Store) SaveLedger(_ context.Context, l models.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = l.Clone()
	return nil
}

func (s *Store) LoadFilter(_ context.Context) (models.DateRange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter, nil
}

func (s *Store) SaveFilter(_ context.Context, r models.DateRange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = r
	return nil
}

func (s *Store) Close() error { return nil }
