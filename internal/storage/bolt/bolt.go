// Package bolt provides a bbolt-backed implementation of storage.Store that
// keeps the whole ledger as one JSON document under a single key.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Bucket and key names.
const (
	BucketName = "debtbook"
	KeyLedger  = "ledger"
	KeyFilter  = "filter"
)

// Store wraps a bbolt database.
type Store struct {
	db *bolt.DB
}

// New opens (or creates) the database at dbPath and initializes the bucket.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(BucketName)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketName, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) LoadLedger(_ context.Context) (models.Ledger, error) {
	l := models.Ledger{People: []models.Person{}, Transactions: []models.Transaction{}}
	found, err := s.get(KeyLedger, &l)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("load ledger: %w", err)
	}
	if !found {
		return models.Ledger{People: []models.Person{}, Transactions: []models.Transaction{}}, nil
	}
	return l, nil
}

func (s *Store) SaveLedger(_ context.Context, l models.Ledger) error {
	if err := s.put(KeyLedger, l); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

func (s *Store) LoadFilter(_ context.Context) (models.DateRange, error) {
	var r models.DateRange
	if _, err := s.get(KeyFilter, &r); err != nil {
		return models.DateRange{}, fmt.Errorf("load filter: %w", err)
	}
	return r, nil
}

func (s *Store) SaveFilter(_ context.Context, r models.DateRange) error {
	if err := s.put(KeyFilter, r); err != nil {
		return fmt.Errorf("save filter: %w", err)
	}
	return nil
}

func (s *Store) put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		return b.Put([]byte(key), data)
	})
}

// get decodes the value under key into value and reports whether it existed.
func (s *Store) get(key string, value any) (bool, error) {
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, value)
	})
	return found, err
}
