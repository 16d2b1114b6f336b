// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const (
	keySelectedID = "selected_id"
	keyFilterFrom = "filter_from"
	keyFilterTo   = "filter_to"
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serialises writers and keeps SQLITE_BUSY away.
	db.SetMaxOpenConns(1)

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadLedger reads people and transactions in insertion order plus the selection.
func (s *SQLiteStore) LoadLedger(ctx context.Context) (models.Ledger, error) {
	people, err := s.loadPeople(ctx)
	if err != nil {
		return models.Ledger{}, err
	}
	txs, err := s.loadTransactions(ctx)
	if err != nil {
		return models.Ledger{}, err
	}
	selected, err := s.setting(ctx, keySelectedID)
	if err != nil {
		return models.Ledger{}, err
	}
	return models.Ledger{People: people, Transactions: txs, SelectedID: selected}, nil
}

func (s *SQLiteStore) loadPeople(ctx context.Context) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, contact, note, created FROM people ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}
	defer rows.Close()

	people := []models.Person{}
	for rows.Next() {
		var p models.Person
		var created string
		if err := rows.Scan(&p.ID, &p.Name, &p.Contact, &p.Note, &created); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if p.Created, err = models.ParseDate(created); err != nil {
			return nil, fmt.Errorf("person %s: %w", p.ID, err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return people, nil
}

func (s *SQLiteStore) loadTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, person_id, kind, amount, date, due, note FROM transactions ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}

func scanTransaction(rows *sql.Rows) (models.Transaction, error) {
	var (
		t                       models.Transaction
		kind, amount, date, due string
	)
	if err := rows.Scan(&t.ID, &t.PersonID, &kind, &amount, &date, &due, &t.Note); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	var err error
	if t.Kind, err = models.ParseKind(kind); err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", t.ID, models.ErrInvalidAmount)
	}
	if t.Date, err = models.ParseDate(date); err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	if t.Due, err = models.ParseDate(due); err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	return t, nil
}

// SaveLedger replaces every stored record with l in a single transaction.
func (s *SQLiteStore) SaveLedger(ctx context.Context, l models.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM people"); err != nil {
		return fmt.Errorf("failed to clear people: %w", err)
	}

	for i, p := range l.People {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO people (id, position, name, contact, note, created) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, i, p.Name, p.Contact, p.Note, p.Created.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}
	}

	for i, t := range l.Transactions {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO transactions (id, position, person_id, kind, amount, date, due, note) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			t.ID, i, t.PersonID, t.Kind.String(), t.Amount.String(), t.Date.String(), t.Due.String(), t.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	if err := putSetting(ctx, tx, keySelectedID, l.SelectedID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadFilter returns the persisted statement filter.
func (s *SQLiteStore) LoadFilter(ctx context.Context) (models.DateRange, error) {
	from, err := s.setting(ctx, keyFilterFrom)
	if err != nil {
		return models.DateRange{}, err
	}
	to, err := s.setting(ctx, keyFilterTo)
	if err != nil {
		return models.DateRange{}, err
	}
	return models.NewDateRange(from, to)
}

// SaveFilter persists both bounds of the statement filter.
func (s *SQLiteStore) SaveFilter(ctx context.Context, r models.DateRange) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := putSetting(ctx, tx, keyFilterFrom, r.From.String()); err != nil {
		return err
	}
	if err := putSetting(ctx, tx, keyFilterTo, r.To.String()); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) setting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

func putSetting(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
