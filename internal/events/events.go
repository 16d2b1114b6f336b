// Package events publishes ledger change notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Type names a kind of ledger change. It doubles as the AMQP routing key.
type Type string

const (
	PersonAdded        Type = "person.added"
	PersonDeleted      Type = "person.deleted"
	PersonSelected     Type = "person.selected"
	TransactionAdded   Type = "transaction.added"
	TransactionDeleted Type = "transaction.deleted"
	PersonSettled      Type = "person.settled"
	LedgerImported     Type = "ledger.imported"
)

// Event describes one change that has already been saved.
type Event struct {
	Type          Type      `json:"type"`
	PersonID      string    `json:"personId,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	Count         int       `json:"count,omitempty"` // records affected by cascades and imports
	At            time.Time `json:"at"`
}

// ToJSON encodes the event as a message body.
func (e Event) ToJSON() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return body, nil
}

// Publisher delivers events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types returns the type of every recorded event in order.
func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
