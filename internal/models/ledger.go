package models

import (
	"encoding/json"
	"fmt"
)

// Ledger is the aggregate root: every Person, every Transaction, and the person in focus.
//
// A Ledger is a value. Functions that change it return a new Ledger and leave
// the receiver untouched; use Clone before modifying slices in place.
type Ledger struct {
	// People in insertion order.
	People []Person

	// Transactions in insertion order. Order matters: it is the tie-breaker
	// for statements sorted by date.
	Transactions []Transaction

	// SelectedID is a weak reference to the person currently in focus. It may
	// point to a deleted person, in which case nothing is selected.
	SelectedID string
}

// Clone returns a Ledger that shares no slice memory with l.
func (l Ledger) Clone() Ledger {
	out := Ledger{SelectedID: l.SelectedID}
	if l.People != nil {
		out.People = append(make([]Person, 0, len(l.People)), l.People...)
	}
	if l.Transactions != nil {
		out.Transactions = append(make([]Transaction, 0, len(l.Transactions)), l.Transactions...)
	}
	return out
}

// Person looks up a person by ID.
func (l Ledger) Person(id string) (Person, bool) {
	if id == "" {
		return Person{}, false
	}
	for _, p := range l.People {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// Selected resolves SelectedID; a dangling or empty selection yields false.
func (l Ledger) Selected() (Person, bool) {
	return l.Person(l.SelectedID)
}

// Validate checks every record plus ID uniqueness across each set.
func (l Ledger) Validate() error {
	seen := make(map[string]bool, len(l.People))
	for _, p := range l.People {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("person %s: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}

	seen = make(map[string]bool, len(l.Transactions))
	for _, t := range l.Transactions {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("transaction %s: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = true
	}
	return nil
}

// ledgerJSON is the interchange shape {people, tx, selectedId}.
type ledgerJSON struct {
	People       []Person      `json:"people"`
	Transactions []Transaction `json:"tx"`
	SelectedID   *string       `json:"selectedId"`
}

func (l Ledger) MarshalJSON() ([]byte, error) {
	out := ledgerJSON{People: l.People, Transactions: l.Transactions}
	if out.People == nil {
		out.People = []Person{}
	}
	if out.Transactions == nil {
		out.Transactions = []Transaction{}
	}
	if l.SelectedID != "" {
		id := l.SelectedID
		out.SelectedID = &id
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the interchange shape without validating it.
// Package interchange performs the shape and record checks for imports.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var raw ledgerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = Ledger{People: raw.People, Transactions: raw.Transactions}
	if raw.SelectedID != nil {
		l.SelectedID = *raw.SelectedID
	}
	return nil
}
