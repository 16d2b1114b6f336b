package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Person is a counterparty the user tracks debts with.
type Person struct {
	// ID is the unique identifier for the person (UUID format for new records,
	// any non-empty string for imported ones). Immutable.
	ID string `json:"id"`

	// Name is the display name; required and used for sorting and search.
	Name string `json:"name"`

	// Contact is optional free text (phone, e-mail, ...), also searchable.
	Contact string `json:"contact"`

	// Note is optional free text.
	Note string `json:"note"`

	// Created is the calendar date the record was created.
	Created Date `json:"created"`
}

// PersonFields is the user input for creating a Person.
type PersonFields struct {
	Name    string
	Contact string
	Note    string
}

// NewPerson validates fields and returns a Person with a fresh ID created on today.
func NewPerson(fields PersonFields, today Date) (Person, error) {
	p := Person{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(fields.Name),
		Contact: strings.TrimSpace(fields.Contact),
		Note:    strings.TrimSpace(fields.Note),
		Created: today,
	}
	if err := p.Validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

// Validate checks the invariants every stored Person must satisfy.
func (p Person) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("person: empty id")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("person %s: %w", p.ID, ErrEmptyName)
	}
	return nil
}
