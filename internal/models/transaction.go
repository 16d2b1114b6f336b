package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one directional money movement between the user and a person.
type Transaction struct {
	// ID is the unique identifier for the transaction. Immutable.
	ID string

	// PersonID references the Person this transaction belongs to.
	// It may dangle after an import; readers must tolerate that.
	PersonID string

	// Kind is the direction of the movement and decides the sign.
	Kind Kind

	// Amount is the positive magnitude.
	Amount decimal.Decimal

	// Date is the calendar date of the movement. Required for new records;
	// imported records with a broken date keep the zero Date.
	Date Date

	// Due is the optional repayment deadline. Only obligation kinds can fall overdue.
	Due Date

	// Note is optional free text.
	Note string
}

// TransactionFields is the user input for creating a Transaction.
type TransactionFields struct {
	// PersonID is optional; package ledger falls back to the current selection.
	PersonID string
	Kind     Kind
	Amount   decimal.Decimal
	// Date defaults to today when zero.
	Date Date
	Due  Date
	Note string
}

// NewTransaction validates fields and returns a Transaction with a fresh ID.
func NewTransaction(fields TransactionFields, today Date) (Transaction, error) {
	t := Transaction{
		ID:       uuid.NewString(),
		PersonID: fields.PersonID,
		Kind:     fields.Kind,
		Amount:   fields.Amount,
		Date:     fields.Date,
		Due:      fields.Due,
		Note:     strings.TrimSpace(fields.Note),
	}
	if t.Date.IsZero() {
		t.Date = today
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Validate checks the invariants every stored Transaction must satisfy.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("transaction: empty id")
	}
	if !t.Kind.Valid() {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrUnknownKind)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrInvalidAmount)
	}
	return nil
}

// Signed returns Amount with the polarity of Kind applied. The magnitude is
// absolute-valued first, so a negative Amount never flips the sign twice.
// An invalid Kind contributes zero; Validate rejects such records before they
// reach a Ledger.
func (t Transaction) Signed() decimal.Decimal {
	sign, err := t.Kind.Sign()
	if err != nil {
		return decimal.Zero
	}
	return t.Amount.Abs().Mul(decimal.NewFromInt(sign))
}

// ParseAmount parses user input such as "12.50" or "12,50" into a positive decimal.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// transactionJSON is the interchange shape: {id, pid, type, amount, signed, date, due, note}.
type transactionJSON struct {
	ID       string          `json:"id"`
	PersonID string          `json:"pid"`
	Kind     Kind            `json:"type"`
	Amount   json.RawMessage `json:"amount"`
	Signed   json.RawMessage `json:"signed,omitempty"`
	Date     Date            `json:"date"`
	Due      Date            `json:"due"`
	Note     string          `json:"note"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionJSON{
		ID:       t.ID,
		PersonID: t.PersonID,
		Kind:     t.Kind,
		Amount:   json.RawMessage(t.Amount.String()),
		Signed:   json.RawMessage(t.Signed().String()),
		Date:     t.Date,
		Due:      t.Due,
		Note:     t.Note,
	})
}

// UnmarshalJSON ignores any "signed" value in the payload; Signed is always derived.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var amount decimal.Decimal
	if len(raw.Amount) > 0 && string(raw.Amount) != "null" {
		if err := amount.UnmarshalJSON(raw.Amount); err != nil {
			return fmt.Errorf("transaction %s: %w", raw.ID, ErrInvalidAmount)
		}
	}
	*t = Transaction{
		ID:       raw.ID,
		PersonID: raw.PersonID,
		Kind:     raw.Kind,
		Amount:   amount,
		Date:     raw.Date,
		Due:      raw.Due,
		Note:     raw.Note,
	}
	return nil
}
