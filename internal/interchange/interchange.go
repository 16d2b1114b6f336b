// Package interchange reads and writes the bulk ledger formats: the JSON
// document {people, tx, selectedId} and the read-only CSV projection.
package interchange

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mmynk/debtbook/internal/models"
)

// ErrMalformedImport is returned when an import document does not have the
// ledger shape. Nothing from such a document is applied.
var ErrMalformedImport = errors.New("malformed import: expected {people: [...], tx: [...]}")

// CSVHeader is the column set of the tabular export.
var CSVHeader = []string{"person", "contact", "tx_date", "due", "type", "amount", "signed", "note"}

// DecodeLedger parses and validates an import document. Any shape or record
// error rejects the whole document.
func DecodeLedger(r io.Reader) (models.Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("read import: %w", err)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil || shape == nil {
		return models.Ledger{}, ErrMalformedImport
	}
	for _, key := range []string{"people", "tx"} {
		if !isArray(shape[key]) {
			return models.Ledger{}, fmt.Errorf("%w: %q is not a list", ErrMalformedImport, key)
		}
	}

	var l models.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return models.Ledger{}, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}
	if err := l.Validate(); err != nil {
		return models.Ledger{}, fmt.Errorf("import: %w", err)
	}
	return l, nil
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

// EncodeLedger writes l as an indented import document.
func EncodeLedger(w io.Writer, l models.Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	return nil
}

// WriteCSV writes one row per transaction in ledger order. Transactions whose
// person no longer exists get empty person and contact columns.
func WriteCSV(w io.Writer, l models.Ledger) error {
	people := make(map[string]models.Person, len(l.People))
	for _, p := range l.People {
		people[p.ID] = p
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range l.Transactions {
		p := people[t.PersonID]
		row := []string{
			p.Name,
			p.Contact,
			t.Date.String(),
			t.Due.String(),
			t.Kind.String(),
			t.Amount.String(),
			t.Signed().String(),
			t.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
