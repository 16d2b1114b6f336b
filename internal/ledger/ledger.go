// Package ledger turns mutation requests into new Ledger values.
//
// Every function takes a models.Ledger and returns a fresh one; the input is
// never modified, so a failed request leaves the caller's Ledger as it was.
package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/debtbook/internal/calculator"
	"github.com/mmynk/debtbook/internal/models"
)

// AddPerson creates a person from fields, appends it and selects it.
func AddPerson(l models.Ledger, fields models.PersonFields, today models.Date) (models.Ledger, models.Person, error) {
	p, err := models.NewPerson(fields, today)
	if err != nil {
		return l, models.Person{}, fmt.Errorf("add person: %w", err)
	}

	out := l.Clone()
	out.People = append(out.People, p)
	out.SelectedID = p.ID
	return out, p, nil
}

// AddTransaction creates a transaction for fields.PersonID, or for the selected
// person when no ID is given. The person must exist.
func AddTransaction(l models.Ledger, fields models.TransactionFields, today models.Date) (models.Ledger, models.Transaction, error) {
	personID := fields.PersonID
	if personID == "" {
		personID = l.SelectedID
	}
	if _, ok := l.Person(personID); !ok {
		return l, models.Transaction{}, fmt.Errorf("add transaction: %w", models.ErrNoPersonSelected)
	}
	fields.PersonID = personID

	t, err := models.NewTransaction(fields, today)
	if err != nil {
		return l, models.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	out := l.Clone()
	out.Transactions = append(out.Transactions, t)
	return out, t, nil
}

// Settle records the repayment that clears a person's balance. It fails with
// ErrAlreadySettled when there is nothing to repay.
func Settle(l models.Ledger, personID, note string, today models.Date) (models.Ledger, models.Transaction, error) {
	if _, ok := l.Person(personID); !ok {
		return l, models.Transaction{}, fmt.Errorf("settle %q: %w", personID, models.ErrPersonNotFound)
	}
	st, ok := calculator.SettlementFor(personID, l.Transactions)
	if !ok {
		return l, models.Transaction{}, fmt.Errorf("settle %q: %w", personID, models.ErrAlreadySettled)
	}
	if note == "" {
		note = "Settled up"
	}
	return AddTransaction(l, models.TransactionFields{
		PersonID: personID,
		Kind:     st.Kind,
		Amount:   st.Amount,
		Note:     note,
	}, today)
}

// DeleteTransaction removes the transaction with the given ID.
func DeleteTransaction(l models.Ledger, id string) (models.Ledger, models.Transaction, error) {
	idx := -1
	for i, t := range l.Transactions {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l, models.Transaction{}, fmt.Errorf("delete transaction %q: %w", id, models.ErrTransactionNotFound)
	}

	removed := l.Transactions[idx]
	out := l.Clone()
	out.Transactions = append(out.Transactions[:idx], out.Transactions[idx+1:]...)
	return out, removed, nil
}

// DeletePerson removes a person together with all of their transactions and
// clears the selection when it pointed at them. It returns the number of
// transactions removed.
func DeletePerson(l models.Ledger, id string) (models.Ledger, int, error) {
	if _, ok := l.Person(id); !ok {
		return l, 0, fmt.Errorf("delete person %q: %w", id, models.ErrPersonNotFound)
	}

	out := models.Ledger{
		People:       make([]models.Person, 0, len(l.People)-1),
		Transactions: make([]models.Transaction, 0, len(l.Transactions)),
		SelectedID:   l.SelectedID,
	}
	for _, p := range l.People {
		if p.ID != id {
			out.People = append(out.People, p)
		}
	}
	removed := 0
	for _, t := range l.Transactions {
		if t.PersonID == id {
			removed++
			continue
		}
		out.Transactions = append(out.Transactions, t)
	}
	if out.SelectedID == id {
		out.SelectedID = ""
	}
	return out, removed, nil
}

// SelectPerson puts id in focus. The ID is not checked; a dangling selection
// reads as "none selected".
func SelectPerson(l models.Ledger, id string) models.Ledger {
	out := l.Clone()
	out.SelectedID = id
	return out
}

// Selection resolves the current selection.
func Selection(l models.Ledger) (models.Person, bool) {
	return l.Selected()
}

// PersonBalance is a person together with their current balance.
type PersonBalance struct {
	Person  models.Person
	Balance decimal.Decimal
}

// SearchPeople lists people sorted by name (Danish collation, case-insensitive)
// whose name or contact contains query. An empty query matches everyone.
func SearchPeople(l models.Ledger, query string) []PersonBalance {
	query = strings.ToLower(strings.TrimSpace(query))
	balances := calculator.Balances(l.Transactions)

	out := make([]PersonBalance, 0, len(l.People))
	for _, p := range l.People {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Contact), query) {
			continue
		}
		bal, ok := balances[p.ID]
		if !ok {
			bal = decimal.Zero
		}
		out = append(out, PersonBalance{Person: p, Balance: bal})
	}

	col := collate.New(language.Danish, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Person.Name, out[j].Person.Name) < 0
	})
	return out
}
