package calculator

import (
	"sort"

	"github.com/mmynk/debtbook/internal/models"
)

// TransactionsFor returns a new slice with the transactions of personID, most
// recent date first. Transactions on the same date keep their insertion order,
// so the sort must stay stable.
func TransactionsFor(personID string, txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, t := range txs {
		if t.PersonID == personID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ApplyDateRange keeps transactions whose date lies within the inclusive bounds.
// With an active bound, transactions without a date are dropped. The input is
// never modified, and applying the same range twice equals applying it once.
func ApplyDateRange(txs []models.Transaction, r models.DateRange) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// IsOverdue reports whether an obligation's due date has passed as of asOf.
// Repayments are settlements and are never overdue.
func IsOverdue(t models.Transaction, asOf models.Date) bool {
	if t.Due.IsZero() || !t.Kind.IsObligation() {
		return false
	}
	return t.Due.Before(asOf)
}
