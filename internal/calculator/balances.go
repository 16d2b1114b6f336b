package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/debtbook/internal/models"
)

// Totals are the ledger-wide sums behind the dashboard KPIs.
type Totals struct {
	PositiveTotal decimal.Decimal // Sum of positive signed amounts (owed to me)
	NegativeTotal decimal.Decimal // Sum of negative signed amounts, kept negative (I owe)
	Net           decimal.Decimal // PositiveTotal + NegativeTotal
}

// Summary is the KPI contract: Totals plus the number of people.
type Summary struct {
	Totals
	PersonCount      int
	TransactionCount int
}

// SignedAmount applies the polarity of kind to the magnitude of amount.
//
//	LentToThem +a, RepaidToMe -a, BorrowedFromThem -a, RepaidByMe +a
func SignedAmount(kind models.Kind, amount decimal.Decimal) (decimal.Decimal, error) {
	sign, err := kind.Sign()
	if err != nil {
		return decimal.Zero, fmt.Errorf("signed amount: %w", err)
	}
	return amount.Abs().Mul(decimal.NewFromInt(sign)), nil
}

// BalanceOf sums the signed amounts of every transaction owned by personID.
// Positive = the person owes the user, negative = the user owes the person.
func BalanceOf(personID string, txs []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		if t.PersonID == personID {
			balance = balance.Add(t.Signed())
		}
	}
	return balance
}

// Balances computes every person's balance in one pass, keyed by person ID.
// Orphaned transactions get an entry under their dangling ID.
func Balances(txs []models.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, t := range txs {
		balances[t.PersonID] = balances[t.PersonID].Add(t.Signed())
	}
	return balances
}

// GlobalSummary splits the signed amounts of all transactions into positive and
// negative totals and their net.
func GlobalSummary(txs []models.Transaction) Totals {
	totals := Totals{
		PositiveTotal: decimal.Zero,
		NegativeTotal: decimal.Zero,
		Net:           decimal.Zero,
	}
	for _, t := range txs {
		signed := t.Signed()
		switch {
		case signed.IsPositive():
			totals.PositiveTotal = totals.PositiveTotal.Add(signed)
		case signed.IsNegative():
			totals.NegativeTotal = totals.NegativeTotal.Add(signed)
		}
		totals.Net = totals.Net.Add(signed)
	}
	return totals
}

// Summarize returns the dashboard KPIs for a whole ledger.
func Summarize(l models.Ledger) Summary {
	return Summary{
		Totals:           GlobalSummary(l.Transactions),
		PersonCount:      len(l.People),
		TransactionCount: len(l.Transactions),
	}
}

// PersonStatistics is the detail view for one person.
type PersonStatistics struct {
	TransactionCount int
	TheyOwe          decimal.Decimal // Sum of positive signed amounts
	IOwe             decimal.Decimal // Magnitude of the negative signed amounts
	Balance          decimal.Decimal
}

// PersonStats summarises the transactions of one person regardless of any date filter.
func PersonStats(personID string, txs []models.Transaction) PersonStatistics {
	var own []models.Transaction
	for _, t := range txs {
		if t.PersonID == personID {
			own = append(own, t)
		}
	}
	totals := GlobalSummary(own)
	return PersonStatistics{
		TransactionCount: len(own),
		TheyOwe:          totals.PositiveTotal,
		IOwe:             totals.NegativeTotal.Abs(),
		Balance:          totals.Net,
	}
}
