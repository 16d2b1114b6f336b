package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/debtbook/internal/models"
)

// StatementRow is one line of a statement.
type StatementRow struct {
	Transaction models.Transaction
	Signed      decimal.Decimal
	Overdue     bool
}

// Statement is the filtered, ordered ledger of one person with a trailing balance.
type Statement struct {
	// Found is false when personID is empty or dangling; the statement is then empty.
	Found  bool
	Person models.Person
	Range  models.DateRange
	Rows   []StatementRow
	// Balance sums the rows shown (respects Range).
	Balance decimal.Decimal
	// TotalBalance is the person's balance over all transactions.
	TotalBalance decimal.Decimal
}

// BuildStatement derives the statement of personID. The range is applied only
// when active.
func BuildStatement(l models.Ledger, personID string, r models.DateRange, asOf models.Date) Statement {
	st := Statement{
		Range:        r,
		Rows:         []StatementRow{},
		Balance:      decimal.Zero,
		TotalBalance: decimal.Zero,
	}

	person, ok := l.Person(personID)
	if !ok {
		return st
	}
	st.Found = true
	st.Person = person

	all := TransactionsFor(person.ID, l.Transactions)
	shown := all
	if r.Active() {
		shown = ApplyDateRange(all, r)
	}

	for _, t := range all {
		st.TotalBalance = st.TotalBalance.Add(t.Signed())
	}
	for _, t := range shown {
		signed := t.Signed()
		st.Rows = append(st.Rows, StatementRow{
			Transaction: t,
			Signed:      signed,
			Overdue:     IsOverdue(t, asOf),
		})
		st.Balance = st.Balance.Add(signed)
	}
	return st
}
