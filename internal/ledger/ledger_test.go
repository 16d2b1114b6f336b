package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/internal/calculator"
	"github.com/mmynk/debtbook/internal/models"
)

var today = models.NewDate(2024, time.February, 15)

func mustAddPerson(t *testing.T, l models.Ledger, name string) (models.Ledger, models.Person) {
	t.Helper()
	l, p, err := AddPerson(l, models.PersonFields{Name: name}, today)
	require.NoError(t, err)
	return l, p
}

func txFields(kind models.Kind, amount string, date models.Date) models.TransactionFields {
	return models.TransactionFields{Kind: kind, Amount: decimal.RequireFromString(amount), Date: date}
}

func TestAnnaScenario(t *testing.T) {
	l, anna := mustAddPerson(t, models.Ledger{}, "Anna")
	assert.Equal(t, anna.ID, l.SelectedID, "new person is selected")

	l, _, err := AddTransaction(l, txFields(models.LentToThem, "500", models.NewDate(2024, 1, 10)), today)
	require.NoError(t, err)
	assert.True(t, calculator.BalanceOf(anna.ID, l.Transactions).Equal(decimal.NewFromInt(500)))

	l, _, err = AddTransaction(l, txFields(models.RepaidToMe, "200", models.NewDate(2024, 2, 1)), today)
	require.NoError(t, err)
	assert.True(t, calculator.BalanceOf(anna.ID, l.Transactions).Equal(decimal.NewFromInt(300)))
}

func TestAddPersonValidation(t *testing.T) {
	base, _ := mustAddPerson(t, models.Ledger{}, "Bo")

	got, _, err := AddPerson(base, models.PersonFields{Name: "   "}, today)
	require.ErrorIs(t, err, models.ErrEmptyName)
	assert.Equal(t, base, got, "ledger unchanged on failure")
	assert.Len(t, base.People, 1)
}

func TestAddTransactionErrors(t *testing.T) {
	l, p := mustAddPerson(t, models.Ledger{}, "Carl")

	tests := []struct {
		name   string
		ledger models.Ledger
		fields models.TransactionFields
		want   error
	}{
		{
			name:   "no selection",
			ledger: SelectPerson(l, ""),
			fields: txFields(models.LentToThem, "10", today),
			want:   models.ErrNoPersonSelected,
		},
		{
			name:   "dangling selection",
			ledger: SelectPerson(l, "gone"),
			fields: txFields(models.LentToThem, "10", today),
			want:   models.ErrNoPersonSelected,
		},
		{
			name:   "zero amount",
			ledger: l,
			fields: txFields(models.LentToThem, "0", today),
			want:   models.ErrInvalidAmount,
		},
		{
			name:   "negative amount",
			ledger: l,
			fields: txFields(models.LentToThem, "-5", today),
			want:   models.ErrInvalidAmount,
		},
		{
			name:   "unknown kind",
			ledger: l,
			fields: txFields(models.Kind(0), "5", today),
			want:   models.ErrUnknownKind,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := AddTransaction(tt.ledger, tt.fields, today)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, models.IsValidation(err))
			assert.Equal(t, tt.ledger, got)
		})
	}

	explicit := txFields(models.BorrowedFromThem, "7", models.Date{})
	explicit.PersonID = p.ID
	got, tr, err := AddTransaction(SelectPerson(l, ""), explicit, today)
	require.NoError(t, err)
	assert.Equal(t, p.ID, tr.PersonID)
	assert.Equal(t, today, tr.Date, "date defaults to today")
	assert.Len(t, got.Transactions, 1)
}

func TestMutationsDoNotAliasInput(t *testing.T) {
	l, _ := mustAddPerson(t, models.Ledger{}, "Dora")
	l, first, err := AddTransaction(l, txFields(models.LentToThem, "1", today), today)
	require.NoError(t, err)
	l, _, err = AddTransaction(l, txFields(models.LentToThem, "2", today), today)
	require.NoError(t, err)

	snapshot := l.Clone()
	after, removed, err := DeleteTransaction(l, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)
	assert.Len(t, after.Transactions, 1)
	assert.Equal(t, snapshot, l, "input ledger untouched")

	_, _, err = DeleteTransaction(l, "missing")
	assert.ErrorIs(t, err, models.ErrTransactionNotFound)
}

func TestDeletePersonCascades(t *testing.T) {
	l, a := mustAddPerson(t, models.Ledger{}, "A")
	l, _, err := AddTransaction(l, txFields(models.LentToThem, "10", today), today)
	require.NoError(t, err)
	l, b := mustAddPerson(t, l, "B")
	l, _, err = AddTransaction(l, txFields(models.BorrowedFromThem, "3", today), today)
	require.NoError(t, err)
	l = SelectPerson(l, a.ID)

	out, removed, err := DeletePerson(l, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	require.Len(t, out.People, 1)
	assert.Equal(t, b.ID, out.People[0].ID)
	require.Len(t, out.Transactions, 1)
	assert.Equal(t, b.ID, out.Transactions[0].PersonID)
	assert.Empty(t, out.SelectedID)
	assert.Len(t, l.People, 2, "input untouched")

	_, _, err = DeletePerson(l, "missing")
	assert.ErrorIs(t, err, models.ErrPersonNotFound)
}

func TestSelection(t *testing.T) {
	l, p := mustAddPerson(t, models.Ledger{}, "Eva")

	got, ok := Selection(l)
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)

	dangling := SelectPerson(l, "nobody")
	assert.Equal(t, "nobody", dangling.SelectedID)
	_, ok = Selection(dangling)
	assert.False(t, ok)
	assert.Equal(t, p.ID, l.SelectedID, "input untouched")
}

func TestSearchPeople(t *testing.T) {
	l := models.Ledger{}
	for _, name := range []string{"Åse", "bo", "Anna", "Zoe", "Ørjan"} {
		l, _ = mustAddPerson(t, l, name)
	}
	l.People[1].Contact = "bo@example.com"
	l, _, err := AddTransaction(l, models.TransactionFields{
		PersonID: l.People[2].ID,
		Kind:     models.LentToThem,
		Amount:   decimal.NewFromInt(42),
	}, today)
	require.NoError(t, err)

	names := func(in []PersonBalance) []string {
		out := make([]string, len(in))
		for i, pb := range in {
			out[i] = pb.Person.Name
		}
		return out
	}

	all := SearchPeople(l, "")
	assert.Equal(t, []string{"Anna", "bo", "Zoe", "Ørjan", "Åse"}, names(all))
	assert.True(t, all[0].Balance.Equal(decimal.NewFromInt(42)))
	assert.True(t, all[1].Balance.IsZero())

	assert.Equal(t, []string{"bo"}, names(SearchPeople(l, "EXAMPLE")))
	assert.Equal(t, []string{"Anna"}, names(SearchPeople(l, " ann ")))
	assert.Empty(t, SearchPeople(l, "xyz"))
}

func TestSettle(t *testing.T) {
	l, anna := mustAddPerson(t, models.Ledger{}, "Anna")
	l, _, err := AddTransaction(l, txFields(models.LentToThem, "500", models.NewDate(2024, 1, 10)), today)
	require.NoError(t, err)
	l, _, err = AddTransaction(l, txFields(models.RepaidToMe, "200", models.NewDate(2024, 2, 1)), today)
	require.NoError(t, err)

	settled, repayment, err := Settle(l, anna.ID, "", today)
	require.NoError(t, err)
	assert.Equal(t, models.RepaidToMe, repayment.Kind)
	assert.True(t, repayment.Amount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, today, repayment.Date)
	assert.Equal(t, "Settled up", repayment.Note)
	assert.True(t, calculator.BalanceOf(anna.ID, settled.Transactions).IsZero())
	assert.Len(t, l.Transactions, 2, "input ledger untouched")

	_, _, err = Settle(settled, anna.ID, "", today)
	assert.ErrorIs(t, err, models.ErrAlreadySettled)

	_, _, err = Settle(settled, "missing", "", today)
	assert.ErrorIs(t, err, models.ErrPersonNotFound)
}
