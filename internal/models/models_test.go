package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSign(t *testing.T) {
	tests := []struct {
		kind Kind
		want int64
	}{
		{LentToThem, 1},
		{RepaidToMe, -1},
		{BorrowedFromThem, -1},
		{RepaidByMe, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := tt.kind.Sign()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Kind(0).Sign()
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = Kind(9).Sign()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKind("BorrowedFromThem")
	require.NoError(t, err)
	assert.Equal(t, BorrowedFromThem, k)

	_, err = ParseKind("gift")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"500", "500", true},
		{"12.50", "12.5", true},
		{"12,50", "12.5", true},
		{" 0.01 ", "0.01", true},
		{"0", "", false},
		{"-3", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got.String())
	}
}

func TestNewPerson(t *testing.T) {
	today := NewDate(2024, time.January, 10)

	p, err := NewPerson(PersonFields{Name: "  Anna ", Contact: " 555 "}, today)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Anna", p.Name)
	assert.Equal(t, "555", p.Contact)
	assert.Equal(t, today, p.Created)

	_, err = NewPerson(PersonFields{Name: "   "}, today)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewTransaction(t *testing.T) {
	today := NewDate(2024, time.February, 1)

	tx, err := NewTransaction(TransactionFields{
		PersonID: "p1",
		Kind:     RepaidToMe,
		Amount:   decimal.NewFromInt(200),
	}, today)
	require.NoError(t, err)
	assert.Equal(t, today, tx.Date, "date defaults to today")
	assert.True(t, tx.Signed().Equal(decimal.NewFromInt(-200)))

	_, err = NewTransaction(TransactionFields{Kind: LentToThem, Amount: decimal.Zero}, today)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewTransaction(TransactionFields{Kind: LentToThem, Amount: decimal.NewFromInt(-5)}, today)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewTransaction(TransactionFields{Amount: decimal.NewFromInt(5)}, today)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestTransactionSignedUsesMagnitude(t *testing.T) {
	tx := Transaction{ID: "t", Kind: BorrowedFromThem, Amount: decimal.NewFromInt(-100)}
	assert.True(t, tx.Signed().Equal(decimal.NewFromInt(-100)))
}

func TestTransactionJSONRecomputesSigned(t *testing.T) {
	payload := `{"id":"t1","pid":"p1","type":"lent","amount":500,"signed":-999,"date":"2024-01-10","due":"","note":"x"}`

	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(payload), &tx))
	assert.Equal(t, LentToThem, tx.Kind)
	assert.True(t, tx.Signed().Equal(decimal.NewFromInt(500)))
	assert.True(t, tx.Due.IsEmpty())

	out, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"t1","pid":"p1","type":"lent","amount":500,"signed":500,"date":"2024-01-10","due":"","note":"x"}`,
		string(out))
}

func TestTransactionJSONUnknownKind(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal([]byte(`{"id":"t1","type":"gift","amount":1}`), &tx)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDateUnmarshalIsLenient(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"not a date"`), &d))
	assert.True(t, d.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T10:00:00Z"`), &d))
	assert.Equal(t, "2024-03-05", d.String())
}

func TestDateRangeContains(t *testing.T) {
	r, err := NewDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.True(t, r.Contains(NewDate(2024, time.January, 1)))
	assert.True(t, r.Contains(NewDate(2024, time.January, 31)))
	assert.False(t, r.Contains(NewDate(2024, time.February, 1)))
	assert.False(t, r.Contains(Date{}), "absent date is excluded by an active range")

	assert.True(t, DateRange{}.Contains(Date{}))

	_, err = NewDateRange("2024-13-01", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestLedgerJSONShape(t *testing.T) {
	out, err := json.Marshal(Ledger{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"people":[],"tx":[],"selectedId":null}`, string(out))

	var l Ledger
	require.NoError(t, json.Unmarshal([]byte(`{"people":[{"id":"a","name":"Anna"}],"tx":[],"selectedId":"a"}`), &l))
	p, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "Anna", p.Name)
}

func TestLedgerSelectedDangling(t *testing.T) {
	l := Ledger{People: []Person{{ID: "a", Name: "Anna"}}, SelectedID: "gone"}
	_, ok := l.Selected()
	assert.False(t, ok)
}

func TestLedgerValidateDuplicateIDs(t *testing.T) {
	l := Ledger{People: []Person{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}}}
	assert.ErrorIs(t, l.Validate(), ErrDuplicateID)
}

func TestLedgerCloneDoesNotAlias(t *testing.T) {
	l := Ledger{People: []Person{{ID: "a", Name: "A"}}}
	c := l.Clone()
	c.People[0].Name = "changed"
	assert.Equal(t, "A", l.People[0].Name)
}
