package interchange

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/internal/models"
)

const validDoc = `{
  "people": [
    {"id": "p1", "name": "Anna", "contact": "anna@example.com", "note": "", "created": "2024-01-01"}
  ],
  "tx": [
    {"id": "t1", "pid": "p1", "type": "lent", "amount": 500, "signed": -1, "date": "2024-01-10", "due": "", "note": "rent"},
    {"id": "t2", "pid": "p1", "type": "repay_to_me", "amount": "200", "date": "not-a-date", "due": null, "note": ""},
    {"id": "t3", "pid": "ghost", "type": "borrowed", "amount": 12.5, "date": "2024-03-01", "due": "2024-04-01", "note": ""}
  ],
  "selectedId": "p1"
}`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(validDoc))
	require.NoError(t, err)

	require.Len(t, l.People, 1)
	require.Len(t, l.Transactions, 3)
	assert.Equal(t, "p1", l.SelectedID)

	assert.True(t, l.Transactions[0].Signed().Equal(decimal.NewFromInt(500)), "signed is recomputed, not trusted")
	assert.True(t, l.Transactions[1].Date.IsEmpty(), "broken dates decode as absent")
	assert.Equal(t, "2024-04-01", l.Transactions[2].Due.String())
}

func TestDecodeLedgerRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"not json", `{{`, ErrMalformedImport},
		{"array document", `[]`, ErrMalformedImport},
		{"null document", `null`, ErrMalformedImport},
		{"tx is an object", `{"people": [], "tx": {}}`, ErrMalformedImport},
		{"tx is a string", `{"people": [], "tx": "nope"}`, ErrMalformedImport},
		{"people missing", `{"tx": []}`, ErrMalformedImport},
		{"people null", `{"people": null, "tx": []}`, ErrMalformedImport},
		{"unknown kind", `{"people": [], "tx": [{"id": "t", "pid": "p", "type": "gift", "amount": 1}]}`, models.ErrUnknownKind},
		{"zero amount", `{"people": [], "tx": [{"id": "t", "pid": "p", "type": "lent", "amount": 0}]}`, models.ErrInvalidAmount},
		{"bad amount", `{"people": [], "tx": [{"id": "t", "pid": "p", "type": "lent", "amount": "abc"}]}`, models.ErrInvalidAmount},
		{"empty name", `{"people": [{"id": "p", "name": " "}], "tx": []}`, models.ErrEmptyName},
		{"duplicate person", `{"people": [{"id": "p", "name": "A"}, {"id": "p", "name": "B"}], "tx": []}`, models.ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := DecodeLedger(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, l.People)
			assert.Empty(t, l.Transactions)
		})
	}
}

func TestDecodeLedgerAllowsMissingSelection(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(`{"people": [], "tx": [], "selectedId": null}`))
	require.NoError(t, err)
	assert.Empty(t, l.SelectedID)

	l, err = DecodeLedger(strings.NewReader(`{"people": [], "tx": []}`))
	require.NoError(t, err)
	assert.Empty(t, l.SelectedID)
}

func TestEncodeDecodePreservesLedger(t *testing.T) {
	in, err := DecodeLedger(strings.NewReader(validDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeLedger(&buf, in))
	assert.Contains(t, buf.String(), `"selectedId": "p1"`)
	assert.Contains(t, buf.String(), `"signed": -12.5`)

	out, err := DecodeLedger(&buf)
	require.NoError(t, err)
	require.Len(t, out.Transactions, len(in.Transactions))
	for i := range in.Transactions {
		assert.Equal(t, in.Transactions[i].ID, out.Transactions[i].ID)
		assert.True(t, in.Transactions[i].Amount.Equal(out.Transactions[i].Amount))
		assert.Equal(t, in.Transactions[i].Date.String(), out.Transactions[i].Date.String())
	}
	assert.Equal(t, in.People, out.People)
}

func TestWriteCSV(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(validDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, l))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{"Anna", "anna@example.com", "2024-01-10", "", "lent", "500", "500", "rent"}, rows[1])
	assert.Equal(t, []string{"Anna", "anna@example.com", "", "", "repay_to_me", "200", "-200", ""}, rows[2])
	assert.Equal(t, []string{"", "", "2024-03-01", "2024-04-01", "borrowed", "12.5", "-12.5", ""}, rows[3])
}
