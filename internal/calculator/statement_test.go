package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/internal/models"
)

func TestBuildStatement(t *testing.T) {
	overdue := tx("t1", "a", models.LentToThem, "500", day(2024, 1, 10))
	overdue.Due = day(2024, 1, 20)

	l := models.Ledger{
		People: []models.Person{{ID: "a", Name: "Anna"}},
		Transactions: []models.Transaction{
			overdue,
			tx("t2", "a", models.RepaidToMe, "200", day(2024, 2, 1)),
			tx("t3", "b", models.LentToThem, "1", day(2024, 2, 1)),
		},
	}
	asOf := day(2024, 2, 15)

	t.Run("unfiltered", func(t *testing.T) {
		st := BuildStatement(l, "a", models.DateRange{}, asOf)
		require.True(t, st.Found)
		assert.Equal(t, "Anna", st.Person.Name)
		require.Len(t, st.Rows, 2)
		assert.Equal(t, "t2", st.Rows[0].Transaction.ID)
		assert.True(t, st.Rows[1].Overdue)
		assertDecimal(t, "300", st.Balance)
		assertDecimal(t, "300", st.TotalBalance)
	})

	t.Run("filtered", func(t *testing.T) {
		r, err := models.NewDateRange("2024-01-01", "2024-01-31")
		require.NoError(t, err)
		st := BuildStatement(l, "a", r, asOf)
		require.Len(t, st.Rows, 1)
		assertDecimal(t, "500", st.Balance, "trailing balance covers shown rows")
		assertDecimal(t, "300", st.TotalBalance)
	})

	t.Run("dangling person", func(t *testing.T) {
		st := BuildStatement(l, "b", models.DateRange{}, asOf)
		assert.False(t, st.Found)
		assert.Empty(t, st.Rows)
		assertDecimal(t, "0", st.Balance)
	})
}
