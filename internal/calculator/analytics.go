package calculator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/debtbook/internal/models"
)

const (
	// DefaultMonthsBack is the length of the monthly series.
	DefaultMonthsBack = 12
	// DefaultTopN is the number of people in the exposure ranking.
	DefaultTopN = 7
)

// AgingLabels are the day-overdue ranges, inclusive on both ends.
var AgingLabels = []string{"0-7", "8-30", "31-60", "60+"}

// MonthlySeries is one bucket per calendar month, oldest first.
type MonthlySeries struct {
	Labels []string          // YYYY-MM
	Net    []decimal.Decimal // Sum of signed amounts in the month
	Count  []int             // Number of transactions in the month
}

// Series is a labelled numeric series (pie/bar chart input).
type Series struct {
	Labels []string
	Data   []decimal.Decimal
}

// RankedBalance is one entry of the exposure ranking.
type RankedBalance struct {
	PersonID string
	Name     string
	Balance  decimal.Decimal
}

// MonthlyNetAndCount buckets transactions into the monthsBack calendar months
// ending with the month of asOf. Transactions outside the window, or without a
// date, are dropped rather than clamped into an edge bucket.
func MonthlyNetAndCount(txs []models.Transaction, asOf models.Date, monthsBack int) MonthlySeries {
	if monthsBack <= 0 {
		monthsBack = DefaultMonthsBack
	}

	series := MonthlySeries{
		Labels: make([]string, monthsBack),
		Net:    make([]decimal.Decimal, monthsBack),
		Count:  make([]int, monthsBack),
	}
	index := make(map[string]int, monthsBack)

	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthsBack - 1), 0)
	for i := 0; i < monthsBack; i++ {
		label := first.AddDate(0, i, 0).Format("2006-01")
		series.Labels[i] = label
		series.Net[i] = decimal.Zero
		index[label] = i
	}

	for _, t := range txs {
		i, ok := index[t.Date.MonthLabel()]
		if !ok {
			continue
		}
		series.Net[i] = series.Net[i].Add(t.Signed())
		series.Count[i]++
	}
	return series
}

// TopBalances ranks people by the magnitude of their balance, largest first,
// and returns at most n entries. A large debt and a large credit rank equally;
// ties keep the order of people. Zero balances are not filtered out.
func TopBalances(people []models.Person, txs []models.Transaction, n int) []RankedBalance {
	if n <= 0 {
		n = DefaultTopN
	}

	balances := Balances(txs)
	ranked := make([]RankedBalance, len(people))
	for i, p := range people {
		bal, ok := balances[p.ID]
		if !ok {
			bal = decimal.Zero
		}
		ranked[i] = RankedBalance{PersonID: p.ID, Name: p.Name, Balance: bal}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Balance.Abs().GreaterThan(ranked[j].Balance.Abs())
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TotalsByKind sums the magnitudes (not signed values) per kind in the fixed
// order LentToThem, RepaidToMe, BorrowedFromThem, RepaidByMe.
func TotalsByKind(txs []models.Transaction) Series {
	kinds := models.Kinds()
	series := Series{
		Labels: make([]string, len(kinds)),
		Data:   make([]decimal.Decimal, len(kinds)),
	}
	position := make(map[models.Kind]int, len(kinds))
	for i, k := range kinds {
		series.Labels[i] = k.Label()
		series.Data[i] = decimal.Zero
		position[k] = i
	}

	for _, t := range txs {
		if i, ok := position[t.Kind]; ok {
			series.Data[i] = series.Data[i].Add(t.Amount.Abs())
		}
	}
	return series
}

// AgingBuckets groups overdue obligations by how many whole days they are late
// as of asOf and sums their signed magnitudes per bucket.
func AgingBuckets(txs []models.Transaction, asOf models.Date) Series {
	series := Series{
		Labels: append([]string(nil), AgingLabels...),
		Data:   make([]decimal.Decimal, len(AgingLabels)),
	}
	for i := range series.Data {
		series.Data[i] = decimal.Zero
	}

	for _, t := range txs {
		if !IsOverdue(t, asOf) {
			continue
		}
		i := agingBucket(asOf.DaysSince(t.Due))
		series.Data[i] = series.Data[i].Add(t.Signed().Abs())
	}
	return series
}

func agingBucket(days int) int {
	switch {
	case days <= 7:
		return 0
	case days <= 30:
		return 1
	case days <= 60:
		return 2
	default:
		return 3
	}
}

// Dashboard bundles every aggregate the dashboard renders.
type Dashboard struct {
	AsOf    models.Date
	Summary Summary
	Top     []RankedBalance
	Monthly MonthlySeries
	ByKind  Series
	Aging   Series
}

// BuildDashboard recomputes every aggregate from scratch.
func BuildDashboard(l models.Ledger, asOf models.Date, monthsBack, topN int) Dashboard {
	return Dashboard{
		AsOf:    asOf,
		Summary: Summarize(l),
		Top:     TopBalances(l.People, l.Transactions, topN),
		Monthly: MonthlyNetAndCount(l.Transactions, asOf, monthsBack),
		ByKind:  TotalsByKind(l.Transactions),
		Aging:   AgingBuckets(l.Transactions, asOf),
	}
}
