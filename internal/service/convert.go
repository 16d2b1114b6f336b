package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/debtbook/internal/calculator"
	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/pkg/api"
)

func toAPIPerson(p models.Person, balance decimal.Decimal) api.Person {
	return api.Person{
		ID:      p.ID,
		Name:    p.Name,
		Contact: p.Contact,
		Note:    p.Note,
		Created: p.Created.String(),
		Balance: balance.String(),
	}
}

func toAPITransaction(t models.Transaction, overdue bool) api.Transaction {
	return api.Transaction{
		ID:       t.ID,
		PersonID: t.PersonID,
		Kind:     t.Kind.String(),
		Amount:   t.Amount.String(),
		Signed:   t.Signed().String(),
		Date:     t.Date.String(),
		Due:      t.Due.String(),
		Note:     t.Note,
		Overdue:  overdue,
	}
}

func toAPISummary(s calculator.Summary) api.Summary {
	return api.Summary{
		PositiveTotal:    s.PositiveTotal.String(),
		NegativeTotal:    s.NegativeTotal.String(),
		Net:              s.Net.String(),
		PersonCount:      s.PersonCount,
		TransactionCount: s.TransactionCount,
	}
}

func decimalStrings(in []decimal.Decimal) []string {
	out := make([]string, len(in))
	for i, d := range in {
		out[i] = d.String()
	}
	return out
}

func toAPISeries(s calculator.Series) api.Series {
	return api.Series{Labels: s.Labels, Data: decimalStrings(s.Data)}
}

func toAPIDashboard(d calculator.Dashboard) *api.GetDashboardResponse {
	top := make([]api.RankedBalance, len(d.Top))
	for i, r := range d.Top {
		top[i] = api.RankedBalance{PersonID: r.PersonID, Name: r.Name, Balance: r.Balance.String()}
	}
	return &api.GetDashboardResponse{
		AsOf:    d.AsOf.String(),
		Summary: toAPISummary(d.Summary),
		Top:     top,
		Monthly: api.MonthlySeries{
			Labels: d.Monthly.Labels,
			Net:    decimalStrings(d.Monthly.Net),
			Count:  d.Monthly.Count,
		},
		ByKind: toAPISeries(d.ByKind),
		Aging:  toAPISeries(d.Aging),
	}
}

func toAPIStatement(st calculator.Statement) *api.GetStatementResponse {
	resp := &api.GetStatementResponse{
		Found:        st.Found,
		From:         st.Range.From.String(),
		To:           st.Range.To.String(),
		Rows:         make([]api.Transaction, len(st.Rows)),
		Balance:      st.Balance.String(),
		TotalBalance: st.TotalBalance.String(),
	}
	if st.Found {
		p := toAPIPerson(st.Person, st.TotalBalance)
		resp.Person = &p
	}
	for i, row := range st.Rows {
		resp.Rows[i] = toAPITransaction(row.Transaction, row.Overdue)
	}
	return resp
}
