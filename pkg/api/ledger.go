// Package api defines the messages of the debtbook.v1.LedgerService RPC API.
//
// Amounts travel as decimal strings ("500", "199.95") and dates as
// YYYY-MM-DD strings; an empty string means "absent".
package api

import "encoding/json"

// Person is a counterparty with their current balance.
type Person struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Note    string `json:"note,omitempty"`
	Created string `json:"created,omitempty"`
	Balance string `json:"balance"`
}

// Transaction is one money movement. Signed is derived from Kind and Amount.
type Transaction struct {
	ID       string `json:"id"`
	PersonID string `json:"personId"`
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
	Signed   string `json:"signed"`
	Date     string `json:"date,omitempty"`
	Due      string `json:"due,omitempty"`
	Note     string `json:"note,omitempty"`
	Overdue  bool   `json:"overdue,omitempty"`
}

type AddPersonRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact,omitempty"`
	Note    string `json:"note,omitempty"`
}

type AddPersonResponse struct {
	Person Person `json:"person"`
}

type ListPeopleRequest struct {
	// Query filters by a case-insensitive substring of name or contact.
	Query string `json:"query,omitempty"`
}

type ListPeopleResponse struct {
	People []Person `json:"people"`
}

type DeletePersonRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

type DeletePersonResponse struct {
	RemovedTransactions int `json:"removedTransactions"`
}

type SelectPersonRequest struct {
	// PersonID may be empty to clear the selection. It is not checked.
	PersonID string `json:"personId"`
}

type SelectPersonResponse struct {
	SelectedID string `json:"selectedId"`
}

type GetSelectionRequest struct{}

type GetSelectionResponse struct {
	// Person is nil when nothing is selected or the selection dangles.
	Person *Person `json:"person,omitempty"`
}

type AddTransactionRequest struct {
	// PersonID defaults to the selected person.
	PersonID string `json:"personId,omitempty"`
	Kind     string `json:"kind" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
	Date     string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Due      string `json:"due,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Note     string `json:"note,omitempty"`
}

type AddTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// SettlePersonRequest asks for the repayment that clears a balance.
type SettlePersonRequest struct {
	PersonID string `json:"personId" validate:"required"`
	Note     string `json:"note,omitempty"`
}

type SettlePersonResponse struct {
	Transaction Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

type DeleteTransactionResponse struct{}

type GetStatementRequest struct {
	// PersonID defaults to the selected person.
	PersonID string `json:"personId,omitempty"`
	// From and To override the saved filter when either is set.
	From string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type GetStatementResponse struct {
	// Found is false when no (live) person was requested or selected.
	Found        bool          `json:"found"`
	Person       *Person       `json:"person,omitempty"`
	From         string        `json:"from,omitempty"`
	To           string        `json:"to,omitempty"`
	Rows         []Transaction `json:"rows"`
	Balance      string        `json:"balance"`
	TotalBalance string        `json:"totalBalance"`
}

type GetPersonInfoRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

type GetPersonInfoResponse struct {
	Person           Person `json:"person"`
	TransactionCount int    `json:"transactionCount"`
	TheyOwe          string `json:"theyOwe"`
	IOwe             string `json:"iOwe"`
	Balance          string `json:"balance"`
}

type Summary struct {
	PositiveTotal    string `json:"positiveTotal"`
	NegativeTotal    string `json:"negativeTotal"`
	Net              string `json:"net"`
	PersonCount      int    `json:"personCount"`
	TransactionCount int    `json:"transactionCount"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Summary Summary `json:"summary"`
}

type RankedBalance struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
	Balance  string `json:"balance"`
}

type MonthlySeries struct {
	Labels []string `json:"labels"`
	Net    []string `json:"net"`
	Count  []int    `json:"count"`
}

type Series struct {
	Labels []string `json:"labels"`
	Data   []string `json:"data"`
}

type GetDashboardRequest struct {
	// AsOf defaults to today.
	AsOf       string `json:"asOf,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MonthsBack int    `json:"monthsBack,omitempty" validate:"gte=0,lte=120"`
	TopN       int    `json:"topN,omitempty" validate:"gte=0,lte=100"`
}

type GetDashboardResponse struct {
	AsOf    string          `json:"asOf"`
	Summary Summary         `json:"summary"`
	Top     []RankedBalance `json:"top"`
	Monthly MonthlySeries   `json:"monthly"`
	ByKind  Series          `json:"byKind"`
	Aging   Series          `json:"aging"`
}

type SetFilterRequest struct {
	From string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type SetFilterResponse struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type GetFilterRequest struct{}

type GetFilterResponse struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type ImportLedgerRequest struct {
	// Document is a ledger in the interchange shape {people, tx, selectedId}.
	Document json.RawMessage `json:"document" validate:"required"`
}

type ImportLedgerResponse struct {
	People       int `json:"people"`
	Transactions int `json:"transactions"`
}

type ExportLedgerRequest struct{}

type ExportLedgerResponse struct {
	Document json.RawMessage `json:"document"`
}

type ExportCSVRequest struct{}

type ExportCSVResponse struct {
	CSV string `json:"csv"`
}
