// Package apiconnect binds the api messages to Connect for the
// debtbook.v1.LedgerService service.
//
// Messages are plain Go structs carried by a JSON codec, so the service can be
// called with any Connect client or with a plain HTTP POST:
//
//	curl -H 'Content-Type: application/json' -d '{"name":"Anna"}' \
//	    http://localhost:8080/debtbook.v1.LedgerService/AddPerson
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/debtbook/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "debtbook.v1.LedgerService"

// Procedure paths of every LedgerService RPC.
const (
	LedgerServiceAddPersonProcedure         = "/debtbook.v1.LedgerService/AddPerson"
	LedgerServiceListPeopleProcedure        = "/debtbook.v1.LedgerService/ListPeople"
	LedgerServiceDeletePersonProcedure      = "/debtbook.v1.LedgerService/DeletePerson"
	LedgerServiceSelectPersonProcedure      = "/debtbook.v1.LedgerService/SelectPerson"
	LedgerServiceGetSelectionProcedure      = "/debtbook.v1.LedgerService/GetSelection"
	LedgerServiceAddTransactionProcedure    = "/debtbook.v1.LedgerService/AddTransaction"
	LedgerServiceDeleteTransactionProcedure = "/debtbook.v1.LedgerService/DeleteTransaction"
	LedgerServiceSettlePersonProcedure      = "/debtbook.v1.LedgerService/SettlePerson"
	LedgerServiceGetStatementProcedure      = "/debtbook.v1.LedgerService/GetStatement"
	LedgerServiceGetPersonInfoProcedure     = "/debtbook.v1.LedgerService/GetPersonInfo"
	LedgerServiceGetSummaryProcedure        = "/debtbook.v1.LedgerService/GetSummary"
	LedgerServiceGetDashboardProcedure      = "/debtbook.v1.LedgerService/GetDashboard"
	LedgerServiceSetFilterProcedure         = "/debtbook.v1.LedgerService/SetFilter"
	LedgerServiceGetFilterProcedure         = "/debtbook.v1.LedgerService/GetFilter"
	LedgerServiceImportLedgerProcedure      = "/debtbook.v1.LedgerService/ImportLedger"
	LedgerServiceExportLedgerProcedure      = "/debtbook.v1.LedgerService/ExportLedger"
	LedgerServiceExportCSVProcedure         = "/debtbook.v1.LedgerService/ExportCSV"
)

// LedgerServiceHandler is implemented by the server.
type LedgerServiceHandler interface {
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
	SelectPerson(context.Context, *connect.Request[api.SelectPersonRequest]) (*connect.Response[api.SelectPersonResponse], error)
	GetSelection(context.Context, *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error)
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	SettlePerson(context.Context, *connect.Request[api.SettlePersonRequest]) (*connect.Response[api.SettlePersonResponse], error)
	GetStatement(context.Context, *connect.Request[api.GetStatementRequest]) (*connect.Response[api.GetStatementResponse], error)
	GetPersonInfo(context.Context, *connect.Request[api.GetPersonInfoRequest]) (*connect.Response[api.GetPersonInfoResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	SetFilter(context.Context, *connect.Request[api.SetFilterRequest]) (*connect.Response[api.SetFilterResponse], error)
	GetFilter(context.Context, *connect.Request[api.GetFilterRequest]) (*connect.Response[api.GetFilterResponse], error)
	ImportLedger(context.Context, *connect.Request[api.ImportLedgerRequest]) (*connect.Response[api.ImportLedgerResponse], error)
	ExportLedger(context.Context, *connect.Request[api.ExportLedgerRequest]) (*connect.Response[api.ExportLedgerResponse], error)
	ExportCSV(context.Context, *connect.Request[api.ExportCSVRequest]) (*connect.Response[api.ExportCSVResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceAddPersonProcedure, connect.NewUnaryHandler(LedgerServiceAddPersonProcedure, svc.AddPerson, opts...))
	mux.Handle(LedgerServiceListPeopleProcedure, connect.NewUnaryHandler(LedgerServiceListPeopleProcedure, svc.ListPeople, opts...))
	mux.Handle(LedgerServiceDeletePersonProcedure, connect.NewUnaryHandler(LedgerServiceDeletePersonProcedure, svc.DeletePerson, opts...))
	mux.Handle(LedgerServiceSelectPersonProcedure, connect.NewUnaryHandler(LedgerServiceSelectPersonProcedure, svc.SelectPerson, opts...))
	mux.Handle(LedgerServiceGetSelectionProcedure, connect.NewUnaryHandler(LedgerServiceGetSelectionProcedure, svc.GetSelection, opts...))
	mux.Handle(LedgerServiceAddTransactionProcedure, connect.NewUnaryHandler(LedgerServiceAddTransactionProcedure, svc.AddTransaction, opts...))
	mux.Handle(LedgerServiceDeleteTransactionProcedure, connect.NewUnaryHandler(LedgerServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...))
	mux.Handle(LedgerServiceSettlePersonProcedure, connect.NewUnaryHandler(LedgerServiceSettlePersonProcedure, svc.SettlePerson, opts...))
	mux.Handle(LedgerServiceGetStatementProcedure, connect.NewUnaryHandler(LedgerServiceGetStatementProcedure, svc.GetStatement, opts...))
	mux.Handle(LedgerServiceGetPersonInfoProcedure, connect.NewUnaryHandler(LedgerServiceGetPersonInfoProcedure, svc.GetPersonInfo, opts...))
	mux.Handle(LedgerServiceGetSummaryProcedure, connect.NewUnaryHandler(LedgerServiceGetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(LedgerServiceGetDashboardProcedure, connect.NewUnaryHandler(LedgerServiceGetDashboardProcedure, svc.GetDashboard, opts...))
	mux.Handle(LedgerServiceSetFilterProcedure, connect.NewUnaryHandler(LedgerServiceSetFilterProcedure, svc.SetFilter, opts...))
	mux.Handle(LedgerServiceGetFilterProcedure, connect.NewUnaryHandler(LedgerServiceGetFilterProcedure, svc.GetFilter, opts...))
	mux.Handle(LedgerServiceImportLedgerProcedure, connect.NewUnaryHandler(LedgerServiceImportLedgerProcedure, svc.ImportLedger, opts...))
	mux.Handle(LedgerServiceExportLedgerProcedure, connect.NewUnaryHandler(LedgerServiceExportLedgerProcedure, svc.ExportLedger, opts...))
	mux.Handle(LedgerServiceExportCSVProcedure, connect.NewUnaryHandler(LedgerServiceExportCSVProcedure, svc.ExportCSV, opts...))

	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a client for the debtbook.v1.LedgerService service.
type LedgerServiceClient interface {
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
	SelectPerson(context.Context, *connect.Request[api.SelectPersonRequest]) (*connect.Response[api.SelectPersonResponse], error)
	GetSelection(context.Context, *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error)
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	SettlePerson(context.Context, *connect.Request[api.SettlePersonRequest]) (*connect.Response[api.SettlePersonResponse], error)
	GetStatement(context.Context, *connect.Request[api.GetStatementRequest]) (*connect.Response[api.GetStatementResponse], error)
	GetPersonInfo(context.Context, *connect.Request[api.GetPersonInfoRequest]) (*connect.Response[api.GetPersonInfoResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	SetFilter(context.Context, *connect.Request[api.SetFilterRequest]) (*connect.Response[api.SetFilterResponse], error)
	GetFilter(context.Context, *connect.Request[api.GetFilterRequest]) (*connect.Response[api.GetFilterResponse], error)
	ImportLedger(context.Context, *connect.Request[api.ImportLedgerRequest]) (*connect.Response[api.ImportLedgerResponse], error)
	ExportLedger(context.Context, *connect.Request[api.ExportLedgerRequest]) (*connect.Response[api.ExportLedgerResponse], error)
	ExportCSV(context.Context, *connect.Request[api.ExportCSVRequest]) (*connect.Response[api.ExportCSVResponse], error)
}

// NewLedgerServiceClient constructs a client for the debtbook.v1.LedgerService
// service. baseURL is the scheme and host, e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &ledgerServiceClient{
		addPerson:         connect.NewClient[api.AddPersonRequest, api.AddPersonResponse](httpClient, baseURL+LedgerServiceAddPersonProcedure, opts...),
		listPeople:        connect.NewClient[api.ListPeopleRequest, api.ListPeopleResponse](httpClient, baseURL+LedgerServiceListPeopleProcedure, opts...),
		deletePerson:      connect.NewClient[api.DeletePersonRequest, api.DeletePersonResponse](httpClient, baseURL+LedgerServiceDeletePersonProcedure, opts...),
		selectPerson:      connect.NewClient[api.SelectPersonRequest, api.SelectPersonResponse](httpClient, baseURL+LedgerServiceSelectPersonProcedure, opts...),
		getSelection:      connect.NewClient[api.GetSelectionRequest, api.GetSelectionResponse](httpClient, baseURL+LedgerServiceGetSelectionProcedure, opts...),
		addTransaction:    connect.NewClient[api.AddTransactionRequest, api.AddTransactionResponse](httpClient, baseURL+LedgerServiceAddTransactionProcedure, opts...),
		deleteTransaction: connect.NewClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](httpClient, baseURL+LedgerServiceDeleteTransactionProcedure, opts...),
		settlePerson:      connect.NewClient[api.SettlePersonRequest, api.SettlePersonResponse](httpClient, baseURL+LedgerServiceSettlePersonProcedure, opts...),
		getStatement:      connect.NewClient[api.GetStatementRequest, api.GetStatementResponse](httpClient, baseURL+LedgerServiceGetStatementProcedure, opts...),
		getPersonInfo:     connect.NewClient[api.GetPersonInfoRequest, api.GetPersonInfoResponse](httpClient, baseURL+LedgerServiceGetPersonInfoProcedure, opts...),
		getSummary:        connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](httpClient, baseURL+LedgerServiceGetSummaryProcedure, opts...),
		getDashboard:      connect.NewClient[api.GetDashboardRequest, api.GetDashboardResponse](httpClient, baseURL+LedgerServiceGetDashboardProcedure, opts...),
		setFilter:         connect.NewClient[api.SetFilterRequest, api.SetFilterResponse](httpClient, baseURL+LedgerServiceSetFilterProcedure, opts...),
		getFilter:         connect.NewClient[api.GetFilterRequest, api.GetFilterResponse](httpClient, baseURL+LedgerServiceGetFilterProcedure, opts...),
		importLedger:      connect.NewClient[api.ImportLedgerRequest, api.ImportLedgerResponse](httpClient, baseURL+LedgerServiceImportLedgerProcedure, opts...),
		exportLedger:      connect.NewClient[api.ExportLedgerRequest, api.ExportLedgerResponse](httpClient, baseURL+LedgerServiceExportLedgerProcedure, opts...),
		exportCSV:         connect.NewClient[api.ExportCSVRequest, api.ExportCSVResponse](httpClient, baseURL+LedgerServiceExportCSVProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	addPerson         *connect.Client[api.AddPersonRequest, api.AddPersonResponse]
	listPeople        *connect.Client[api.ListPeopleRequest, api.ListPeopleResponse]
	deletePerson      *connect.Client[api.DeletePersonRequest, api.DeletePersonResponse]
	selectPerson      *connect.Client[api.SelectPersonRequest, api.SelectPersonResponse]
	getSelection      *connect.Client[api.GetSelectionRequest, api.GetSelectionResponse]
	addTransaction    *connect.Client[api.AddTransactionRequest, api.AddTransactionResponse]
	deleteTransaction *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
	settlePerson      *connect.Client[api.SettlePersonRequest, api.SettlePersonResponse]
	getStatement      *connect.Client[api.GetStatementRequest, api.GetStatementResponse]
	getPersonInfo     *connect.Client[api.GetPersonInfoRequest, api.GetPersonInfoResponse]
	getSummary        *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
	getDashboard      *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
	setFilter         *connect.Client[api.SetFilterRequest, api.SetFilterResponse]
	getFilter         *connect.Client[api.GetFilterRequest, api.GetFilterResponse]
	importLedger      *connect.Client[api.ImportLedgerRequest, api.ImportLedgerResponse]
	exportLedger      *connect.Client[api.ExportLedgerRequest, api.ExportLedgerResponse]
	exportCSV         *connect.Client[api.ExportCSVRequest, api.ExportCSVResponse]
}

func (c *ledgerServiceClient) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SelectPerson(ctx context.Context, req *connect.Request[api.SelectPersonRequest]) (*connect.Response[api.SelectPersonResponse], error) {
	return c.selectPerson.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSelection(ctx context.Context, req *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error) {
	return c.getSelection.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	return c.addTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SettlePerson(ctx context.Context, req *connect.Request[api.SettlePersonRequest]) (*connect.Response[api.SettlePersonResponse], error) {
	return c.settlePerson.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetStatement(ctx context.Context, req *connect.Request[api.GetStatementRequest]) (*connect.Response[api.GetStatementResponse], error) {
	return c.getStatement.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetPersonInfo(ctx context.Context, req *connect.Request[api.GetPersonInfoRequest]) (*connect.Response[api.GetPersonInfoResponse], error) {
	return c.getPersonInfo.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SetFilter(ctx context.Context, req *connect.Request[api.SetFilterRequest]) (*connect.Response[api.SetFilterResponse], error) {
	return c.setFilter.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetFilter(ctx context.Context, req *connect.Request[api.GetFilterRequest]) (*connect.Response[api.GetFilterResponse], error) {
	return c.getFilter.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ImportLedger(ctx context.Context, req *connect.Request[api.ImportLedgerRequest]) (*connect.Response[api.ImportLedgerResponse], error) {
	return c.importLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ExportLedger(ctx context.Context, req *connect.Request[api.ExportLedgerRequest]) (*connect.Response[api.ExportLedgerResponse], error) {
	return c.exportLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ExportCSV(ctx context.Context, req *connect.Request[api.ExportCSVRequest]) (*connect.Response[api.ExportCSVResponse], error) {
	return c.exportCSV.CallUnary(ctx, req)
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func errUnimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(procedure+" is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return nil, errUnimplemented(LedgerServiceAddPersonProcedure)
}

func (UnimplementedLedgerServiceHandler) ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return nil, errUnimplemented(LedgerServiceListPeopleProcedure)
}

func (UnimplementedLedgerServiceHandler) DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return nil, errUnimplemented(LedgerServiceDeletePersonProcedure)
}

func (UnimplementedLedgerServiceHandler) SelectPerson(context.Context, *connect.Request[api.SelectPersonRequest]) (*connect.Response[api.SelectPersonResponse], error) {
	return nil, errUnimplemented(LedgerServiceSelectPersonProcedure)
}

func (UnimplementedLedgerServiceHandler) GetSelection(context.Context, *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error) {
	return nil, errUnimplemented(LedgerServiceGetSelectionProcedure)
}

func (UnimplementedLedgerServiceHandler) AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	return nil, errUnimplemented(LedgerServiceAddTransactionProcedure)
}

func (UnimplementedLedgerServiceHandler) DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return nil, errUnimplemented(LedgerServiceDeleteTransactionProcedure)
}

func (UnimplementedLedgerServiceHandler) SettlePerson(context.Context, *connect.Request[api.SettlePersonRequest]) (*connect.Response[api.SettlePersonResponse], error) {
	return nil, errUnimplemented(LedgerServiceSettlePersonProcedure)
}

func (UnimplementedLedgerServiceHandler) GetStatement(context.Context, *connect.Request[api.GetStatementRequest]) (*connect.Response[api.GetStatementResponse], error) {
	return nil, errUnimplemented(LedgerServiceGetStatementProcedure)
}

func (UnimplementedLedgerServiceHandler) GetPersonInfo(context.Context, *connect.Request[api.GetPersonInfoRequest]) (*connect.Response[api.GetPersonInfoResponse], error) {
	return nil, errUnimplemented(LedgerServiceGetPersonInfoProcedure)
}

func (UnimplementedLedgerServiceHandler) GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return nil, errUnimplemented(LedgerServiceGetSummaryProcedure)
}

func (UnimplementedLedgerServiceHandler) GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return nil, errUnimplemented(LedgerServiceGetDashboardProcedure)
}

func (UnimplementedLedgerServiceHandler) SetFilter(context.Context, *connect.Request[api.SetFilterRequest]) (*connect.Response[api.SetFilterResponse], error) {
	return nil, errUnimplemented(LedgerServiceSetFilterProcedure)
}

func (UnimplementedLedgerServiceHandler) GetFilter(context.Context, *connect.Request[api.GetFilterRequest]) (*connect.Response[api.GetFilterResponse], error) {
	return nil, errUnimplemented(LedgerServiceGetFilterProcedure)
}

func (UnimplementedLedgerServiceHandler) ImportLedger(context.Context, *connect.Request[api.ImportLedgerRequest]) (*connect.Response[api.ImportLedgerResponse], error) {
	return nil, errUnimplemented(LedgerServiceImportLedgerProcedure)
}

func (UnimplementedLedgerServiceHandler) ExportLedger(context.Context, *connect.Request[api.ExportLedgerRequest]) (*connect.Response[api.ExportLedgerResponse], error) {
	return nil, errUnimplemented(LedgerServiceExportLedgerProcedure)
}

func (UnimplementedLedgerServiceHandler) ExportCSV(context.Context, *connect.Request[api.ExportCSVRequest]) (*connect.Response[api.ExportCSVResponse], error) {
	return nil, errUnimplemented(LedgerServiceExportCSVProcedure)
}
