package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/debtbook/internal/calculator"
	"github.com/mmynk/debtbook/internal/events"
	"github.com/mmynk/debtbook/internal/ledger"
	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/pkg/api"
)

// AddPerson creates a person and puts them in focus.
func (s *LedgerService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	slog.Info("AddPerson request received", "name", req.Msg.Name)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("AddPerson failed to load ledger", "error", err)
		return nil, toConnectError(err)
	}

	next, person, err := ledger.AddPerson(l, models.PersonFields{
		Name:    req.Msg.Name,
		Contact: req.Msg.Contact,
		Note:    req.Msg.Note,
	}, s.today())
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.commit(ctx, next); err != nil {
		slog.Error("AddPerson failed to save ledger", "error", err)
		return nil, toConnectError(err)
	}
	s.publish(ctx, events.Event{Type: events.PersonAdded, PersonID: person.ID})

	slog.Info("Person added", "person_id", person.ID)

	return connect.NewResponse(&api.AddPersonResponse{
		Person: toAPIPerson(person, decimal.Zero),
	}), nil
}

// ListPeople returns people sorted by name with their balances.
func (s *LedgerService) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	slog.Debug("ListPeople request received", "query", req.Msg.Query)

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("ListPeople failed", "error", err)
		return nil, toConnectError(err)
	}

	found := ledger.SearchPeople(l, req.Msg.Query)
	people := make([]api.Person, len(found))
	for i, pb := range found {
		people[i] = toAPIPerson(pb.Person, pb.Balance)
	}

	return connect.NewResponse(&api.ListPeopleResponse{People: people}), nil
}

// DeletePerson removes a person and every transaction they own.
func (s *LedgerService) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	slog.Info("DeletePerson request received", "person_id", req.Msg.PersonID)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("DeletePerson failed to load ledger", "error", err)
		return nil, toConnectError(err)
	}

	next, removed, err := ledger.DeletePerson(l, req.Msg.PersonID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.commit(ctx, next); err != nil {
		slog.Error("DeletePerson failed to save ledger", "error", err)
		return nil, toConnectError(err)
	}
	s.publish(ctx, events.Event{Type: events.PersonDeleted, PersonID: req.Msg.PersonID, Count: removed})

	slog.Info("Person deleted", "person_id", req.Msg.PersonID, "removed_transactions", removed)

	return connect.NewResponse(&api.DeletePersonResponse{RemovedTransactions: removed}), nil
}

// SelectPerson sets the person in focus without checking that they exist.
func (s *LedgerService) SelectPerson(ctx context.Context, req *connect.Request[api.SelectPersonRequest]) (*connect.Response[api.SelectPersonResponse], error) {
	slog.Info("SelectPerson request received", "person_id", req.Msg.PersonID)

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("SelectPerson failed to load ledger", "error", err)
		return nil, toConnectError(err)
	}

	next := ledger.SelectPerson(l, req.Msg.PersonID)
	if err := s.commit(ctx, next); err != nil {
		slog.Error("SelectPerson failed to save ledger", "error", err)
		return nil, toConnectError(err)
	}
	s.publish(ctx, events.Event{Type: events.PersonSelected, PersonID: req.Msg.PersonID})

	return connect.NewResponse(&api.SelectPersonResponse{SelectedID: next.SelectedID}), nil
}

// GetSelection resolves the person in focus. A dangling selection is reported
// as no selection.
func (s *LedgerService) GetSelection(ctx context.Context, _ *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error) {
	l, err := s.load(ctx)
	if err != nil {
		slog.Error("GetSelection failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.GetSelectionResponse{}
	if p, ok := ledger.Selection(l); ok {
		person := toAPIPerson(p, calculator.BalanceOf(p.ID, l.Transactions))
		resp.Person = &person
	}
	return connect.NewResponse(resp), nil
}

// GetPersonInfo returns the totals behind one person's balance.
func (s *LedgerService) GetPersonInfo(ctx context.Context, req *connect.Request[api.GetPersonInfoRequest]) (*connect.Response[api.GetPersonInfoResponse], error) {
	slog.Debug("GetPersonInfo request received", "person_id", req.Msg.PersonID)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("GetPersonInfo failed", "error", err)
		return nil, toConnectError(err)
	}

	p, ok := l.Person(req.Msg.PersonID)
	if !ok {
		return nil, toConnectError(models.ErrPersonNotFound)
	}

	stats := calculator.PersonStats(p.ID, l.Transactions)
	return connect.NewResponse(&api.GetPersonInfoResponse{
		Person:           toAPIPerson(p, stats.Balance),
		TransactionCount: stats.TransactionCount,
		TheyOwe:          stats.TheyOwe.String(),
		IOwe:             stats.IOwe.String(),
		Balance:          stats.Balance.String(),
	}), nil
}
