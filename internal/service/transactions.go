package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/debtbook/internal/events"
	"github.com/mmynk/debtbook/internal/ledger"
	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/pkg/api"
)

// parseTransactionFields turns request strings into typed fields.
func parseTransactionFields(msg *api.AddTransactionRequest) (models.TransactionFields, error) {
	kind, err := models.ParseKind(msg.Kind)
	if err != nil {
		return models.TransactionFields{}, err
	}
	amount, err := models.ParseAmount(msg.Amount)
	if err != nil {
		return models.TransactionFields{}, err
	}
	date, err := models.ParseDate(msg.Date)
	if err != nil {
		return models.TransactionFields{}, err
	}
	due, err := models.ParseDate(msg.Due)
	if err != nil {
		return models.TransactionFields{}, err
	}
	return models.TransactionFields{
		PersonID: msg.PersonID,
		Kind:     kind,
		Amount:   amount,
		Date:     date,
		Due:      due,
		Note:     msg.Note,
	}, nil
}

// AddTransaction records a movement for the given or the selected person.
func (s *LedgerService) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	slog.Info("AddTransaction request received",
		"person_id", req.Msg.PersonID,
		"kind", req.Msg.Kind,
		"amount", req.Msg.Amount,
	)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}
	fields, err := parseTransactionFields(req.Msg)
	if err != nil {
		slog.Warn("AddTransaction rejected", "error", err)
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("AddTransaction failed to load ledger", "error", err)
		return nil, toConnectError(err)
	}

	next, t, err := ledger.AddTransaction(l, fields, s.today())
	if err != nil {
		slog.Warn("AddTransaction rejected", "error", err)
		return nil, toConnectError(err)
	}
	if err := s.commit(ctx, next); err != nil {
		slog.Error("AddTransaction failed to save ledger", "error", err)
		return nil, toConnectError(err)
	}
	s.publish(ctx, events.Event{Type: events.TransactionAdded, PersonID: t.PersonID, TransactionID: t.ID})

	slog.Info("Transaction added",
		"transaction_id", t.ID,
		"person_id", t.PersonID,
		"signed", t.Signed().String(),
	)

	return connect.NewResponse(&api.AddTransactionResponse{
		Transaction: toAPITransaction(t, false),
	}), nil
}

// DeleteTransaction removes one transaction.
func (s *LedgerService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	slog.Info("DeleteTransaction request received", "transaction_id", req.Msg.TransactionID)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("DeleteTransaction failed to load ledger", "error", err)
		return nil, toConnectError(err)
	}

	next, removed, err := ledger.DeleteTransaction(l, req.Msg.TransactionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.commit(ctx, next); err != nil {
		slog.Error("DeleteTransaction failed to save ledger", "error", err)
		return nil, toConnectError(err)
	}
	s.publish(ctx, events.Event{Type: events.TransactionDeleted, PersonID: removed.PersonID, TransactionID: removed.ID})

	slog.Info("Transaction deleted", "transaction_id", removed.ID)

	return connect.NewResponse(&api.DeleteTransactionResponse{}), nil
}

// SettlePerson records the repayment that brings a person's balance to zero.
func (s *LedgerService) SettlePerson(ctx context.Context, req *connect.Request[api.SettlePersonRequest]) (*connect.Response[api.SettlePersonResponse], error) {
	slog.Info("SettlePerson request received", "person_id", req.Msg.PersonID)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("SettlePerson failed to load ledger", "error", err)
		return nil, toConnectError(err)
	}

	next, t, err := ledger.Settle(l, req.Msg.PersonID, req.Msg.Note, s.today())
	if err != nil {
		slog.Warn("SettlePerson rejected", "error", err)
		return nil, toConnectError(err)
	}
	if err := s.commit(ctx, next); err != nil {
		slog.Error("SettlePerson failed to save ledger", "error", err)
		return nil, toConnectError(err)
	}
	s.publish(ctx, events.Event{Type: events.PersonSettled, PersonID: t.PersonID, TransactionID: t.ID})

	slog.Info("Person settled", "person_id", t.PersonID, "amount", t.Amount.String(), "kind", t.Kind.String())

	return connect.NewResponse(&api.SettlePersonResponse{
		Transaction: toAPITransaction(t, false),
	}), nil
}
