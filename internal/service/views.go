package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/debtbook/internal/calculator"
	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/pkg/api"
)

// GetStatement returns one person's transactions, newest first, with the
// trailing balance. Bounds in the request win over the saved filter.
func (s *LedgerService) GetStatement(ctx context.Context, req *connect.Request[api.GetStatementRequest]) (*connect.Response[api.GetStatementResponse], error) {
	slog.Debug("GetStatement request received",
		"person_id", req.Msg.PersonID,
		"from", req.Msg.From,
		"to", req.Msg.To,
	)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	r, err := models.NewDateRange(req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !r.Active() {
		if r, err = s.store.LoadFilter(ctx); err != nil {
			slog.Error("GetStatement failed to load filter", "error", err)
			return nil, toConnectError(err)
		}
	}

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("GetStatement failed", "error", err)
		return nil, toConnectError(err)
	}

	personID := req.Msg.PersonID
	if personID == "" {
		personID = l.SelectedID
	}

	st := calculator.BuildStatement(l, personID, r, s.today())
	return connect.NewResponse(toAPIStatement(st)), nil
}

// GetSummary returns the dashboard KPIs.
func (s *LedgerService) GetSummary(ctx context.Context, _ *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	l, err := s.load(ctx)
	if err != nil {
		slog.Error("GetSummary failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetSummaryResponse{
		Summary: toAPISummary(calculator.Summarize(l)),
	}), nil
}

// GetDashboard returns the KPIs and every chart series.
func (s *LedgerService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	asOf, err := models.ParseDate(req.Msg.AsOf)
	if err != nil {
		return nil, toConnectError(err)
	}
	if asOf.IsEmpty() {
		asOf = s.today()
	}
	monthsBack := req.Msg.MonthsBack
	if monthsBack == 0 {
		monthsBack = s.monthsBack
	}
	topN := req.Msg.TopN
	if topN == 0 {
		topN = s.topN
	}

	l, err := s.load(ctx)
	if err != nil {
		slog.Error("GetDashboard failed", "error", err)
		return nil, toConnectError(err)
	}

	dash := calculator.BuildDashboard(l, asOf, monthsBack, topN)
	return connect.NewResponse(toAPIDashboard(dash)), nil
}

// SetFilter saves the statement date filter. Empty bounds clear it.
func (s *LedgerService) SetFilter(ctx context.Context, req *connect.Request[api.SetFilterRequest]) (*connect.Response[api.SetFilterResponse], error) {
	slog.Info("SetFilter request received", "from", req.Msg.From, "to", req.Msg.To)

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}
	r, err := models.NewDateRange(req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.SaveFilter(ctx, r); err != nil {
		slog.Error("SetFilter failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SetFilterResponse{From: r.From.String(), To: r.To.String()}), nil
}

// GetFilter returns the saved statement date filter.
func (s *LedgerService) GetFilter(ctx context.Context, _ *connect.Request[api.GetFilterRequest]) (*connect.Response[api.GetFilterResponse], error) {
	r, err := s.store.LoadFilter(ctx)
	if err != nil {
		slog.Error("GetFilter failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetFilterResponse{From: r.From.String(), To: r.To.String()}), nil
}
