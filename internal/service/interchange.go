package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/debtbook/internal/events"
	"github.com/mmynk/debtbook/internal/interchange"
	"github.com/mmynk/debtbook/pkg/api"
)

// Export formats accepted by WriteExport.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ImportLedger replaces the whole ledger with the given document. A malformed
// or invalid document is rejected and the stored ledger stays as it was.
func (s *LedgerService) ImportLedger(ctx context.Context, req *connect.Request[api.ImportLedgerRequest]) (*connect.Response[api.ImportLedgerResponse], error) {
	slog.Info("ImportLedger request received", "bytes", len(req.Msg.Document))

	if err := s.check(req.Msg); err != nil {
		return nil, err
	}

	l, err := interchange.DecodeLedger(bytes.NewReader(req.Msg.Document))
	if err != nil {
		slog.Warn("ImportLedger rejected", "error", err)
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, l); err != nil {
		slog.Error("ImportLedger failed to save ledger", "error", err)
		return nil, toConnectError(err)
	}
	s.publish(ctx, events.Event{Type: events.LedgerImported, Count: len(l.People) + len(l.Transactions)})

	slog.Info("Ledger imported", "people", len(l.People), "transactions", len(l.Transactions))

	return connect.NewResponse(&api.ImportLedgerResponse{
		People:       len(l.People),
		Transactions: len(l.Transactions),
	}), nil
}

// ExportLedger returns the ledger in the import document shape.
func (s *LedgerService) ExportLedger(ctx context.Context, _ *connect.Request[api.ExportLedgerRequest]) (*connect.Response[api.ExportLedgerResponse], error) {
	var buf bytes.Buffer
	if err := s.WriteExport(ctx, &buf, FormatJSON); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ExportLedgerResponse{Document: buf.Bytes()}), nil
}

// ExportCSV returns one row per transaction.
func (s *LedgerService) ExportCSV(ctx context.Context, _ *connect.Request[api.ExportCSVRequest]) (*connect.Response[api.ExportCSVResponse], error) {
	var buf bytes.Buffer
	if err := s.WriteExport(ctx, &buf, FormatCSV); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ExportCSVResponse{CSV: buf.String()}), nil
}

// WriteExport writes the current ledger to w as json or csv.
func (s *LedgerService) WriteExport(ctx context.Context, w io.Writer, format string) error {
	l, err := s.load(ctx)
	if err != nil {
		slog.Error("Export failed to load ledger", "error", err)
		return err
	}

	switch format {
	case FormatJSON:
		return interchange.EncodeLedger(w, l)
	case FormatCSV:
		return interchange.WriteCSV(w, l)
	default:
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown export format %q", format))
	}
}
