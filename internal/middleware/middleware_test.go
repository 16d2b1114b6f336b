package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/internal/metrics"
	"github.com/mmynk/debtbook/pkg/api"
	"github.com/mmynk/debtbook/pkg/api/apiconnect"
)

// summaryStub answers GetSummary and fails GetPersonInfo with the given error.
type summaryStub struct {
	apiconnect.UnimplementedLedgerServiceHandler
	infoErr error

	mu        sync.Mutex
	requestID string
}

func (s *summaryStub) GetSummary(ctx context.Context, _ *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	s.mu.Lock()
	s.requestID = GetRequestID(ctx)
	s.mu.Unlock()
	return connect.NewResponse(&api.GetSummaryResponse{}), nil
}

func (s *summaryStub) seenRequestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestID
}

func (s *summaryStub) GetPersonInfo(context.Context, *connect.Request[api.GetPersonInfoRequest]) (*connect.Response[api.GetPersonInfoResponse], error) {
	return nil, s.infoErr
}

// logBuffer is written by server goroutines and read by the test.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.buf.Bytes()...)
}

func captureLogs(t *testing.T) *logBuffer {
	t.Helper()
	buf := &logBuffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func lastRecord(t *testing.T, buf *logBuffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func setup(t *testing.T, stub *summaryStub, m *metrics.Metrics) apiconnect.LedgerServiceClient {
	t.Helper()
	path, handler := apiconnect.NewLedgerServiceHandler(stub, connect.WithInterceptors(
		RequestIDInterceptor(),
		LoggingInterceptor(),
		MetricsInterceptor(m),
	))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)
}

func TestRequestIDPropagation(t *testing.T) {
	stub := &summaryStub{}
	client := setup(t, stub, nil)
	logs := captureLogs(t)

	req := connect.NewRequest(&api.GetSummaryRequest{})
	req.Header().Set(RequestIDHeader, "abc-123")
	resp, err := client.GetSummary(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", stub.seenRequestID())
	assert.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))

	rec := lastRecord(t, logs)
	assert.Equal(t, "RPC ok", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "abc-123", rec["request_id"])
	assert.Equal(t, apiconnect.LedgerServiceGetSummaryProcedure, rec["procedure"])
}

func TestGeneratedRequestID(t *testing.T) {
	stub := &summaryStub{}
	client := setup(t, stub, nil)

	resp, err := client.GetSummary(context.Background(), connect.NewRequest(&api.GetSummaryRequest{}))
	require.NoError(t, err)
	assert.Len(t, stub.seenRequestID(), 36)
	assert.Equal(t, stub.seenRequestID(), resp.Header().Get(RequestIDHeader))
}

func TestRequestIDOnError(t *testing.T) {
	client := setup(t, &summaryStub{infoErr: connect.NewError(connect.CodeNotFound, errors.New("person not found"))}, nil)

	req := connect.NewRequest(&api.GetPersonInfoRequest{PersonID: "x"})
	req.Header().Set(RequestIDHeader, "req-404")
	_, err := client.GetPersonInfo(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	var ce *connect.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "req-404", ce.Meta().Get(RequestIDHeader))
}

func TestErrorLogLevels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
		code  string
	}{
		{"not found is a warning", connect.NewError(connect.CodeNotFound, errors.New("person not found")), "WARN", "not_found"},
		{"invalid argument is a warning", connect.NewError(connect.CodeInvalidArgument, errors.New("bad amount")), "WARN", "invalid_argument"},
		{"internal is an error", connect.NewError(connect.CodeInternal, errors.New("disk full")), "ERROR", "internal"},
		{"plain errors are unknown", errors.New("boom"), "ERROR", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setup(t, &summaryStub{infoErr: tt.err}, nil)
			logs := captureLogs(t)

			_, err := client.GetPersonInfo(context.Background(), connect.NewRequest(&api.GetPersonInfoRequest{PersonID: "x"}))
			require.Error(t, err)

			rec := lastRecord(t, logs)
			assert.Equal(t, "RPC error", rec["msg"])
			assert.Equal(t, tt.level, rec["level"])
			assert.Equal(t, tt.code, rec["code"])
		})
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	client := setup(t, &summaryStub{infoErr: connect.NewError(connect.CodeNotFound, errors.New("missing"))}, m)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
		require.NoError(t, err)
	}
	_, err := client.GetPersonInfo(ctx, connect.NewRequest(&api.GetPersonInfoRequest{PersonID: "x"}))
	require.Error(t, err)

	n, err := testutil.GatherAndCount(reg, "debtbook_rpc_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	expected := `
# HELP debtbook_rpc_requests_total RPC requests by procedure and result code.
# TYPE debtbook_rpc_requests_total counter
debtbook_rpc_requests_total{code="not_found",procedure="/debtbook.v1.LedgerService/GetPersonInfo"} 1
debtbook_rpc_requests_total{code="ok",procedure="/debtbook.v1.LedgerService/GetSummary"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "debtbook_rpc_requests_total"))
}
