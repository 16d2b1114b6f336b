package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/debtbook/internal/middleware"
	"github.com/mmynk/debtbook/internal/service"
	"github.com/mmynk/debtbook/pkg/api/apiconnect"
)

// Handler serves the Connect API plus the plain HTTP endpoints:
//
//	/healthz                liveness
//	/metrics                Prometheus scrape (when enabled)
//	/export/debtbook.json   ledger download
//	/export/debtbook.csv    transaction table download
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	interceptors := []connect.Interceptor{
		middleware.RequestIDInterceptor(),
		middleware.LoggingInterceptor(),
	}
	if a.Metrics != nil {
		interceptors = append(interceptors, middleware.MetricsInterceptor(a.Metrics))
	}
	path, handler := apiconnect.NewLedgerServiceHandler(a.Service, connect.WithInterceptors(interceptors...))
	mux.Handle(path, handler)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	if a.Metrics != nil {
		mux.Handle("GET /metrics", a.Metrics.Handler())
	}
	mux.HandleFunc("GET /export/debtbook.json", a.exportHandler(service.FormatJSON, "application/json"))
	mux.HandleFunc("GET /export/debtbook.csv", a.exportHandler(service.FormatCSV, "text/csv; charset=utf-8"))

	return loggingMiddleware(corsMiddleware(mux))
}

func (a *App) exportHandler(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=debtbook.%s", format))
		if err := a.Service.WriteExport(r.Context(), w, format); err != nil {
			slog.Error("Export failed", "format", format, "error", err)
			http.Error(w, "export failed", http.StatusInternalServerError)
		}
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
