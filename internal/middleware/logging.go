package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// levelFor picks the log level of a finished call. Caller mistakes are
// warnings; anything that points at the server or its store is an error.
func levelFor(err error) slog.Level {
	if err == nil {
		return slog.LevelDebug
	}
	switch connect.CodeOf(err) {
	case connect.CodeInvalidArgument,
		connect.CodeNotFound,
		connect.CodeAlreadyExists,
		connect.CodeFailedPrecondition,
		connect.CodeCanceled,
		connect.CodeDeadlineExceeded:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// LoggingInterceptor logs one line per RPC with the procedure, request ID,
// duration and, for failures, the Connect code and message. Successful calls
// are logged at debug level.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("request_id", GetRequestID(ctx)),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			msg := "RPC ok"
			if err != nil {
				msg = "RPC error"
				attrs = append(attrs,
					slog.String("code", connect.CodeOf(err).String()),
					slog.String("error", err.Error()),
				)
			}
			slog.LogAttrs(ctx, levelFor(err), msg, attrs...)

			return resp, err
		}
	}
}
