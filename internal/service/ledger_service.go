package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/debtbook/internal/calculator"
	"github.com/mmynk/debtbook/internal/events"
	"github.com/mmynk/debtbook/internal/interchange"
	"github.com/mmynk/debtbook/internal/metrics"
	"github.com/mmynk/debtbook/internal/models"
	"github.com/mmynk/debtbook/internal/storage"
	"github.com/mmynk/debtbook/pkg/api/apiconnect"
)

// LedgerService implements the Connect LedgerService.
//
// Every mutation loads the whole ledger, derives a new value and saves it. The
// mutex serialises those steps so concurrent calls never lose an update; reads
// go straight to the store.
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler

	mu         sync.Mutex
	store      storage.Store
	publisher  events.Publisher
	metrics    *metrics.Metrics
	validate   *validator.Validate
	now        func() time.Time
	monthsBack int
	topN       int
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithClock replaces time.Now, which decides "today" for new records and the
// default as-of date of overdue checks.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

// WithPublisher sends change events to p.
func WithPublisher(p events.Publisher) Option {
	return func(s *LedgerService) { s.publisher = p }
}

// WithMetrics records ledger gauges on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithDashboardDefaults sets the series length and ranking size used when a
// dashboard request leaves them out.
func WithDashboardDefaults(monthsBack, topN int) Option {
	return func(s *LedgerService) {
		s.monthsBack = monthsBack
		s.topN = topN
	}
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:      store,
		publisher:  events.Nop{},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		now:        time.Now,
		monthsBack: calculator.DefaultMonthsBack,
		topN:       calculator.DefaultTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LedgerService) today() models.Date {
	return models.Today(s.now())
}

// load reads the ledger and refreshes the ledger gauges.
func (s *LedgerService) load(ctx context.Context) (models.Ledger, error) {
	l, err := s.store.LoadLedger(ctx)
	if err != nil {
		return models.Ledger{}, err
	}
	s.metrics.SetSummary(calculator.Summarize(l))
	return l, nil
}

// commit saves l and refreshes the ledger gauges.
func (s *LedgerService) commit(ctx context.Context, l models.Ledger) error {
	if err := s.store.SaveLedger(ctx, l); err != nil {
		return err
	}
	s.metrics.SetSummary(calculator.Summarize(l))
	return nil
}

// publish announces a saved change. Failures are logged only: the ledger is
// already saved and the caller's request succeeded.
func (s *LedgerService) publish(ctx context.Context, e events.Event) {
	e.At = s.now().UTC()
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Warn("Failed to publish ledger event", "type", e.Type, "error", err)
	}
}

// check runs struct validation on a request message.
func (s *LedgerService) check(msg any) error {
	if err := s.validate.Struct(msg); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &connectErr):
		return err
	case models.IsValidation(err),
		errors.Is(err, interchange.ErrMalformedImport),
		errors.As(err, &validationErrs):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case models.IsNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
