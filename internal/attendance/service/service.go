// Package service answers attendance queries and accepts badge swipes.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rollcall/internal/attendance/metrics"
	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/reconcile"
	dirmodels "rollcall/internal/directory/models"
	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/requestcontext"
)

type EventStore interface {
	Fetch(ctx context.Context, filter models.QueryFilter) ([]models.Event, error)
}

// DirectoryResolver matches a badge and reader against the directory.
type DirectoryResolver interface {
	Resolve(ctx context.Context, rfid, cabinID string) (dirmodels.Resolution, error)
}

// DebounceGuard reports whether a swipe key may pass within window.
type DebounceGuard interface {
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
}

// Ingestor accepts events for asynchronous persistence.
type Ingestor interface {
	Submit(ev models.Event) bool
}

// Service orchestrates event fetches, reconciliation and swipe ingestion.
type Service struct {
	events    EventStore
	directory DirectoryResolver
	ingestor  Ingestor
	guard     DebounceGuard
	debounce  time.Duration
	engine    *reconcile.Engine
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithEngine(e *reconcile.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithDebounce drops repeated swipes of the same badge, reader and direction
// inside window.
func WithDebounce(guard DebounceGuard, window time.Duration) Option {
	return func(s *Service) {
		s.guard = guard
		s.debounce = window
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New constructs a Service.
func New(events EventStore, directory DirectoryResolver, ingestor Ingestor, opts ...Option) *Service {
	s := &Service{
		events:    events,
		directory: directory,
		ingestor:  ingestor,
		engine:    reconcile.NewEngine(),
		logger:    slog.Default(),
		tracer:    otel.Tracer("rollcall/attendance"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine exposes the configured reconciliation engine.
func (s *Service) Engine() *reconcile.Engine {
	return s.engine
}

// Summaries fetches the events matching filter and reconciles them. The result
// always holds at least one row.
func (s *Service) Summaries(ctx context.Context, filter models.QueryFilter) ([]models.DailySummary, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "attendance.Summaries", trace.WithAttributes(
		attribute.Int("filter.names", len(filter.Names)),
		attribute.Int("filter.tokens", len(filter.Tokens)),
		attribute.String("filter.date", filter.Date),
		attribute.String("filter.log_cabin", filter.Location),
	))
	defer span.End()

	events, err := s.events.Fetch(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch events")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load swipe events")
	}

	rows := s.engine.Reconcile(events, filter)

	var synthesized, anomalies int
	for _, row := range rows {
		if row.Synthesized {
			synthesized++
		}
		anomalies += len(row.Errors)
	}
	span.SetAttributes(
		attribute.Int("events", len(events)),
		attribute.Int("rows", len(rows)),
		attribute.Int("rows.absent", synthesized),
	)
	s.metrics.ObserveReconcile(start, len(rows)-synthesized, synthesized, anomalies)

	s.logger.DebugContext(ctx, "summaries reconciled",
		"request_id", requestcontext.RequestID(ctx),
		"events", len(events),
		"rows", len(rows),
		"absent", synthesized,
	)
	return rows, nil
}

// Swipe matches a reader swipe against the directory. Swipes at an employee's
// log cabin become events handed to the ingestor; access-only swipes are
// acknowledged without being recorded.
func (s *Service) Swipe(ctx context.Context, req *models.SwipeRequest) (models.SwipeOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "attendance.Swipe", trace.WithAttributes(
		attribute.String("cabin_id", req.CabinID),
	))
	defer span.End()
	requestID := requestcontext.RequestID(ctx)

	res, err := s.directory.Resolve(ctx, req.RFID, req.CabinID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve badge")
		return "", err
	}

	switch res.Kind {
	case dirmodels.LocationCabins:
		s.metrics.IncrementSwipe(metrics.SwipeAccess)
		return models.SwipeAccess, nil
	case dirmodels.LocationLogCabin:
	default:
		s.metrics.IncrementSwipe(metrics.SwipeUnknown)
		return "", dErrors.New(dErrors.CodeNotFound, "No data found for RFID "+req.RFID)
	}

	dir, err := models.ParseDirection(req.Direction)
	if err != nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "IN/OUT must be IN or OUT")
	}

	key := strings.Join([]string{req.RFID, req.CabinID, string(dir)}, "|")
	if !s.allow(ctx, key) {
		s.metrics.IncrementSwipe(metrics.SwipeDebounced)
		s.logger.InfoContext(ctx, "duplicate swipe ignored",
			"request_id", requestID,
			"rfid", req.RFID,
			"log_cabin", req.CabinID,
			"direction", dir,
		)
		return models.SwipeDebounced, nil
	}

	now := requestcontext.Now(ctx)
	ev := models.Event{
		Name:      res.Employee.Name,
		RFID:      res.Employee.RFID,
		Date:      now.Format(models.DateLayout),
		Time:      now.Format(models.TimeLayout),
		Direction: dir,
		Location:  req.CabinID,
	}
	if !s.ingestor.Submit(ev) {
		span.SetStatus(codes.Error, "ingest buffer full")
		return "", dErrors.New(dErrors.CodeUnavailable, "swipe could not be queued, retry")
	}
	s.metrics.IncrementSwipe(metrics.SwipeLogged)

	s.logger.InfoContext(ctx, "swipe accepted",
		"request_id", requestID,
		"rfid", ev.RFID,
		"log_cabin", ev.Location,
		"direction", ev.Direction,
	)
	return models.SwipeLogged, nil
}

// allow fails open: a guard outage must not block attendance.
func (s *Service) allow(ctx context.Context, key string) bool {
	if s.guard == nil {
		return true
	}
	ok, err := s.guard.Allow(ctx, key, s.debounce)
	if err != nil {
		s.logger.WarnContext(ctx, "debounce check failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return true
	}
	return ok
}
