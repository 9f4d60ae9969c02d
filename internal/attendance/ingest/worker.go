// Package ingest persists accepted swipes off the request path.
package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rollcall/internal/attendance/metrics"
	"rollcall/internal/attendance/models"
	"rollcall/pkg/platform/circuit"
)

// Store persists events.
type Store interface {
	Append(ctx context.Context, ev models.Event) error
}

// Publisher fans accepted events out to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// drainTimeout bounds how long shutdown waits for buffered events.
const drainTimeout = 5 * time.Second

// Worker consumes swipes from a bounded inbox, appends them to the store and
// then publishes them. Failures are logged and counted; callers never see them.
type Worker struct {
	store     Store
	publisher Publisher
	breaker   *circuit.Breaker
	inbox     chan models.Event
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures a Worker.
type Option func(*Worker)

func WithPublisher(p Publisher) Option {
	return func(w *Worker) { w.publisher = p }
}

// WithPublishBreaker replaces the default breaker guarding the publisher.
func WithPublishBreaker(b *circuit.Breaker) Option {
	return func(w *Worker) { w.breaker = b }
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) { w.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) { w.metrics = m }
}

func NewWorker(store Store, buffer int, opts ...Option) *Worker {
	if buffer <= 0 {
		buffer = 1
	}
	w := &Worker{
		store:  store,
		inbox:  make(chan models.Event, buffer),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.breaker == nil {
		w.breaker = circuit.New("swipe-publish")
	}
	return w
}

// Submit enqueues ev without blocking. It returns false when the inbox is full
// and the event was dropped.
func (w *Worker) Submit(ev models.Event) bool {
	select {
	case w.inbox <- ev:
		return true
	default:
		w.metrics.IncrementIngestFailure(metrics.StageDropped)
		w.logger.Error("swipe dropped, ingest buffer full",
			"rfid", ev.RFID,
			"log_cabin", ev.Location,
			"direction", ev.Direction,
		)
		return false
	}
}

// Pending returns the number of buffered events.
func (w *Worker) Pending() int {
	return len(w.inbox)
}

// Run processes events until ctx is cancelled, then drains what is buffered.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain(ctx)
			return nil
		case ev := <-w.inbox:
			w.process(ctx, ev)
		}
	}
}

func (w *Worker) drain(parent context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), drainTimeout)
	defer cancel()
	for {
		select {
		case ev := <-w.inbox:
			w.process(ctx, ev)
		default:
			return
		}
	}
}

func (w *Worker) process(ctx context.Context, ev models.Event) {
	if err := w.store.Append(ctx, ev); err != nil {
		w.metrics.IncrementIngestFailure(metrics.StageAppend)
		w.logger.ErrorContext(ctx, "failed to persist swipe",
			"error", err,
			"rfid", ev.RFID,
			"date", ev.Date,
			"time", ev.Time,
		)
		return
	}
	w.metrics.IncrementPersisted()

	if w.publisher == nil {
		return
	}
	w.publish(ctx, ev)
}

// publish skips the broker while the breaker is open so an outage does not
// slow persistence down.
func (w *Worker) publish(ctx context.Context, ev models.Event) {
	if !w.breaker.Allow() {
		w.metrics.IncrementIngestFailure(metrics.StageSuspended)
		return
	}
	value, err := json.Marshal(ev)
	if err != nil {
		w.metrics.IncrementIngestFailure(metrics.StagePublish)
		w.logger.ErrorContext(ctx, "failed to encode swipe", "error", err)
		return
	}
	if err := w.publisher.Publish(ctx, []byte(ev.RFID), value); err != nil {
		w.metrics.IncrementIngestFailure(metrics.StagePublish)
		w.logger.WarnContext(ctx, "failed to publish swipe",
			"error", err,
			"rfid", ev.RFID,
		)
		if _, change := w.breaker.RecordFailure(); change.Opened {
			w.logger.ErrorContext(ctx, "swipe publishing suspended", "breaker", w.breaker.Name())
		}
		return
	}
	if _, change := w.breaker.RecordSuccess(); change.Closed {
		w.logger.InfoContext(ctx, "swipe publishing resumed", "breaker", w.breaker.Name())
	}
}
