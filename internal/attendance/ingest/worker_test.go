package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"rollcall/internal/attendance/metrics"
	"rollcall/internal/attendance/models"
	"rollcall/pkg/platform/circuit"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type fakeStore struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (f *fakeStore) Append(_ context.Context, ev models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type fakePublisher struct {
	mu   sync.Mutex
	keys []string
	vals [][]byte
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, key, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, string(key))
	f.vals = append(f.vals, value)
	return f.err
}

type WorkerSuite struct {
	suite.Suite
	store     *fakeStore
	publisher *fakePublisher
	metrics   *metrics.Metrics
	worker    *Worker
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerSuite))
}

func (s *WorkerSuite) SetupTest() {
	s.store = &fakeStore{}
	s.publisher = &fakePublisher{}
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.worker = NewWorker(s.store, 2,
		WithPublisher(s.publisher),
		WithMetrics(s.metrics),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func swipe(rfid string) models.Event {
	return models.Event{Name: "Alice", RFID: rfid, Date: "2024-01-01", Time: "09:00:00", Direction: models.DirectionIn, Location: "LC-1"}
}

func (s *WorkerSuite) TestPersistThenPublish() {
	s.worker.process(context.Background(), swipe("T1"))

	s.Equal(1, s.store.len())
	s.Require().Len(s.publisher.keys, 1)
	s.Equal("T1", s.publisher.keys[0])

	var published models.Event
	s.Require().NoError(json.Unmarshal(s.publisher.vals[0], &published))
	s.Equal(models.DirectionIn, published.Direction)
	s.Equal("LC-1", published.Location)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.IngestPersisted))
}

func (s *WorkerSuite) TestAppendFailureSkipsPublish() {
	s.store.err = errors.New("db down")
	s.worker.process(context.Background(), swipe("T1"))

	s.Empty(s.publisher.keys)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.IngestFailures.WithLabelValues(metrics.StageAppend)))
}

func (s *WorkerSuite) TestPublishFailureIsCounted() {
	s.publisher.err = errors.New("broker down")
	s.worker.process(context.Background(), swipe("T1"))

	s.Equal(1, s.store.len())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.IngestFailures.WithLabelValues(metrics.StagePublish)))
}

func (s *WorkerSuite) TestOpenBreakerSuspendsPublishing() {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	breaker := circuit.New("test",
		circuit.WithFailureThreshold(1),
		circuit.WithCooldown(time.Minute),
		circuit.WithClock(func() time.Time { return now }),
	)
	w := NewWorker(s.store, 4,
		WithPublisher(s.publisher),
		WithPublishBreaker(breaker),
		WithMetrics(s.metrics),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.publisher.err = errors.New("broker down")

	w.process(context.Background(), swipe("T1"))
	w.process(context.Background(), swipe("T2"))

	s.Equal(2, s.store.len(), "persistence continues")
	s.Len(s.publisher.keys, 1, "second publish skipped")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.IngestFailures.WithLabelValues(metrics.StageSuspended)))

	now = now.Add(time.Minute)
	s.publisher.err = nil
	w.process(context.Background(), swipe("T3"))

	s.Equal([]string{"T1", "T3"}, s.publisher.keys)
	s.False(breaker.IsOpen())
}

func (s *WorkerSuite) TestSubmitDropsWhenFull() {
	s.True(s.worker.Submit(swipe("T1")))
	s.True(s.worker.Submit(swipe("T2")))
	s.False(s.worker.Submit(swipe("T3")))

	s.Equal(2, s.worker.Pending())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.IngestFailures.WithLabelValues(metrics.StageDropped)))
}

func (s *WorkerSuite) TestRunDrainsOnShutdown() {
	s.True(s.worker.Submit(swipe("T1")))
	s.True(s.worker.Submit(swipe("T2")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Require().NoError(s.worker.Run(ctx))

	s.Equal(2, s.store.len())
	s.Equal(0, s.worker.Pending())
}

func (s *WorkerSuite) TestRunProcessesLiveEvents() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.worker.Run(ctx) }()

	s.True(s.worker.Submit(swipe("T1")))
	s.Eventually(func() bool { return s.store.len() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	s.NoError(<-done)
}

func (s *WorkerSuite) TestWithoutPublisher() {
	w := NewWorker(s.store, 1, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	w.process(context.Background(), swipe("T9"))
	s.Equal(1, s.store.len())
	s.Empty(s.publisher.keys)
}
