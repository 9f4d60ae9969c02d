package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"rollcall/internal/attendance/ingest"
	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/reconcile"
	attservice "rollcall/internal/attendance/service"
	"rollcall/internal/attendance/store/debounce"
	"rollcall/internal/attendance/store/event"
	dirservice "rollcall/internal/directory/service"
	"rollcall/internal/directory/store/cabin"
	"rollcall/internal/directory/store/employee"
	"rollcall/internal/platform/config"
	"rollcall/internal/platform/kafka"
	"rollcall/internal/platform/postgres"
	"rollcall/internal/platform/redis"
	httptransport "rollcall/internal/transport/http"
)

const topicTimeout = 10 * time.Second

// infra holds the optional external connections. Nil fields mean the
// in-memory implementation is used instead.
type infra struct {
	db       *sql.DB
	redis    *redis.Client
	producer *kafka.Producer
	logger   *slog.Logger
}

func openInfra(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{logger: log}

	if cfg.Database.UsesPostgres() {
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		in.db = db
		if err := postgres.Migrate(ctx, db); err != nil {
			in.Close(ctx)
			return nil, err
		}
	}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.Close(ctx)
		return nil, err
	}
	in.redis = rc

	producer, err := kafka.NewProducer(cfg.Kafka, log)
	if err != nil {
		in.Close(ctx)
		return nil, err
	}
	if producer != nil {
		topicCtx, cancel := context.WithTimeout(ctx, topicTimeout)
		defer cancel()
		if err := producer.EnsureTopic(topicCtx, cfg.Kafka.Partitions, cfg.Kafka.Replicas); err != nil {
			log.Warn("could not ensure swipe topic", "topic", cfg.Kafka.SwipeTopic, "error", err)
		}
		in.producer = producer
	}
	return in, nil
}

func (in *infra) Close(ctx context.Context) {
	if in.producer != nil {
		if err := in.producer.Close(ctx); err != nil {
			in.logger.Warn("kafka close failed", "error", err)
		}
	}
	if in.redis != nil {
		if err := in.redis.Close(); err != nil {
			in.logger.Warn("redis close failed", "error", err)
		}
	}
	if in.db != nil {
		if err := in.db.Close(); err != nil {
			in.logger.Warn("postgres close failed", "error", err)
		}
	}
}

func (in *infra) healthChecks() map[string]httptransport.HealthCheck {
	checks := map[string]httptransport.HealthCheck{}
	if in.db != nil {
		checks["postgres"] = in.db.PingContext
	}
	if in.redis != nil {
		checks["redis"] = in.redis.Health
	}
	if in.producer != nil {
		checks["kafka"] = in.producer.Health
	}
	return checks
}

// repositories is chosen once at startup. Events need both halves of the
// store: the worker appends and the attendance service fetches.
type repositories struct {
	events    eventStore
	employees dirservice.EmployeeStore
	cabins    dirservice.CabinStore
	guard     attservice.DebounceGuard
}

type eventStore interface {
	ingest.Store
	attservice.EventStore
}

func buildRepositories(in *infra) repositories {
	var repos repositories
	if in.db != nil {
		repos.events = event.NewPostgres(in.db)
		repos.employees = employee.NewPostgres(in.db)
		repos.cabins = cabin.NewPostgres(in.db)
	} else {
		repos.events = event.NewInMemoryStore()
		repos.employees = employee.NewInMemoryStore()
		repos.cabins = cabin.NewInMemoryStore()
	}
	if in.redis != nil {
		repos.guard = debounce.NewRedisGuard(in.redis.Client)
	} else {
		repos.guard = debounce.NewInMemoryGuard()
	}
	return repos
}

func buildEngine(cfg config.AttendanceConfig) (*reconcile.Engine, error) {
	policy, err := models.ParseDuplicateInPolicy(cfg.DuplicateInPolicy)
	if err != nil {
		return nil, fmt.Errorf("DUPLICATE_IN_POLICY: %w", err)
	}
	threshold, err := reconcile.ParseThreshold(cfg.LateThreshold)
	if err != nil {
		return nil, fmt.Errorf("LATE_THRESHOLD: %w", err)
	}
	return reconcile.NewEngine(
		reconcile.WithDuplicateInPolicy(policy),
		reconcile.WithLateThreshold(threshold),
		reconcile.WithLocationTracking(cfg.TrackLocation),
		reconcile.WithLatenessTracking(cfg.TrackLateness),
	), nil
}
