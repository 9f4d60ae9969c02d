package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	atthandler "rollcall/internal/attendance/handler"
	"rollcall/internal/attendance/ingest"
	attmetrics "rollcall/internal/attendance/metrics"
	attservice "rollcall/internal/attendance/service"
	dirhandler "rollcall/internal/directory/handler"
	dirservice "rollcall/internal/directory/service"
	"rollcall/internal/platform/config"
	"rollcall/internal/platform/httpserver"
	"rollcall/internal/platform/logger"
	"rollcall/internal/platform/metrics"
	httptransport "rollcall/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rollcall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Server.LogLevel, cfg.Server.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := buildEngine(cfg.Attendance)
	if err != nil {
		return err
	}

	infra, err := openInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close(context.WithoutCancel(ctx))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.New(reg)
	attendanceMetrics := attmetrics.New(reg)

	repos := buildRepositories(infra)

	workerOpts := []ingest.Option{ingest.WithLogger(log), ingest.WithMetrics(attendanceMetrics)}
	if infra.producer != nil {
		workerOpts = append(workerOpts, ingest.WithPublisher(infra.producer))
	}
	worker := ingest.NewWorker(repos.events, cfg.Attendance.IngestBuffer, workerOpts...)

	directory := dirservice.New(repos.employees, repos.cabins, dirservice.WithLogger(log))
	attendance := attservice.New(repos.events, directory, worker,
		attservice.WithEngine(engine),
		attservice.WithDebounce(repos.guard, cfg.Attendance.SwipeDebounce),
		attservice.WithLogger(log),
		attservice.WithMetrics(attendanceMetrics),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Registry:       reg,
		Metrics:        httpMetrics,
		RequestTimeout: cfg.Server.RequestTimeout,
		Health:         infra.healthChecks(),
		Handlers: []httptransport.Registrar{
			atthandler.New(attendance, log),
			dirhandler.New(directory, log, cfg.Server.AdminAPIToken),
		},
	})
	srv := httpserver.New(cfg.Server, router)

	// The worker outlives the server so swipes accepted during shutdown are
	// still persisted.
	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(workerCtx)
	})
	g.Go(func() error {
		log.Info("starting rollcall",
			"addr", cfg.Server.Addr,
			"postgres", cfg.Database.UsesPostgres(),
			"redis", cfg.Redis.URL != "",
			"kafka", cfg.Kafka.UsesKafka(),
			"duplicate_in_policy", engine.Policy(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopWorker()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
