package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rollcall/internal/platform/metrics"
	"rollcall/internal/platform/middleware"
	"rollcall/pkg/platform/httputil"
)

const healthTimeout = 2 * time.Second

// HealthCheck probes one backing dependency.
type HealthCheck func(ctx context.Context) error

// Registrar is implemented by every feature handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps bundles what the router needs. Nil Registry disables /metrics.
type Deps struct {
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	Health         map[string]HealthCheck
	Handlers       []Registrar
	Now            func() time.Time
}

// NewRouter wires the shared middleware chain, the operational endpoints and
// every feature handler.
func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.LatencyMiddleware(deps.Metrics))
	if deps.RequestTimeout > 0 {
		r.Use(middleware.Timeout(deps.RequestTimeout))
	}

	for _, h := range deps.Handlers {
		h.Register(r)
	}

	r.Get("/healthz", healthHandler(deps.Health))
	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}
	r.Get("/", indexHandler(r, deps.Now))
	return r
}

type indexResponse struct {
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
	Timestamp string   `json:"timestamp"`
}

// indexHandler lists every registered route as "METHOD /path".
func indexHandler(routes chi.Routes, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var endpoints []string
		_ = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			endpoints = append(endpoints, method+" "+route)
			return nil
		})
		sort.Strings(endpoints)
		httputil.WriteJSON(w, http.StatusOK, indexResponse{
			Service:   "rollcall",
			Endpoints: endpoints,
			Timestamp: now().UTC().Format(time.RFC3339),
		})
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
