package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/reconcile"
	"rollcall/internal/platform/middleware"
	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/platform/httputil"
	"rollcall/pkg/requestcontext"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Service defines the attendance operations exposed over HTTP.
type Service interface {
	Summaries(ctx context.Context, filter models.QueryFilter) ([]models.DailySummary, error)
	Export(ctx context.Context, filter models.QueryFilter) ([]byte, error)
	Swipe(ctx context.Context, req *models.SwipeRequest) (models.SwipeOutcome, error)
}

// Handler wires attendance endpoints to the attendance service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an attendance handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts attendance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/logs", h.HandleLogs)
	r.Get("/logs/export", h.HandleExport)
	r.With(middleware.RequireJSON).Post("/api/submit", h.HandleSwipe)
}

// HandleLogs handles GET /logs.
func (h *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	filter := filterFromQuery(r.URL.Query())
	rows, err := h.service.Summaries(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "summary query failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "summaries served",
		"request_id", requestID,
		"rows", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, rows)
}

// HandleExport handles GET /logs/export.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	filter := filterFromQuery(r.URL.Query())
	b, err := h.service.Export(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "summary export failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(filter)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// HandleSwipe handles POST /api/submit.
func (h *Handler) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.SwipeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcome, err := h.service.Swipe(ctx, req)
	if err != nil {
		level := slog.LevelWarn
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			level = slog.LevelError
		}
		h.logger.Log(ctx, level, "swipe rejected",
			"request_id", requestID,
			"rfid", req.RFID,
			"cabin_id", req.CabinID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "swipe handled",
		"request_id", requestID,
		"outcome", outcome,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// filterFromQuery hands a single value to the normalizer as a string so that
// comma-delimited lists are split, and repeated parameters as a list.
func filterFromQuery(q url.Values) models.QueryFilter {
	return reconcile.NewFilter(queryValue(q, "name"), queryValue(q, "rfid"), q.Get("date"), q.Get("log_cabin"))
}

func queryValue(q url.Values, key string) any {
	switch values := q[key]; len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	default:
		return values
	}
}

func exportFilename(f models.QueryFilter) string {
	if _, err := time.Parse(models.DateLayout, f.Date); err == nil {
		return "attendance-" + f.Date + ".xlsx"
	}
	return "attendance.xlsx"
}
