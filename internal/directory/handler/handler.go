package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rollcall/internal/directory/models"
	"rollcall/internal/platform/middleware"
	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/platform/httputil"
	"rollcall/pkg/requestcontext"
)

// Service defines the directory operations exposed over HTTP.
type Service interface {
	CreateEmployee(ctx context.Context, req *models.EmployeeRequest) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, req *models.EmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	CreateCabin(ctx context.Context, req *models.CabinRequest) (*models.Cabin, error)
	ListCabins(ctx context.Context) ([]*models.Cabin, error)
	UpdateCabin(ctx context.Context, id uuid.UUID, req *models.CabinRequest) (*models.Cabin, error)
	DeleteCabin(ctx context.Context, id uuid.UUID) error
}

// Handler wires directory endpoints to the directory service.
type Handler struct {
	service    Service
	logger     *slog.Logger
	adminToken string
}

// New constructs a directory handler. An empty adminToken leaves mutations open.
func New(service Service, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		adminToken: adminToken,
	}
}

// Register mounts directory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/list", h.HandleListEmployees)
	r.Get("/list_cabin", h.HandleListCabins)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(h.adminToken, h.logger))
		r.Post("/submit", h.HandleCreateEmployee)
		r.Put("/update/{id}", h.HandleUpdateEmployee)
		r.Delete("/delete/{id}", h.HandleDeleteEmployee)
		r.Post("/add_cabin", h.HandleCreateCabin)
		r.Put("/update_cabin/{id}", h.HandleUpdateCabin)
		r.Delete("/delete_cabin/{id}", h.HandleDeleteCabin)
	})
}

func (h *Handler) HandleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.EmployeeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	e, err := h.service.CreateEmployee(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create employee failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created(e.ID))
}

func (h *Handler) HandleListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.service.ListEmployees(ctx)
	if err != nil {
		h.fail(ctx, w, "list employees failed", err)
		return
	}
	if list == nil {
		list = []*models.Employee{}
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) HandleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.EmployeeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if _, err := h.service.UpdateEmployee(ctx, id, req); err != nil {
		h.fail(ctx, w, "update employee failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, success("Record successfully updated"))
}

func (h *Handler) HandleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteEmployee(ctx, id); err != nil {
		h.fail(ctx, w, "delete employee failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, success("Record deleted"))
}

func (h *Handler) HandleCreateCabin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CabinRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c, err := h.service.CreateCabin(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create cabin failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created(c.ID))
}

func (h *Handler) HandleListCabins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.service.ListCabins(ctx)
	if err != nil {
		h.fail(ctx, w, "list cabins failed", err)
		return
	}
	if list == nil {
		list = []*models.Cabin{}
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) HandleUpdateCabin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.CabinRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if _, err := h.service.UpdateCabin(ctx, id, req); err != nil {
		h.fail(ctx, w, "update cabin failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, success("Record updated"))
}

func (h *Handler) HandleDeleteCabin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteCabin(ctx, id); err != nil {
		h.fail(ctx, w, "delete cabin failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, success("Record deleted"))
}

// fail logs at Warn for client errors and Error otherwise, then writes err.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}

// parseID tolerates ids pasted with surrounding quotes or a trailing newline.
func parseID(raw string) (uuid.UUID, error) {
	cleaned := strings.NewReplacer(`'`, "", `"`, "", "\n", "").Replace(strings.TrimSpace(raw))
	id, err := uuid.Parse(cleaned)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid id")
	}
	return id, nil
}
