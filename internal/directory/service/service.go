// Package service manages the employee and cabin directory and answers badge
// lookups for swipe ingestion.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"rollcall/internal/directory/models"
	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/platform/sentinel"
	"rollcall/pkg/requestcontext"
)

type EmployeeStore interface {
	Create(ctx context.Context, e *models.Employee) error
	List(ctx context.Context) ([]*models.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	FindByRFID(ctx context.Context, rfid string) ([]*models.Employee, error)
	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CabinStore interface {
	Create(ctx context.Context, c *models.Cabin) error
	List(ctx context.Context) ([]*models.Cabin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Cabin, error)
	Update(ctx context.Context, c *models.Cabin) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service orchestrates directory management.
type Service struct {
	employees EmployeeStore
	cabins    CabinStore
	logger    *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs a Service.
func New(employees EmployeeStore, cabins CabinStore, opts ...Option) *Service {
	s := &Service{employees: employees, cabins: cabins, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateEmployee(ctx context.Context, req *models.EmployeeRequest) (*models.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	e := &models.Employee{
		ID:         uuid.New(),
		Name:       req.Name,
		RFID:       req.RFID,
		EmployeeID: req.EmployeeID,
		Cabins:     req.Cabins,
		LogCabin:   req.LogCabin,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, translate(err, "employee", "failed to create employee")
	}
	s.logger.InfoContext(ctx, "employee created",
		"request_id", requestcontext.RequestID(ctx),
		"employee_id", e.ID,
		"rfid", e.RFID,
	)
	return e, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list employees")
	}
	return list, nil
}

// UpdateEmployee replaces the mutable fields of an existing employee.
func (s *Service) UpdateEmployee(ctx context.Context, id uuid.UUID, req *models.EmployeeRequest) (*models.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "employee", "failed to load employee")
	}
	e.Name = req.Name
	e.RFID = req.RFID
	e.EmployeeID = req.EmployeeID
	e.Cabins = req.Cabins
	e.LogCabin = req.LogCabin
	e.UpdatedAt = requestcontext.Now(ctx)

	if err := s.employees.Update(ctx, e); err != nil {
		return nil, translate(err, "employee", "failed to update employee")
	}
	return e, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return translate(err, "employee", "failed to delete employee")
	}
	s.logger.InfoContext(ctx, "employee deleted",
		"request_id", requestcontext.RequestID(ctx),
		"employee_id", id,
	)
	return nil
}

func (s *Service) CreateCabin(ctx context.Context, req *models.CabinRequest) (*models.Cabin, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	c := &models.Cabin{
		ID:        uuid.New(),
		CabinID:   req.CabinID,
		Building:  req.Building,
		Floor:     req.Floor,
		Door:      req.Door,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cabins.Create(ctx, c); err != nil {
		return nil, translate(err, "cabin", "failed to create cabin")
	}
	return c, nil
}

func (s *Service) ListCabins(ctx context.Context) ([]*models.Cabin, error) {
	list, err := s.cabins.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cabins")
	}
	return list, nil
}

func (s *Service) UpdateCabin(ctx context.Context, id uuid.UUID, req *models.CabinRequest) (*models.Cabin, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.cabins.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "cabin", "failed to load cabin")
	}
	c.CabinID = req.CabinID
	c.Building = req.Building
	c.Floor = req.Floor
	c.Door = req.Door
	c.UpdatedAt = requestcontext.Now(ctx)

	if err := s.cabins.Update(ctx, c); err != nil {
		return nil, translate(err, "cabin", "failed to update cabin")
	}
	return c, nil
}

func (s *Service) DeleteCabin(ctx context.Context, id uuid.UUID) error {
	if err := s.cabins.Delete(ctx, id); err != nil {
		return translate(err, "cabin", "failed to delete cabin")
	}
	return nil
}

// Resolve finds the first employee holding rfid who is registered at cabinID.
// Access cabins take precedence over the log cabin when both match.
func (s *Service) Resolve(ctx context.Context, rfid, cabinID string) (models.Resolution, error) {
	candidates, err := s.employees.FindByRFID(ctx, rfid)
	if err != nil {
		return models.Resolution{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up badge")
	}
	for _, e := range candidates {
		switch {
		case e.HasCabin(cabinID):
			return models.Resolution{Kind: models.LocationCabins, Employee: e}, nil
		case e.LogCabin == cabinID:
			return models.Resolution{Kind: models.LocationLogCabin, Employee: e}, nil
		}
	}
	return models.Resolution{Kind: models.LocationNone}, nil
}

func translate(err error, entity, message string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, entity+" already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, message)
	}
}
