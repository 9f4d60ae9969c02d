package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"rollcall/internal/directory/models"
	"rollcall/pkg/platform/sentinel"

	"github.com/google/uuid"
)

// PostgresStore persists employees in PostgreSQL. Cabins are stored as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed employee store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const selectEmployee = `SELECT id, name, rfid, employee_id, cabins, log_cabin, created_at, updated_at FROM employees`

func (s *PostgresStore) Create(ctx context.Context, e *models.Employee) error {
	cabins, err := marshalCabins(e.Cabins)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, rfid, employee_id, cabins, log_cabin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, e.Name, e.RFID, e.EmployeeID, cabins, e.LogCabin, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Employee, error) {
	return s.query(ctx, selectEmployee+` ORDER BY created_at, id`)
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	row := s.db.QueryRowContext(ctx, selectEmployee+` WHERE id = $1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find employee by id: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) FindByRFID(ctx context.Context, rfid string) ([]*models.Employee, error) {
	return s.query(ctx, selectEmployee+` WHERE rfid = $1 ORDER BY created_at, id`, rfid)
}

func (s *PostgresStore) Update(ctx context.Context, e *models.Employee) error {
	cabins, err := marshalCabins(e.Cabins)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE employees
		SET name = $2, rfid = $3, employee_id = $4, cabins = $5, log_cabin = $6, updated_at = $7
		WHERE id = $1
	`, e.ID, e.Name, e.RFID, e.EmployeeID, cabins, e.LogCabin, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return requireAffected(res)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return requireAffected(res)
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.Employee, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var out []*models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (*models.Employee, error) {
	var (
		e      models.Employee
		cabins []byte
	)
	if err := row.Scan(&e.ID, &e.Name, &e.RFID, &e.EmployeeID, &cabins, &e.LogCabin, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if len(cabins) > 0 {
		if err := json.Unmarshal(cabins, &e.Cabins); err != nil {
			return nil, fmt.Errorf("decode cabins: %w", err)
		}
	}
	return &e, nil
}

func marshalCabins(cabins []string) ([]byte, error) {
	if cabins == nil {
		cabins = []string{}
	}
	b, err := json.Marshal(cabins)
	if err != nil {
		return nil, fmt.Errorf("marshal cabins: %w", err)
	}
	return b, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
