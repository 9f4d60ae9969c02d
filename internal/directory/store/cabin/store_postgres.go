package cabin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rollcall/internal/directory/models"
	"rollcall/pkg/platform/sentinel"

	"github.com/google/uuid"
)

// PostgresStore persists cabins in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed cabin store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const selectCabin = `SELECT id, cabin_id, building, floor, door, created_at, updated_at FROM cabins`

func (s *PostgresStore) Create(ctx context.Context, c *models.Cabin) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cabins (id, cabin_id, building, floor, door, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID, c.CabinID, c.Building, c.Floor, c.Door, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create cabin: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Cabin, error) {
	rows, err := s.db.QueryContext(ctx, selectCabin+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list cabins: %w", err)
	}
	defer rows.Close()

	var out []*models.Cabin
	for rows.Next() {
		var c models.Cabin
		if err := rows.Scan(&c.ID, &c.CabinID, &c.Building, &c.Floor, &c.Door, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cabin: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cabins: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Cabin, error) {
	var c models.Cabin
	err := s.db.QueryRowContext(ctx, selectCabin+` WHERE id = $1`, id).
		Scan(&c.ID, &c.CabinID, &c.Building, &c.Floor, &c.Door, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find cabin by id: %w", err)
	}
	return &c, nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Cabin) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE cabins SET cabin_id = $2, building = $3, floor = $4, door = $5, updated_at = $6
		WHERE id = $1
	`, c.ID, c.CabinID, c.Building, c.Floor, c.Door, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cabin: %w", err)
	}
	return requireAffected(res)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cabins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cabin: %w", err)
	}
	return requireAffected(res)
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
