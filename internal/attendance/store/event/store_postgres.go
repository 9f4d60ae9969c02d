package event

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"rollcall/internal/attendance/models"

	"github.com/google/uuid"
)

// PostgresStore persists events in the swipe_events table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed event store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, ev models.Event) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO swipe_events (id, name, rfid, date, time, direction, log_cabin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ev.ID, ev.Name, ev.RFID, ev.Date, ev.Time, string(ev.Direction), ev.Location)
	if err != nil {
		return fmt.Errorf("append swipe event: %w", err)
	}
	return nil
}

// Fetch returns matching events ordered by insertion time.
func (s *PostgresStore) Fetch(ctx context.Context, filter models.QueryFilter) ([]models.Event, error) {
	query, args := buildFetchQuery(filter)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch swipe events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var (
			ev  models.Event
			dir string
		)
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.RFID, &ev.Date, &ev.Time, &dir, &ev.Location); err != nil {
			return nil, fmt.Errorf("scan swipe event: %w", err)
		}
		ev.Direction = models.Direction(dir)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate swipe events: %w", err)
	}
	return events, nil
}

func buildFetchQuery(f models.QueryFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	in := func(column string, values []string) {
		placeholders := make([]string, len(values))
		for i, v := range values {
			args = append(args, v)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")))
	}
	eq := func(column, value string) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if len(f.Names) > 0 {
		in("name", f.Names)
	}
	if len(f.Tokens) > 0 {
		in("rfid", f.Tokens)
	}
	if f.Date != "" {
		eq("date", f.Date)
	}
	if f.Location != "" {
		eq("log_cabin", f.Location)
	}

	query := "SELECT id, name, rfid, date, time, direction, log_cabin FROM swipe_events"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	return query + " ORDER BY received_at, id", args
}
