// Package reconcile turns raw IN/OUT swipes into daily attendance summaries.
//
// The engine is pure: it performs no I/O and keeps no state between calls, so
// a single Engine can serve concurrent requests.
package reconcile

import (
	"time"

	"rollcall/internal/attendance/models"
)

// Engine reconciles event batches into DailySummary rows.
type Engine struct {
	policy        models.DuplicateInPolicy
	lateThreshold time.Duration
	trackLocation bool
	trackLateness bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithDuplicateInPolicy sets how an IN during an open session is handled.
func WithDuplicateInPolicy(p models.DuplicateInPolicy) Option {
	return func(e *Engine) {
		if p != "" {
			e.policy = p
		}
	}
}

// WithLateThreshold overrides the 10:00:00 lateness cutoff.
func WithLateThreshold(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.lateThreshold = d
		}
	}
}

// WithLocationTracking adds the log_cabin field to every row.
func WithLocationTracking(enabled bool) Option {
	return func(e *Engine) { e.trackLocation = enabled }
}

// WithLatenessTracking adds the late_status field to every row.
func WithLatenessTracking(enabled bool) Option {
	return func(e *Engine) { e.trackLateness = enabled }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy:        models.KeepFirstOpen,
		lateThreshold: DefaultLateThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the duplicate IN policy in effect.
func (e *Engine) Policy() models.DuplicateInPolicy { return e.policy }

// TracksLocation reports whether rows carry log_cabin.
func (e *Engine) TracksLocation() bool { return e.trackLocation }

// TracksLateness reports whether rows carry late_status.
func (e *Engine) TracksLateness() bool { return e.trackLateness }

// Reconcile produces one row per (name, rfid, date) bucket in first-seen order,
// followed by absence rows for requested identities that had no events.
func (e *Engine) Reconcile(events []models.Event, filter models.QueryFilter) []models.DailySummary {
	seen := newPresence()
	var rows []models.DailySummary

	if len(events) > 0 {
		for _, b := range Group(events) {
			rows = append(rows, e.summarize(b, filter))
			seen.add(b.Key.Name, b.Key.RFID)
		}
	}

	for _, id := range absences(filter, seen, len(rows)) {
		rows = append(rows, e.absentRow(id, filter))
	}
	return rows
}

func (e *Engine) summarize(b Bucket, filter models.QueryFilter) models.DailySummary {
	res := Sequence(b.Key.Date, b.Events, e.policy)
	d := ComputeDurations(res)

	row := models.DailySummary{
		Name:           b.Key.Name,
		RFID:           b.Key.RFID,
		Date:           b.Key.Date,
		LoginTime:      clock(res.Login),
		LogoutTime:     clock(res.Logout),
		EffectiveLogin: FormatDuration(d.Effective),
		Errors:         models.Anomalies(res.Anomalies),
	}
	if d.HasSpan {
		row.TotalLogin = FormatDuration(d.Total)
		row.BreakHours = FormatDuration(d.Break)
	}
	if e.trackLocation {
		loc := filter.Location
		if loc == "" && len(b.Events) > 0 {
			loc = b.Events[0].Location
		}
		row.Location = &loc
	}
	if e.trackLateness {
		label := ClassifyLateness(res.Login, e.lateThreshold)
		row.LateStatus = &label
	}
	return row
}

func (e *Engine) absentRow(id identity, filter models.QueryFilter) models.DailySummary {
	row := models.DailySummary{
		Name:        id.name,
		RFID:        id.token,
		Date:        filter.Date,
		Synthesized: true,
	}
	if e.trackLocation {
		loc := filter.Location
		row.Location = &loc
	}
	if e.trackLateness {
		label := models.LateAbsent
		row.LateStatus = &label
	}
	return row
}

func clock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(models.TimeLayout)
}
