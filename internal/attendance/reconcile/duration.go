package reconcile

import (
	"fmt"

	"rollcall/internal/attendance/models"
)

// Durations holds the second counts behind a summary's duration fields.
// HasSpan is false when login or logout is missing.
type Durations struct {
	Effective int64
	Total     int64
	Break     int64
	HasSpan   bool
}

// ComputeDurations derives effective, total and break seconds from a sequence.
// Break is clamped at zero.
func ComputeDurations(res models.SequenceResult) Durations {
	d := Durations{Effective: res.WorkedSeconds}
	if res.Login == nil || res.Logout == nil {
		return d
	}
	d.HasSpan = true
	d.Total = int64(res.Logout.Sub(*res.Login).Seconds())
	d.Break = max(d.Total-d.Effective, 0)
	return d
}

// FormatDuration renders seconds as HH:MM:SS. Hours are not folded into days.
// Zero and negative values render as the empty string.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return ""
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
