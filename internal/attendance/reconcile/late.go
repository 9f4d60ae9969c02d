package reconcile

import (
	"fmt"
	"time"

	"rollcall/internal/attendance/models"
)

// DefaultLateThreshold is 10:00:00 expressed as an offset from midnight.
const DefaultLateThreshold = 10 * time.Hour

// ParseThreshold reads an HH:MM:SS wall-clock cutoff.
func ParseThreshold(s string) (time.Duration, error) {
	t, err := time.Parse(models.TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid late threshold %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// ClassifyLateness labels a login against a same-day cutoff. The cutoff
// itself counts as late.
func ClassifyLateness(login *time.Time, threshold time.Duration) string {
	if login == nil {
		return models.LateAbsent
	}
	midnight := time.Date(login.Year(), login.Month(), login.Day(), 0, 0, 0, 0, login.Location())
	if login.Sub(midnight) < threshold {
		return models.LateOnTime
	}
	return models.LateLate
}
