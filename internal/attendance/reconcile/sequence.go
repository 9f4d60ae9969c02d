package reconcile

import (
	"fmt"
	"time"

	"rollcall/internal/attendance/models"
)

const timestampLayout = models.DateLayout + " " + models.TimeLayout

// parseTimestamp reads date and time as naive wall clock. UTC is used only to
// keep arithmetic free of DST shifts.
func parseTimestamp(date, clock string) (time.Time, bool) {
	t, err := time.ParseInLocation(timestampLayout, date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Sequence walks a bucket's time-ordered swipes through the open/closed
// session state machine. The bucket date is combined with each event's time.
func Sequence(date string, events []models.Event, policy models.DuplicateInPolicy) models.SequenceResult {
	var (
		res     models.SequenceResult
		open    *time.Time
		anomaly = func(format, at string) {
			res.Anomalies = append(res.Anomalies, fmt.Sprintf(format, at))
		}
	)

	for _, ev := range events {
		ts, valid := parseTimestamp(date, ev.Time)

		switch ev.Direction {
		case models.DirectionIn:
			if open == nil {
				if !valid {
					anomaly("bad IN at %s", ev.Time)
					continue
				}
				t := ts
				open = &t
				if res.Login == nil {
					login := ts
					res.Login = &login
				}
				continue
			}
			anomaly("double IN detected at %s", ev.Time)
			if policy == models.ResetOnDuplicate && valid {
				t := ts
				open = &t
			}

		case models.DirectionOut:
			if open == nil {
				anomaly("unexpected OUT at %s", ev.Time)
				continue
			}
			if !valid {
				anomaly("bad OUT at %s", ev.Time)
				continue
			}
			if ts.After(*open) {
				res.WorkedSeconds += int64(ts.Sub(*open) / time.Second)
			}
			logout := ts
			res.Logout = &logout
			open = nil
		}
	}

	if open != nil {
		anomaly("missing OUT after %s", open.Format(models.TimeLayout))
	}
	return res
}
