package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Direction is the swipe direction reported by a reader.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// ParseDirection accepts IN/OUT case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case DirectionIn:
		return DirectionIn, nil
	case DirectionOut:
		return DirectionOut, nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be IN or OUT", s)
	}
}

// Date and time layouts used by swipe records.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Event is one badge swipe. Date and Time are local wall-clock text exactly as
// recorded; nothing normalizes them before reconciliation.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"Name"`
	RFID      string    `json:"RFID"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Direction Direction `json:"IN/OUT"`
	Location  string    `json:"Log_Cabin,omitempty"`
}

// QueryFilter selects events and names the identities a caller expects to see.
// Empty Date or Location means unconstrained.
type QueryFilter struct {
	Names    []string
	Tokens   []string
	Date     string
	Location string
}

// HasIdentities reports whether any names or tokens were requested.
func (f QueryFilter) HasIdentities() bool {
	return len(f.Names) > 0 || len(f.Tokens) > 0
}

// SequenceResult is the outcome of walking one bucket's swipes.
type SequenceResult struct {
	Login         *time.Time
	Logout        *time.Time
	WorkedSeconds int64
	Anomalies     []string
}

// AbsentMarker is rendered in place of an empty anomaly list and as the
// lateness label of rows without a login.
const AbsentMarker = "Absent"

// Lateness labels.
const (
	LateOnTime = "on time"
	LateLate   = "late"
	LateAbsent = AbsentMarker
)

// Anomalies serializes as "Absent" when empty and as a list otherwise.
type Anomalies []string

func (a Anomalies) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return json.Marshal(AbsentMarker)
	}
	return json.Marshal([]string(a))
}

func (a *Anomalies) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if marker != AbsentMarker {
			return fmt.Errorf("unexpected anomalies marker %q", marker)
		}
		*a = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*a = list
	return nil
}

// DailySummary is one reconciled (or synthesized) attendance row.
// Location and LateStatus are populated only when the engine tracks them.
type DailySummary struct {
	Name           string    `json:"name"`
	RFID           string    `json:"rfid"`
	Date           string    `json:"date"`
	Location       *string   `json:"log_cabin,omitempty"`
	LoginTime      string    `json:"login_time"`
	LogoutTime     string    `json:"logout_time"`
	EffectiveLogin string    `json:"Effective_login"`
	BreakHours     string    `json:"Break_hours"`
	TotalLogin     string    `json:"Total_login"`
	Errors         Anomalies `json:"errors"`
	LateStatus     *string   `json:"late_status,omitempty"`

	// Synthesized marks absence placeholders that no event backs.
	Synthesized bool `json:"-"`
}

// DuplicateInPolicy decides what an IN does while a session is already open.
type DuplicateInPolicy string

const (
	// KeepFirstOpen records the anomaly and keeps the original open session.
	KeepFirstOpen DuplicateInPolicy = "keep-first-open"
	// ResetOnDuplicate records the anomaly and restarts the session at the new IN.
	ResetOnDuplicate DuplicateInPolicy = "reset-on-duplicate"
)

// ParseDuplicateInPolicy validates a configured policy name.
func ParseDuplicateInPolicy(s string) (DuplicateInPolicy, error) {
	switch p := DuplicateInPolicy(strings.TrimSpace(s)); p {
	case KeepFirstOpen, ResetOnDuplicate:
		return p, nil
	case "":
		return KeepFirstOpen, nil
	default:
		return "", fmt.Errorf("unknown duplicate IN policy %q", s)
	}
}

// SwipeRequest is the body a badge reader posts for each swipe. CabinID is the
// reader's identifier.
type SwipeRequest struct {
	RFID      string `json:"RFID"`
	CabinID   string `json:"ID"`
	Direction string `json:"IN/OUT"`
}

// SwipeOutcome describes what happened to an accepted swipe.
type SwipeOutcome string

const (
	SwipeLogged    SwipeOutcome = "logged"
	SwipeAccess    SwipeOutcome = "access"
	SwipeDebounced SwipeOutcome = "debounced"
)
