package reconcile

import (
	"fmt"
	"strings"

	"rollcall/internal/attendance/models"
)

// Normalize turns a loosely typed filter value into a list of strings.
//
// A string holding a comma is split and trimmed with empty pieces dropped, a
// non-empty string without one becomes a single entry, and lists pass through
// in caller order. Any other scalar is rendered with fmt.
func Normalize(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		if strings.Contains(val, ",") {
			parts := strings.Split(val, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out
		}
		if val == "" {
			return []string{}
		}
		return []string{val}
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(val)}
	}
}

// NewFilter builds a QueryFilter from raw name and token values.
func NewFilter(names, tokens any, date, location string) models.QueryFilter {
	return models.QueryFilter{
		Names:    Normalize(names),
		Tokens:   Normalize(tokens),
		Date:     date,
		Location: location,
	}
}
