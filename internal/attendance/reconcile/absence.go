package reconcile

import (
	"rollcall/internal/attendance/models"
)

type identity struct {
	name  string
	token string
}

// presence records which identities produced real summaries.
type presence struct {
	pairs  map[identity]struct{}
	names  map[string]struct{}
	tokens map[string]struct{}
}

func newPresence() *presence {
	return &presence{
		pairs:  make(map[identity]struct{}),
		names:  make(map[string]struct{}),
		tokens: make(map[string]struct{}),
	}
}

func (p *presence) add(name, token string) {
	p.pairs[identity{name, token}] = struct{}{}
	p.names[name] = struct{}{}
	p.tokens[token] = struct{}{}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// absences lists the identities that were requested but not seen. Rules are
// tried in order: positional name/token pairs, names alone, tokens alone, and
// finally a single blank row when nothing was requested and nothing matched.
func absences(filter models.QueryFilter, seen *presence, realCount int) []identity {
	names, tokens := filter.Names, filter.Tokens
	var out []identity

	switch {
	case len(names) > 0 && len(tokens) > 0 && len(names) == len(tokens):
		for i := range names {
			id := identity{names[i], tokens[i]}
			if _, ok := seen.pairs[id]; !ok {
				out = append(out, id)
			}
		}
	case len(names) > 0:
		for _, n := range names {
			if _, ok := seen.names[n]; !ok {
				out = append(out, identity{n, first(tokens)})
			}
		}
	case len(tokens) > 0:
		for _, t := range tokens {
			if _, ok := seen.tokens[t]; !ok {
				out = append(out, identity{first(names), t})
			}
		}
	case realCount == 0:
		out = append(out, identity{})
	}
	return out
}
