package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these, optionally wrapped,
// and services translate them into coded domain errors.
//
// Input validation failures belong in pkg/domain-errors instead.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
