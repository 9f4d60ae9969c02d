package models

import (
	"strings"

	dErrors "rollcall/pkg/domain-errors"
)

// Validate trims the request and checks the fields every reader must send.
func (r *SwipeRequest) Validate() error {
	r.RFID = strings.TrimSpace(r.RFID)
	r.CabinID = strings.TrimSpace(r.CabinID)
	r.Direction = strings.TrimSpace(r.Direction)
	if r.RFID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "Missing RFID field")
	}
	if r.CabinID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "Missing ID field")
	}
	return nil
}
