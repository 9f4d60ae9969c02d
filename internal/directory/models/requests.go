package models

import (
	"strings"

	dErrors "rollcall/pkg/domain-errors"
	pkgstrings "rollcall/pkg/platform/strings"
)

// EmployeeRequest is the body for creating or updating an employee.
type EmployeeRequest struct {
	Name       string   `json:"Name"`
	RFID       string   `json:"RFID"`
	EmployeeID string   `json:"Employee ID"`
	Cabins     []string `json:"Cabins"`
	LogCabin   string   `json:"Log_Cabin"`
}

// Normalize trims fields and removes duplicate cabins.
func (r *EmployeeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RFID = strings.TrimSpace(r.RFID)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.LogCabin = strings.TrimSpace(r.LogCabin)
	r.Cabins = pkgstrings.DedupeAndTrim(r.Cabins)
}

// Validate normalizes the request and checks required fields.
func (r *EmployeeRequest) Validate() error {
	r.Normalize()
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "Name is required")
	}
	if r.RFID == "" {
		return dErrors.New(dErrors.CodeValidation, "RFID is required")
	}
	return nil
}

// CabinRequest is the body for creating or updating a cabin.
type CabinRequest struct {
	CabinID  string `json:"ID"`
	Building string `json:"Building"`
	Floor    string `json:"Floor"`
	Door     string `json:"Door"`
}

func (r *CabinRequest) Normalize() {
	r.CabinID = strings.TrimSpace(r.CabinID)
	r.Building = strings.TrimSpace(r.Building)
	r.Floor = strings.TrimSpace(r.Floor)
	r.Door = strings.TrimSpace(r.Door)
}

func (r *CabinRequest) Validate() error {
	r.Normalize()
	if r.CabinID == "" {
		return dErrors.New(dErrors.CodeValidation, "ID is required")
	}
	return nil
}
