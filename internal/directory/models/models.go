// Package models holds the directory records that map badges to people and
// readers to places.
package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Employee is a badge holder. Cabins lists the readers the badge may open;
// LogCabin is the reader whose swipes count towards attendance.
type Employee struct {
	ID         uuid.UUID `json:"_id"`
	Name       string    `json:"Name"`
	RFID       string    `json:"RFID"`
	EmployeeID string    `json:"Employee ID"`
	Cabins     []string  `json:"Cabins"`
	LogCabin   string    `json:"Log_Cabin"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// HasCabin reports whether cabinID is one of the employee's access cabins.
func (e *Employee) HasCabin(cabinID string) bool {
	return slices.Contains(e.Cabins, cabinID)
}

// Cabin is a badge reader location.
type Cabin struct {
	ID        uuid.UUID `json:"_id"`
	CabinID   string    `json:"ID"`
	Building  string    `json:"Building"`
	Floor     string    `json:"Floor"`
	Door      string    `json:"Door"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// LocationKind tells how a reader relates to a badge holder.
type LocationKind string

const (
	// LocationCabins means the reader only grants access.
	LocationCabins LocationKind = "Cabins"
	// LocationLogCabin means the reader records attendance.
	LocationLogCabin LocationKind = "Log_Cabin"
	// LocationNone means the badge is not registered for the reader.
	LocationNone LocationKind = "None"
)

// Resolution is the outcome of matching a swipe against the directory.
type Resolution struct {
	Kind     LocationKind
	Employee *Employee
}
