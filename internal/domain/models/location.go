package models

import (
	"time"

	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

// DriverLocation is the single current-location record kept per driver.
// Every accepted report replaces it in place; no history is retained.
type DriverLocation struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DriverWithLocation pairs a driver identity with its last known location.
// Location is nil for drivers that have never reported.
type DriverWithLocation struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Location *DriverLocation `json:"location"`
}

// LocationUpdatedEvent is published to the location fanout exchange after
// every accepted report.
type LocationUpdatedEvent struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}
