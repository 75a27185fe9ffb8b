package models

import "time"

type Stop struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Route struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Stops []Stop `json:"stops"`
}

type Shuttle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RouteID   string    `json:"routeId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SpeedKph  int       `json:"speedKph"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}
