package dto

// UpdateLocationRequest uses pointers so a missing field is
// distinguishable from an explicit zero coordinate.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}
