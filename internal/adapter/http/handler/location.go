package handler

import (
	"net/http"

	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/handler/dto"
	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

// UpdateLocation godoc
//
//	@Summary		Report driver location
//	@Description	Stores the caller's current coordinates, replacing any previous report
//	@Tags			driver
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateLocationRequest	true	"coordinates"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	map[string]any
//	@Failure		403		{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/api/driver/update-location [post]
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateLocationRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		h.domainErrorResponse(w, r, types.ErrInvalidInput)
		return
	}

	caller := models.UserFromContext(r.Context())
	loc, err := h.locations.UpdateLocation(r.Context(), caller, *req.Latitude, *req.Longitude)
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"message":  "location updated",
		"location": loc,
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetDriverLocation godoc
//
//	@Summary		Fetch a driver's last known location
//	@Tags			student
//	@Produce		json
//	@Param			driver_id	path		string	true	"driver id"
//	@Success		200			{object}	map[string]any
//	@Failure		404			{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/api/student/driver-location/{driver_id} [get]
func (h *Handler) GetDriverLocation(w http.ResponseWriter, r *http.Request) {
	driverID, err := uuid.Parse(r.PathValue("driver_id"))
	if err != nil {
		h.domainErrorResponse(w, r, types.ErrDriverNotFound)
		return
	}

	driver, err := h.locations.GetDriverLocation(r.Context(), driverID)
	if err != nil {
		// A driver who exists but has never reported is still a 404.
		h.domainErrorResponse(w, r, err)
		return
	}

	data := envelope{"driver": driver}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListDrivers godoc
//
//	@Summary	List all drivers with their last known locations
//	@Tags		drivers
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/api/drivers [get]
func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.locations.ListDrivers(r.Context())
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	if drivers == nil {
		drivers = []models.DriverWithLocation{}
	}

	data := envelope{
		"count":   len(drivers),
		"drivers": drivers,
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// AssignDriver godoc
//
//	@Summary		Pin a driver to the calling student
//	@Description	Replaces the student's previous assignment, if any
//	@Tags			student
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AssignDriverRequest	true	"driver to follow"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	map[string]any
//	@Failure		404		{object}	map[string]any
//	@Security		BearerAuth
//	@Router			/api/student/assign-driver [post]
func (h *Handler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignDriverRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		h.domainErrorResponse(w, r, types.ErrDriverNotFound)
		return
	}

	caller := models.UserFromContext(r.Context())
	driver, err := h.locations.AssignDriver(r.Context(), caller, driverID)
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"message": "driver assigned",
		"driver":  dto.NewUserResponse(driver),
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
