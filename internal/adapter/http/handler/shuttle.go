package handler

import (
	"net/http"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
)

// ListRoutes godoc
//
//	@Summary	List campus routes with their stops
//	@Tags		routes
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/api/routes [get]
func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.shuttles.ListRoutes(r.Context())
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	if routes == nil {
		routes = []models.Route{}
	}

	if err := writeJSON(w, http.StatusOK, envelope{"routes": routes}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListShuttles godoc
//
//	@Summary	List simulated shuttles with current positions
//	@Tags		shuttles
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/api/shuttles [get]
func (h *Handler) ListShuttles(w http.ResponseWriter, r *http.Request) {
	shuttles, err := h.shuttles.ListShuttles(r.Context())
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	if shuttles == nil {
		shuttles = []models.Shuttle{}
	}

	if err := writeJSON(w, http.StatusOK, envelope{"shuttles": shuttles}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
