package handler

import (
	"net/http"
)

// errorResponse writes the {"message": ...} error body all endpoints share.
func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	data := envelope{"message": message}

	if err := writeJSON(w, status, data, nil); err != nil {
		h.l.Error(r.Context(), "failed to write error response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.l.Error(r.Context(), "internal server error", err)
	h.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (h *Handler) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	h.errorResponse(w, r, http.StatusBadRequest, errors)
}

// domainErrorResponse routes a service-layer error to its status code. Codes
// in the 5xx range get logged and a generic body; everything else surfaces
// the error message itself.
func (h *Handler) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := GetCode(err)
	if code >= http.StatusInternalServerError {
		h.serverErrorResponse(w, r, err)
		return
	}
	h.errorResponse(w, r, code, err.Error())
}
