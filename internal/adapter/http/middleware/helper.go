package middleware

import (
	"encoding/json"
	"net/http"
)

func (m *Middleware) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		m.l.Error(r.Context(), "failed to write error response", err)
	}
}
