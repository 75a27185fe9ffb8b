package middleware

import (
	"net/http"
	"slices"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
)

// RequireRoles rejects anonymous callers with 401 and authenticated callers
// whose role is not in the allow list with 403.
func (m *Middleware) RequireRoles(roles ...types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := models.UserFromContext(r.Context())
			if user.IsAnonymous() {
				m.errorResponse(w, r, http.StatusUnauthorized, "you must be authenticated to access this resource")
				return
			}

			if !slices.Contains(roles, user.Role) {
				m.errorResponse(w, r, http.StatusForbidden, "your account does not have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
