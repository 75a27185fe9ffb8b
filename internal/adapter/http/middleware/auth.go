package middleware

import (
	"net/http"
	"strings"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
)

// Authenticate resolves the Bearer token, if any, into a user on the request
// context. Requests without a token proceed as anonymous; access control
// happens in RequireRoles.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			r = r.WithContext(models.WithUser(r.Context(), models.AnonymousUser()))
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.errorResponse(w, r, http.StatusUnauthorized, "invalid or missing authentication token")
			return
		}

		user, err := m.auth.RoleCheck(r.Context(), parts[1])
		if err != nil {
			m.errorResponse(w, r, http.StatusUnauthorized, "invalid or missing authentication token")
			return
		}

		ctx := models.WithUser(r.Context(), user)
		ctx = wrap.WithUserID(ctx, user.ID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
