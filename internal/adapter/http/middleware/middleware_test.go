package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/internal/service/auth"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

type nopLogger struct{}

var _ logger.Logger = nopLogger{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any)            {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)             {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, args ...any) {}

type stubAuth struct {
	user *models.User
}

func (s *stubAuth) RoleCheck(ctx context.Context, token string) (*models.User, error) {
	if s.user == nil {
		return nil, auth.ErrInvalidToken
	}
	return s.user, nil
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	mw := New(&stubAuth{}, nopLogger{})

	var got *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = models.UserFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/drivers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got == nil || !got.IsAnonymous() {
		t.Errorf("context user = %+v, want anonymous", got)
	}
}

func TestAuthenticate_BadTokenIs401(t *testing.T) {
	mw := New(&stubAuth{}, nopLogger{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
	r.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	mw := New(&stubAuth{}, nopLogger{})

	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"anonymous", models.AnonymousUser(), http.StatusUnauthorized},
		{"wrong role", &models.User{ID: uuid.New(), Role: types.RoleStudent}, http.StatusForbidden},
		{"allowed role", &models.User{ID: uuid.New(), Role: types.RoleDriver}, http.StatusOK},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/driver/update-location", nil)
			r = r.WithContext(models.WithUser(r.Context(), tt.user))

			rec := httptest.NewRecorder()
			mw.RequireRoles(types.RoleDriver)(next).ServeHTTP(rec, r)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
