package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

type nopLogger struct{}

var _ logger.Logger = nopLogger{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any)            {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)             {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, args ...any) {}

type stubLocationService struct {
	drivers   []models.DriverWithLocation
	updateErr error
	getErr    error
	assignErr error
	updated   models.DriverLocation
}

func (s *stubLocationService) UpdateLocation(ctx context.Context, caller *models.User, lat, lng float64) (models.DriverLocation, error) {
	if s.updateErr != nil {
		return models.DriverLocation{}, s.updateErr
	}
	return s.updated, nil
}

func (s *stubLocationService) GetDriverLocation(ctx context.Context, driverID uuid.UUID) (*models.DriverWithLocation, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for i := range s.drivers {
		if s.drivers[i].ID == driverID {
			return &s.drivers[i], nil
		}
	}
	return nil, types.ErrDriverNotFound
}

func (s *stubLocationService) ListDrivers(ctx context.Context) ([]models.DriverWithLocation, error) {
	return s.drivers, nil
}

func (s *stubLocationService) AssignDriver(ctx context.Context, caller *models.User, driverID uuid.UUID) (*models.User, error) {
	if s.assignErr != nil {
		return nil, s.assignErr
	}
	return &models.User{ID: driverID, Name: "Ravi", Role: types.RoleDriver}, nil
}

func newTestHandler(loc LocationService) *Handler {
	return New(nil, loc, nil, nopLogger{})
}

func driverRequest(method, path, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	user := &models.User{ID: uuid.New(), Name: "Dana", Role: types.RoleDriver}
	return r.WithContext(models.WithUser(r.Context(), user))
}

func TestListDrivers_EmptyListIsNotNull(t *testing.T) {
	h := newTestHandler(&stubLocationService{})

	rec := httptest.NewRecorder()
	h.ListDrivers(rec, httptest.NewRequest(http.MethodGet, "/api/drivers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Count   int               `json:"count"`
		Drivers []json.RawMessage `json:"drivers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 0 {
		t.Errorf("count = %d, want 0", body.Count)
	}
	if body.Drivers == nil {
		t.Error("drivers is null, want []")
	}
}

func TestUpdateLocation_MissingCoordinates(t *testing.T) {
	h := newTestHandler(&stubLocationService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing lng", `{"lat": 17.44}`},
		{"missing lat", `{"lng": 78.35}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.UpdateLocation(rec, driverRequest(http.MethodPost, "/api/driver/update-location", tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Message != types.ErrInvalidInput.Error() {
				t.Errorf("message = %q", body.Message)
			}
		})
	}
}

func TestUpdateLocation_StatusCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"out of range coordinates", types.ErrOutOfRange, http.StatusBadRequest},
		{"caller is not a driver", types.ErrNotDriver, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubLocationService{updateErr: tt.err})

			rec := httptest.NewRecorder()
			h.UpdateLocation(rec, driverRequest(http.MethodPost, "/api/driver/update-location", `{"lat": 95.0, "lng": 78.35}`))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestAssignDriver_StatusCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"assignment succeeds", nil, http.StatusOK},
		{"target is not a driver", types.ErrAssignTargetNotDriver, http.StatusBadRequest},
		{"unknown target", types.ErrDriverNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubLocationService{assignErr: tt.err})

			body := `{"driverId": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`
			r := httptest.NewRequest(http.MethodPost, "/api/student/assign-driver", strings.NewReader(body))
			user := &models.User{ID: uuid.New(), Name: "Asha", Role: types.RoleStudent}
			r = r.WithContext(models.WithUser(r.Context(), user))

			rec := httptest.NewRecorder()
			h.AssignDriver(rec, r)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestGetDriverLocation_NotFoundCases(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown driver", types.ErrDriverNotFound},
		{"driver never reported", types.ErrNoLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubLocationService{getErr: tt.err})

			rec := httptest.NewRecorder()
			r := driverRequest(http.MethodGet, "/api/student/driver-location/6ba7b810-9dad-11d1-80b4-00c04fd430c8", "")
			r.SetPathValue("driver_id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
			h.GetDriverLocation(rec, r)

			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
		})
	}
}

func TestGetDriverLocation_MalformedIDIs404(t *testing.T) {
	h := newTestHandler(&stubLocationService{})

	rec := httptest.NewRecorder()
	r := driverRequest(http.MethodGet, "/api/student/driver-location/not-a-uuid", "")
	r.SetPathValue("driver_id", "not-a-uuid")
	h.GetDriverLocation(rec, r)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
