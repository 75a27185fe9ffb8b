package location

import (
	"context"
	"fmt"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
	"github.com/NssGourav/shuttle-tracker/pkg/metrics"
	"github.com/NssGourav/shuttle-tracker/pkg/trm"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

const serviceName = "shuttle-tracker"

/*
Service implements the driver-location flow: last-writer-wins updates,
single-driver queries, the all-drivers listing, and student assignment.
*/
type Service struct {
	locations LocationRepo
	users     UserRepo
	publisher Publisher
	tr        trm.TxManager
	l         logger.Logger
}

// New returns a new location service with all dependencies injected.
func New(locationRepo LocationRepo, userRepo UserRepo, publisher Publisher, tr trm.TxManager, l logger.Logger) *Service {
	return &Service{
		locations: locationRepo,
		users:     userRepo,
		publisher: publisher,
		tr:        tr,
		l:         l,
	}
}

// UpdateLocation overwrites the caller's current location record.
// The caller must carry the driver role; coordinates must be inside
// [-90,90] x [-180,180]. Whichever write lands last at the store wins.
func (s *Service) UpdateLocation(ctx context.Context, caller *models.User, latitude, longitude float64) (models.DriverLocation, error) {
	ctx = wrap.WithAction(ctx, types.ActionLocationUpdate)
	if caller == nil || caller.IsAnonymous() {
		return models.DriverLocation{}, wrap.Error(ctx, types.ErrUserNotFound)
	}
	ctx = wrap.WithDriverID(ctx, caller.ID.String())

	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		metrics.LocationUpdatesRejected.WithLabelValues(serviceName, "out_of_range").Inc()
		return models.DriverLocation{}, wrap.Error(ctx, types.ErrOutOfRange)
	}

	switch caller.Role {
	case types.RoleDriver:
		// allowed
	case types.RoleStudent:
		metrics.LocationUpdatesRejected.WithLabelValues(serviceName, "not_driver").Inc()
		return models.DriverLocation{}, wrap.Error(ctx, types.ErrNotDriver)
	default:
		return models.DriverLocation{}, wrap.Error(ctx, fmt.Errorf("unknown role %q", caller.Role))
	}

	loc, err := s.locations.Upsert(ctx, caller.ID, latitude, longitude)
	if err != nil {
		return models.DriverLocation{}, wrap.Error(ctx, fmt.Errorf("failed to store location: %w", err))
	}

	metrics.LocationUpdatesTotal.WithLabelValues(serviceName).Inc()

	// Fan-out is best effort: a broker hiccup must not fail the report.
	event := models.LocationUpdatedEvent{
		DriverID:  loc.DriverID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		UpdatedAt: loc.UpdatedAt,
	}
	if err := s.publisher.PublishLocationUpdate(ctx, event); err != nil {
		s.l.Warn(ctx, "failed to publish location update", "error", err.Error())
	}

	return loc, nil
}

// GetDriverLocation returns a driver together with its stored location.
// No staleness filtering happens here; the record is returned regardless of
// age. A non-driver identity is reported as not found, never as a location.
func (s *Service) GetDriverLocation(ctx context.Context, driverID uuid.UUID) (*models.DriverWithLocation, error) {
	ctx = wrap.WithDriverID(ctx, driverID.String())

	user, err := s.users.GetByID(ctx, driverID)
	if err != nil {
		return nil, wrap.Error(ctx, types.ErrDriverNotFound)
	}

	switch user.Role {
	case types.RoleDriver:
		// allowed
	case types.RoleStudent:
		return nil, wrap.Error(ctx, types.ErrDriverNotFound)
	default:
		return nil, wrap.Error(ctx, fmt.Errorf("unknown role %q", user.Role))
	}

	result := &models.DriverWithLocation{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}

	loc, err := s.locations.GetByDriver(ctx, driverID)
	if err != nil {
		// Driver exists but has never reported.
		return result, wrap.Error(ctx, types.ErrNoLocation)
	}
	result.Location = &loc

	return result, nil
}

// ListDrivers returns every driver with its last known location, freshest
// first; drivers that never reported come last.
func (s *Service) ListDrivers(ctx context.Context) ([]models.DriverWithLocation, error) {
	drivers, err := s.locations.ListDrivers(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("failed to list drivers: %w", err))
	}
	return drivers, nil
}

// AssignDriver points the calling student at a driver. The assignment is a
// bare pointer, overwritten on reassignment.
func (s *Service) AssignDriver(ctx context.Context, caller *models.User, driverID uuid.UUID) (*models.User, error) {
	ctx = wrap.WithAction(ctx, types.ActionAssignDriver)
	if caller == nil || caller.IsAnonymous() {
		return nil, wrap.Error(ctx, types.ErrUserNotFound)
	}

	switch caller.Role {
	case types.RoleStudent:
		// allowed
	case types.RoleDriver:
		return nil, wrap.Error(ctx, types.ErrNotStudent)
	default:
		return nil, wrap.Error(ctx, fmt.Errorf("unknown role %q", caller.Role))
	}

	// Target validation and the write happen in one transaction so the
	// driver cannot disappear between the two.
	var driver *models.User
	err := s.tr.Do(ctx, func(ctx context.Context) error {
		var err error
		driver, err = s.users.GetByID(ctx, driverID)
		if err != nil {
			return types.ErrDriverNotFound
		}
		if driver.Role != types.RoleDriver {
			return types.ErrAssignTargetNotDriver
		}
		return s.users.AssignDriver(ctx, caller.ID, driverID)
	})
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return driver, nil
}
