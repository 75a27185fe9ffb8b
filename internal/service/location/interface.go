package location

import (
	"context"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

type LocationRepo interface {
	Upsert(ctx context.Context, driverID uuid.UUID, latitude, longitude float64) (models.DriverLocation, error)
	GetByDriver(ctx context.Context, driverID uuid.UUID) (models.DriverLocation, error)
	ListDrivers(ctx context.Context) ([]models.DriverWithLocation, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	AssignDriver(ctx context.Context, studentID, driverID uuid.UUID) error
}

type Publisher interface {
	PublishLocationUpdate(ctx context.Context, event models.LocationUpdatedEvent) error
}
