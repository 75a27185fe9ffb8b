package handler

import (
	"context"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string, role types.Role) (*models.User, *models.Token, error)
	Login(ctx context.Context, email, password string) (*models.User, *models.Token, error)
}

type LocationService interface {
	UpdateLocation(ctx context.Context, caller *models.User, latitude, longitude float64) (models.DriverLocation, error)
	GetDriverLocation(ctx context.Context, driverID uuid.UUID) (*models.DriverWithLocation, error)
	ListDrivers(ctx context.Context) ([]models.DriverWithLocation, error)
	AssignDriver(ctx context.Context, caller *models.User, driverID uuid.UUID) (*models.User, error)
}

type ShuttleService interface {
	ListRoutes(ctx context.Context) ([]models.Route, error)
	ListShuttles(ctx context.Context) ([]models.Shuttle, error)
}

type Handler struct {
	auth      AuthService
	locations LocationService
	shuttles  ShuttleService
	l         logger.Logger
}

func New(auth AuthService, locations LocationService, shuttles ShuttleService, l logger.Logger) *Handler {
	return &Handler{
		auth:      auth,
		locations: locations,
		shuttles:  shuttles,
		l:         l,
	}
}
