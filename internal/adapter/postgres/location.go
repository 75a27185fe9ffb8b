package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepo struct {
	db *pgxpool.Pool
}

func NewLocationRepo(db *pgxpool.Pool) *LocationRepo {
	return &LocationRepo{
		db: db,
	}
}

// Upsert replaces the driver's current location record in place and returns
// the stored row. Last write wins; the single-row upsert is serialized by the
// database itself, so no application-level locking is needed.
func (r *LocationRepo) Upsert(ctx context.Context, driverID uuid.UUID, latitude, longitude float64) (models.DriverLocation, error) {
	const op = "LocationRepo.Upsert"
	query := `
		INSERT INTO driver_locations(driver_id, latitude, longitude, updated_at)
		VALUES($1, $2, $3, now())
		ON CONFLICT (driver_id) DO UPDATE
		SET latitude = EXCLUDED.latitude,
		    longitude = EXCLUDED.longitude,
		    updated_at = now()
		RETURNING driver_id, latitude, longitude, updated_at;`

	var loc models.DriverLocation
	if err := TxorDB(ctx, r.db).QueryRow(ctx, query, driverID, latitude, longitude).
		Scan(&loc.DriverID, &loc.Latitude, &loc.Longitude, &loc.UpdatedAt); err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return models.DriverLocation{}, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return loc, nil
}

// GetByDriver returns the driver's current location record.
func (r *LocationRepo) GetByDriver(ctx context.Context, driverID uuid.UUID) (models.DriverLocation, error) {
	const op = "LocationRepo.GetByDriver"
	query := `
		SELECT driver_id, latitude, longitude, updated_at
		FROM driver_locations
		WHERE driver_id = $1;`

	var loc models.DriverLocation
	if err := TxorDB(ctx, r.db).QueryRow(ctx, query, driverID).
		Scan(&loc.DriverID, &loc.Latitude, &loc.Longitude, &loc.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DriverLocation{}, types.ErrNoLocation
		}
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return models.DriverLocation{}, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	return loc, nil
}

// ListDrivers returns every user with the driver role paired with its current
// location (nil if the driver has never reported). Drivers with fresher
// locations come first; never-reported drivers sort last.
func (r *LocationRepo) ListDrivers(ctx context.Context) ([]models.DriverWithLocation, error) {
	const op = "LocationRepo.ListDrivers"
	query := `
		SELECT u.id, u.name, u.email,
		       l.latitude, l.longitude, l.updated_at
		FROM users u
		LEFT JOIN driver_locations l ON l.driver_id = u.id
		WHERE u.role = 'driver'
		ORDER BY l.updated_at DESC NULLS LAST;`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	drivers := []models.DriverWithLocation{}
	for rows.Next() {
		var (
			d         models.DriverWithLocation
			lat, lng  *float64
			updatedAt *time.Time
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &lat, &lng, &updatedAt); err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
		}
		if lat != nil && lng != nil && updatedAt != nil {
			d.Location = &models.DriverLocation{
				DriverID:  d.ID,
				Latitude:  *lat,
				Longitude: *lng,
				UpdatedAt: *updatedAt,
			}
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return drivers, nil
}
