package postgres

import (
	"context"
	"fmt"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShuttleRepo struct {
	db *pgxpool.Pool
}

func NewShuttleRepo(db *pgxpool.Pool) *ShuttleRepo {
	return &ShuttleRepo{
		db: db,
	}
}

// ListRoutes returns all routes with their stops in route order.
func (r *ShuttleRepo) ListRoutes(ctx context.Context) ([]models.Route, error) {
	const op = "ShuttleRepo.ListRoutes"
	query := `
		SELECT r.id, r.name, r.color,
		       s.id, s.name, s.latitude, s.longitude
		FROM routes r
		LEFT JOIN stops s ON s.route_id = r.id
		ORDER BY r.id, s.position;`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	routes := []models.Route{}
	index := map[string]int{}
	for rows.Next() {
		var (
			route models.Route
			stop  models.Stop
			// stop columns are nullable through the left join
			stopID, stopName *string
			lat, lng         *float64
		)
		if err := rows.Scan(&route.ID, &route.Name, &route.Color, &stopID, &stopName, &lat, &lng); err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
		}

		i, ok := index[route.ID]
		if !ok {
			route.Stops = []models.Stop{}
			routes = append(routes, route)
			i = len(routes) - 1
			index[route.ID] = i
		}

		if stopID != nil {
			stop = models.Stop{ID: *stopID, Name: *stopName, Latitude: *lat, Longitude: *lng}
			routes[i].Stops = append(routes[i].Stops, stop)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return routes, nil
}

// ListShuttles returns the whole fleet with current positions.
func (r *ShuttleRepo) ListShuttles(ctx context.Context) ([]models.Shuttle, error) {
	const op = "ShuttleRepo.ListShuttles"
	query := `
		SELECT id, name, route_id, latitude, longitude, speed_kph, updated_at
		FROM shuttles
		ORDER BY id;`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	shuttles := []models.Shuttle{}
	for rows.Next() {
		var s models.Shuttle
		if err := rows.Scan(&s.ID, &s.Name, &s.RouteID, &s.Latitude, &s.Longitude, &s.SpeedKph, &s.UpdatedAt); err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
		}
		shuttles = append(shuttles, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return shuttles, nil
}

// UpdatePosition overwrites a shuttle's position and speed.
func (r *ShuttleRepo) UpdatePosition(ctx context.Context, s models.Shuttle) error {
	const op = "ShuttleRepo.UpdatePosition"
	query := `
		UPDATE shuttles
		SET latitude = $2, longitude = $3, speed_kph = $4, updated_at = now()
		WHERE id = $1;`

	if _, err := TxorDB(ctx, r.db).Exec(ctx, query, s.ID, s.Latitude, s.Longitude, s.SpeedKph); err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	return nil
}
