package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// Create inserts a user row. It expects Name, Email, Role and the password
// hash to be set; the generated id and timestamps are written back into u.
func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	const op = "UserRepo.Create"
	if u == nil {
		return errors.New("nil user")
	}

	query := `
		INSERT INTO users (name, email, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;`

	err := TxorDB(ctx, r.db).QueryRow(ctx, query, u.Name, u.Email, u.Role.String(), u.PasswordHash()).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return types.ErrEmailTaken
		}
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

// GetByEmail loads a user including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "UserRepo.GetByEmail"
	query := `
		SELECT id, name, email, role, assigned_driver_id, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1;`

	return r.scanUser(ctx, op, query, email)
}

// GetByID loads a user by its identifier.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "UserRepo.GetByID"
	query := `
		SELECT id, name, email, role, assigned_driver_id, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1;`

	return r.scanUser(ctx, op, query, id)
}

func (r *UserRepo) scanUser(ctx context.Context, op, query string, arg any) (*models.User, error) {
	var (
		u    models.User
		role string
	)
	err := TxorDB(ctx, r.db).QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &role, &u.AssignedDriverID, u.ScanPasswordHash(), &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	parsed, err := types.ParseRole(role)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	u.Role = parsed

	return &u, nil
}

// AssignDriver points a student at a driver, overwriting any prior assignment.
func (r *UserRepo) AssignDriver(ctx context.Context, studentID, driverID uuid.UUID) error {
	const op = "UserRepo.AssignDriver"
	query := `
		UPDATE users
		SET assigned_driver_id = $2, updated_at = now()
		WHERE id = $1;`

	tag, err := TxorDB(ctx, r.db).Exec(ctx, query, studentID, driverID)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseQueryFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	if tag.RowsAffected() == 0 {
		return types.ErrUserNotFound
	}
	return nil
}
