package auth

import (
	"context"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

type UserRepo interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type TokenProvider interface {
	Generate(user *models.User) (*models.Token, error)
	Validate(token string) (*Claims, error)
}
