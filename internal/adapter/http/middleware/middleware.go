package middleware

import (
	"context"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
)

type AuthService interface {
	RoleCheck(ctx context.Context, token string) (*models.User, error)
}

type Middleware struct {
	auth AuthService
	l    logger.Logger
}

func New(auth AuthService, l logger.Logger) *Middleware {
	return &Middleware{auth: auth, l: l}
}
