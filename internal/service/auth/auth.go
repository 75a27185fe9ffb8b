package auth

import (
	"context"
	"errors"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
	"github.com/NssGourav/shuttle-tracker/pkg/metrics"
	"github.com/NssGourav/shuttle-tracker/pkg/passhash"
)

const serviceName = "shuttle-tracker"

type AuthService struct {
	userRepo UserRepo
	tokens   TokenProvider
	log      logger.Logger
}

func NewAuthService(userRepo UserRepo, tokens TokenProvider, log logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

// Signup creates a new user and returns a fresh access token.
// Role defaults to student when not provided.
func (s *AuthService) Signup(ctx context.Context, name, email, password string, role types.Role) (*models.User, *models.Token, error) {
	ctx = wrap.WithAction(ctx, types.ActionSignup)

	if role == "" {
		role = types.RoleStudent
	}
	if !role.Valid() {
		return nil, nil, wrap.Error(ctx, errors.New("unknown role"))
	}

	hash, err := passhash.HashPassword(password)
	if err != nil {
		s.log.Error(ctx, "failed to hash password", err)
		return nil, nil, ErrUnexpected
	}

	user := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	user.SetPasswordHash(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, types.ErrEmailTaken) {
			return nil, nil, err
		}
		s.log.Error(ctx, "failed to save user", err)
		return nil, nil, ErrUnexpected
	}

	if role == types.RoleDriver {
		metrics.DriversRegisteredGauge.WithLabelValues(serviceName).Inc()
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.log.Error(ctx, "failed to generate token", err)
		return nil, nil, ErrTokenGenerateFail
	}

	return user, token, nil
}

// Login verifies credentials and returns a fresh access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.Token, error) {
	ctx = wrap.WithAction(ctx, types.ActionLogin)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, ErrUnexpected
	}

	if ok, err := passhash.VerifyPassword(password, user.PasswordHash()); err != nil || !ok {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.log.Error(ctx, "failed to generate token", err)
		return nil, nil, ErrTokenGenerateFail
	}

	return user, token, nil
}

// RoleCheck resolves a bearer token to the user it was issued for.
// The location subsystem trusts this resolution completely.
func (s *AuthService) RoleCheck(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, ErrUnexpected
	}

	return user, nil
}
