package auth

import (
	"testing"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

func TestToken_GenerateValidate(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := &models.User{ID: uuid.New(), Role: types.RoleDriver}

	token, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.Validate(token.AccessToken)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("user id mismatch: %s vs %s", claims.UserID, user.ID)
	}
	if claims.Role != types.RoleDriver {
		t.Fatalf("role mismatch: %s", claims.Role)
	}
}

func TestToken_WrongSecretRejected(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate(&models.User{ID: uuid.New(), Role: types.RoleStudent})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := verifier.Validate(token.AccessToken); err == nil {
		t.Fatalf("token signed with a different secret must not validate")
	}
}

func TestToken_ExpiredRejected(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate(&models.User{ID: uuid.New(), Role: types.RoleStudent})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.Validate(token.AccessToken); err == nil {
		t.Fatalf("expired token must not validate")
	}
}

func TestToken_GarbageRejected(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	if _, err := svc.Validate("not.a.token"); err == nil {
		t.Fatalf("garbage token must not validate")
	}
}
