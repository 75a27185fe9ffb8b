package models

import (
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
)

type User struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             types.Role `json:"role"`
	AssignedDriverID *uuid.UUID `json:"assigned_driver_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at,omitzero"`

	passwordHash string
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
}

// ScanPasswordHash exposes a pointer for database scanning.
func (u *User) ScanPasswordHash() *string {
	return &u.passwordHash
}
