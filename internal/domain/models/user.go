package models

import (
	"time"

	"wanderlust-backend/internal/domain"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         domain.Role
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the user payload safe to return to clients.
type PublicUser struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role}
}
