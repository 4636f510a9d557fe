// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the LifeOS system. Every tracked record is
// scoped to exactly one user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Timezone     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewUser creates a new User entity.
func NewUser(email, name, passwordHash string, createdAt time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Timezone:     "UTC",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}
