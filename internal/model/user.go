package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID             uuid.UUID
	Username       string
	Salt           []byte
	HashedPassword []byte
	FirstName      string
	LastName       string
	CreatedAt      time.Time
}

// Principal is the identity established by a successful authentication.
type Principal struct {
	UserID   uuid.UUID
	Username string
}

// SignupParams contains parameters to register a user.
type SignupParams struct {
	Username  string `validate:"required,max=30"`
	Password  string `validate:"required,max=72"`
	FirstName string `validate:"max=50"`
	LastName  string `validate:"max=50"`
}
