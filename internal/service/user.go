package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// User is the user directory: signup and lookups.
type User struct {
	store  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewUser(store model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

// IsUsernameAvailable reports whether no user holds name. The check is
// advisory; CreateUser relies on the storage constraint.
func (s *User) IsUsernameAvailable(ctx context.Context, name string) (bool, error) {
	exists, err := s.store.UsernameExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return !exists, nil
}

// CreateUser registers a user with a fresh salt. A taken name yields
// model.ErrUsernameTaken and leaves the existing user untouched.
func (s *User) CreateUser(ctx context.Context, params model.SignupParams) (model.User, error) {
	s.logger.Debug("User service: creating user", "username", params.Username)

	if err := validateStruct(params); err != nil {
		return model.User{}, err
	}

	salt, err := s.hasher.NewSalt()
	if err != nil {
		s.logger.Error("User service: failed to generate salt", "error", err)
		return model.User{}, err
	}

	user, err := s.store.Create(ctx, model.User{
		ID:             uuid.New(),
		Username:       params.Username,
		Salt:           salt,
		HashedPassword: s.hasher.Hash(params.Password, salt),
		FirstName:      params.FirstName,
		LastName:       params.LastName,
	})
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			s.logger.Info("User service: username already taken", "username", params.Username)
			return model.User{}, err
		}
		s.logger.Error("User service: failed to create user", "username", params.Username, "error", err)
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *User) FindByName(ctx context.Context, name string) (model.User, error) {
	user, err := s.store.GetByUsername(ctx, name)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *User) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
