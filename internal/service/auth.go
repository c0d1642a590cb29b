package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// Auth decides whether a username and password identify a user.
type Auth struct {
	users  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger

	dummySalt   []byte
	dummyDigest []byte
}

func NewAuth(users model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) (*Auth, error) {
	salt, err := hasher.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy credentials: %w", err)
	}

	return &Auth{
		users:       users,
		hasher:      hasher,
		logger:      logger,
		dummySalt:   salt,
		dummyDigest: hasher.Hash("", salt),
	}, nil
}

// Authenticate returns the principal for valid credentials. An unknown
// username and a wrong password both yield model.ErrAuthenticationFailed,
// and both cost one hash evaluation.
func (a *Auth) Authenticate(ctx context.Context, username, password string) (model.Principal, error) {
	a.logger.Debug("Auth service: validating credentials", "username", username)

	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.hasher.Verify(password, a.dummySalt, a.dummyDigest)
			a.logger.Info("Auth service: authentication rejected", "username", username)
			return model.Principal{}, model.ErrAuthenticationFailed
		}
		a.logger.Error("Auth service: failed to get user", "username", username, "error", err)
		return model.Principal{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.Salt, user.HashedPassword) {
		a.logger.Info("Auth service: authentication rejected", "username", username)
		return model.Principal{}, model.ErrAuthenticationFailed
	}

	a.logger.Info("Auth service: authenticated", "user_id", user.ID)
	return model.Principal{UserID: user.ID, Username: user.Username}, nil
}
