package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
	"github.com/dtroode/atlas-server/internal/secret"
)

// Credential manages saved site logins. Passwords are stored sealed with a
// per-credential key; listings return the sealed form and Reveal opens it.
type Credential struct {
	store  model.CredentialStore
	logger *logger.Logger
}

func NewCredential(store model.CredentialStore, logger *logger.Logger) *Credential {
	return &Credential{store: store, logger: logger}
}

func (s *Credential) Create(ctx context.Context, ownerID uuid.UUID, params model.CredentialParams) (model.Credential, error) {
	c, err := s.seal(ownerID, params)
	if err != nil {
		return model.Credential{}, err
	}

	saved, err := s.store.Create(ctx, c)
	if err != nil {
		s.logger.Error("Credential service: failed to create credential", "owner_id", ownerID, "error", err)
		return model.Credential{}, fmt.Errorf("failed to create credential: %w", err)
	}

	s.logger.Debug("Credential service: credential created", "owner_id", ownerID, "credential_id", saved.ID)
	return saved, nil
}

// Update re-encrypts the password under a new key.
func (s *Credential) Update(ctx context.Context, id int64, ownerID uuid.UUID, params model.CredentialParams) (model.Credential, error) {
	c, err := s.seal(ownerID, params)
	if err != nil {
		return model.Credential{}, err
	}
	c.ID = id

	saved, err := s.store.Update(ctx, c)
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to update credential: %w", err)
	}

	s.logger.Debug("Credential service: credential updated", "owner_id", ownerID, "credential_id", id)
	return saved, nil
}

func (s *Credential) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	if err := s.store.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	s.logger.Debug("Credential service: credential deleted", "owner_id", ownerID, "credential_id", id)
	return nil
}

func (s *Credential) List(ctx context.Context, ownerID uuid.UUID) ([]model.Credential, error) {
	list, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return list, nil
}

// Reveal returns the credential with its password decrypted.
func (s *Credential) Reveal(ctx context.Context, id int64, ownerID uuid.UUID) (model.Credential, error) {
	c, err := s.store.GetByID(ctx, id, ownerID)
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to get credential: %w", err)
	}

	plain, err := secret.Open(secret.Sealed{Key: c.Key, Ciphertext: c.Password})
	if err != nil {
		s.logger.Error("Credential service: failed to decrypt password", "credential_id", id, "error", err)
		return model.Credential{}, fmt.Errorf("failed to decrypt credential: %w", err)
	}
	c.Password = plain

	return c, nil
}

func (s *Credential) seal(ownerID uuid.UUID, params model.CredentialParams) (model.Credential, error) {
	if err := validateStruct(params); err != nil {
		return model.Credential{}, err
	}

	sealed, err := secret.Seal(params.Password)
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to encrypt credential: %w", err)
	}

	return model.Credential{
		OwnerID:  ownerID,
		URL:      params.URL,
		Username: params.Username,
		Key:      sealed.Key,
		Password: sealed.Ciphertext,
	}, nil
}
