package model

import (
	"context"

	"github.com/google/uuid"
)

// CredentialStore defines owner-scoped persistence operations for credentials.
type CredentialStore interface {
	Create(ctx context.Context, credential Credential) (Credential, error)
	Update(ctx context.Context, credential Credential) (Credential, error)
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) error
	GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (Credential, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Credential, error)
}

// Credential is a saved site login. Password holds the encrypted value
// unless it was explicitly revealed.
type Credential struct {
	ID       int64     `json:"credentialId"`
	OwnerID  uuid.UUID `json:"-"`
	URL      string    `json:"url"`
	Username string    `json:"username"`
	Key      string    `json:"-"`
	Password string    `json:"password"`
}

// CredentialParams contains the editable fields of a credential.
type CredentialParams struct {
	URL      string `validate:"required,max=100"`
	Username string `validate:"required,max=30"`
	Password string `validate:"required,max=256"`
}
