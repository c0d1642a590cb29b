package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/model"
)

var _ model.CredentialStore = (*CredentialRepository)(nil)

// CredentialRepository stores credentials with their encrypted password and key.
type CredentialRepository struct {
	db DBTX
}

func NewCredentialRepository(db DBTX) *CredentialRepository {
	return &CredentialRepository{db: db}
}

const credentialColumns = `id, owner_id, url, username, key, password`

func (r *CredentialRepository) Create(ctx context.Context, c model.Credential) (model.Credential, error) {
	query := `INSERT INTO credentials (owner_id, url, username, key, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + credentialColumns

	saved, err := scanCredential(r.db.QueryRowContext(ctx, query, c.OwnerID, c.URL, c.Username, c.Key, c.Password))
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to create credential: %w", err)
	}
	return saved, nil
}

func (r *CredentialRepository) Update(ctx context.Context, c model.Credential) (model.Credential, error) {
	query := `UPDATE credentials SET url = $3, username = $4, key = $5, password = $6
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + credentialColumns

	saved, err := scanCredential(r.db.QueryRowContext(ctx, query, c.ID, c.OwnerID, c.URL, c.Username, c.Key, c.Password))
	if err != nil {
		if isNoRows(err) {
			return model.Credential{}, model.ErrNotFound
		}
		return model.Credential{}, fmt.Errorf("failed to update credential: %w", err)
	}
	return saved, nil
}

func (r *CredentialRepository) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return expectOneRow(res)
}

func (r *CredentialRepository) GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE id = $1 AND owner_id = $2`

	c, err := scanCredential(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if isNoRows(err) {
			return model.Credential{}, model.ErrNotFound
		}
		return model.Credential{}, fmt.Errorf("failed to get credential: %w", err)
	}
	return c, nil
}

func (r *CredentialRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	result := make([]model.Credential, 0)
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credentials: %w", err)
	}
	return result, nil
}

func scanCredential(row scanner) (model.Credential, error) {
	var c model.Credential
	err := row.Scan(&c.ID, &c.OwnerID, &c.URL, &c.Username, &c.Key, &c.Password)
	return c, err
}
