package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/atlas-server/internal/model"
)

var credentialRowColumns = []string{"id", "owner_id", "url", "username", "key", "password"}

func TestCredentialRepository_CreateAndList(t *testing.T) {
	db, mock := newMock(t)
	owner := uuid.New()
	c := model.Credential{OwnerID: owner, URL: "https://example.com", Username: "alice", Key: "k", Password: "enc"}

	mock.ExpectQuery(`INSERT INTO credentials`).
		WithArgs(owner.String(), c.URL, c.Username, c.Key, c.Password).
		WillReturnRows(sqlmock.NewRows(credentialRowColumns).AddRow(int64(1), owner.String(), c.URL, c.Username, c.Key, c.Password))
	mock.ExpectQuery(`FROM credentials WHERE owner_id = \$1 ORDER BY id`).
		WithArgs(owner.String()).
		WillReturnRows(sqlmock.NewRows(credentialRowColumns).AddRow(int64(1), owner.String(), c.URL, c.Username, c.Key, c.Password))

	repo := NewCredentialRepository(db)
	saved, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	list, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "enc", list[0].Password)
}

func TestCredentialRepository_OwnerScoped(t *testing.T) {
	db, mock := newMock(t)
	stranger := uuid.New()

	mock.ExpectQuery(`UPDATE credentials .* WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(int64(9), stranger.String(), "u", "n", "k", "p").
		WillReturnRows(sqlmock.NewRows(credentialRowColumns))
	mock.ExpectQuery(`FROM credentials WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(int64(9), stranger.String()).
		WillReturnRows(sqlmock.NewRows(credentialRowColumns))
	mock.ExpectExec(`DELETE FROM credentials WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(int64(9), stranger.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCredentialRepository(db)

	_, err := repo.Update(context.Background(), model.Credential{ID: 9, OwnerID: stranger, URL: "u", Username: "n", Key: "k", Password: "p"})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.GetByID(context.Background(), 9, stranger)
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = repo.Delete(context.Background(), 9, stranger)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
