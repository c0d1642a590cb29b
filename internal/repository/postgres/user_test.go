package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/atlas-server/internal/model"
)

var userRowColumns = []string{"id", "username", "salt", "hashed_password", "first_name", "last_name", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	user := model.User{
		ID:             uuid.New(),
		Username:       "alice",
		Salt:           []byte("salt-salt-salt-1"),
		HashedPassword: []byte("digest"),
		FirstName:      "Alice",
		LastName:       "Liddell",
	}
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs(user.ID.String(), user.Username, user.Salt, user.HashedPassword, user.FirstName, user.LastName).
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(user.ID.String(), user.Username, user.Salt, user.HashedPassword, user.FirstName, user.LastName, now))
			},
		},
		{
			name: "username taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
			},
			wantErr: model.ErrUsernameTaken,
		},
		{
			name: "other unique violation is not a username conflict",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			tt.setup(mock)

			saved, err := NewUserRepository(db).Create(context.Background(), user)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, model.ErrConflict)
			case tt.name == "success":
				require.NoError(t, err)
				assert.Equal(t, user.ID, saved.ID)
				assert.Equal(t, "alice", saved.Username)
				assert.Equal(t, now, saved.CreatedAt)
			default:
				require.Error(t, err)
				assert.False(t, errors.Is(err, model.ErrConflict))
			}
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(id.String(), "alice", []byte("s"), []byte("h"), "A", "L", time.Now()))
	mock.ExpectQuery(`SELECT .* FROM users WHERE username = \$1`).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	repo := NewUserRepository(db)

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	_, err = repo.GetByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnError(errors.New("connection reset"))

	_, err := NewUserRepository(db).GetByID(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_UsernameExists(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := NewUserRepository(db).UsernameExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}
