package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/atlas-server/internal/mocks"
	"github.com/dtroode/atlas-server/internal/model"
	"github.com/dtroode/atlas-server/internal/testutil"
)

func TestUser_CreateUser(t *testing.T) {
	ctx := context.Background()
	h := cheapHasher()

	store := mocks.NewUserStore(t)
	store.On("Create", ctx, mock.Anything).Return(func(_ context.Context, u model.User) (model.User, error) {
		return u, nil
	}).Once()

	svc := NewUser(store, h, testutil.MakeNoopLogger())

	user, err := svc.CreateUser(ctx, model.SignupParams{
		Username:  "alice",
		Password:  "pw1",
		FirstName: "Alice",
		LastName:  "Liddell",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Len(t, user.Salt, 16)
	assert.NotEqual(t, []byte("pw1"), user.HashedPassword)
	assert.True(t, h.Verify("pw1", user.Salt, user.HashedPassword))
}

func TestUser_CreateUser_FreshSaltPerUser(t *testing.T) {
	ctx := context.Background()

	var created []model.User
	store := mocks.NewUserStore(t)
	store.On("Create", ctx, mock.Anything).Return(func(_ context.Context, u model.User) (model.User, error) {
		created = append(created, u)
		return u, nil
	}).Twice()

	svc := NewUser(store, cheapHasher(), testutil.MakeNoopLogger())

	_, err := svc.CreateUser(ctx, model.SignupParams{Username: "alice", Password: "same"})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, model.SignupParams{Username: "bob", Password: "same"})
	require.NoError(t, err)

	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].Salt, created[1].Salt)
	assert.NotEqual(t, created[0].HashedPassword, created[1].HashedPassword)
}

func TestUser_CreateUser_UsernameTaken(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewUserStore(t)
	store.On("Create", ctx, mock.Anything).Return(model.User{}, model.ErrUsernameTaken).Once()

	svc := NewUser(store, cheapHasher(), testutil.MakeNoopLogger())

	_, err := svc.CreateUser(ctx, model.SignupParams{Username: "alice", Password: "pw2"})
	require.ErrorIs(t, err, model.ErrUsernameTaken)
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestUser_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name      string
		params    model.SignupParams
		wantField string
	}{
		{name: "missing username", params: model.SignupParams{Password: "pw"}, wantField: "Username"},
		{name: "missing password", params: model.SignupParams{Username: "alice"}, wantField: "Password"},
		{
			name:      "username too long",
			params:    model.SignupParams{Username: "abcdefghijabcdefghijabcdefghij1", Password: "pw"},
			wantField: "Username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewUserStore(t)
			svc := NewUser(store, cheapHasher(), testutil.MakeNoopLogger())

			_, err := svc.CreateUser(context.Background(), tt.params)
			require.ErrorIs(t, err, model.ErrValidation)

			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestUser_CreateUser_StoreError(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewUserStore(t)
	store.On("Create", ctx, mock.Anything).Return(model.User{}, assert.AnError).Once()

	svc := NewUser(store, cheapHasher(), testutil.MakeNoopLogger())

	_, err := svc.CreateUser(ctx, model.SignupParams{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, model.ErrConflict)
}

func TestUser_IsUsernameAvailable(t *testing.T) {
	ctx := context.Background()

	store := mocks.NewUserStore(t)
	store.On("UsernameExists", ctx, "alice").Return(true, nil).Once()
	store.On("UsernameExists", ctx, "bob").Return(false, nil).Once()
	store.On("UsernameExists", ctx, "carol").Return(false, assert.AnError).Once()

	svc := NewUser(store, cheapHasher(), testutil.MakeNoopLogger())

	ok, err := svc.IsUsernameAvailable(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsUsernameAvailable(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.IsUsernameAvailable(ctx, "carol")
	require.Error(t, err)
}

func TestUser_Find(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	u := model.User{ID: id, Username: "alice"}

	store := mocks.NewUserStore(t)
	store.On("GetByUsername", ctx, "alice").Return(u, nil).Once()
	store.On("GetByUsername", ctx, "ghost").Return(model.User{}, model.ErrNotFound).Once()
	store.On("GetByID", ctx, id).Return(u, nil).Once()

	svc := NewUser(store, cheapHasher(), testutil.MakeNoopLogger())

	got, err := svc.FindByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = svc.FindByName(ctx, "ghost")
	require.ErrorIs(t, err, model.ErrNotFound)

	got, err = svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}
