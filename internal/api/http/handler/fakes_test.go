package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/atlas-server/internal/api/http/context"
	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/api/http/session"
	"github.com/dtroode/atlas-server/internal/model"
)

type fakeUsers struct{ mock.Mock }

func (f *fakeUsers) IsUsernameAvailable(ctx context.Context, name string) (bool, error) {
	args := f.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (f *fakeUsers) CreateUser(ctx context.Context, params model.SignupParams) (model.User, error) {
	args := f.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (f *fakeUsers) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := f.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

type fakeAuthenticator struct{ mock.Mock }

func (f *fakeAuthenticator) Authenticate(ctx context.Context, username, password string) (model.Principal, error) {
	args := f.Called(ctx, username, password)
	return args.Get(0).(model.Principal), args.Error(1)
}

type fakeTokens struct{ mock.Mock }

func (f *fakeTokens) Issue(ctx context.Context, p model.Principal) (model.TokenPair, error) {
	args := f.Called(ctx, p)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

func (f *fakeTokens) Refresh(ctx context.Context, token string) (model.TokenPair, error) {
	args := f.Called(ctx, token)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

func (f *fakeTokens) RevokeByToken(ctx context.Context, token string) error {
	return f.Called(ctx, token).Error(0)
}

func (f *fakeTokens) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return f.Called(ctx, userID).Error(0)
}

type fakeNotes struct{ mock.Mock }

func (f *fakeNotes) Create(ctx context.Context, ownerID uuid.UUID, params model.NoteParams) (model.Note, error) {
	args := f.Called(ctx, ownerID, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (f *fakeNotes) Update(ctx context.Context, id int64, ownerID uuid.UUID, params model.NoteParams) (model.Note, error) {
	args := f.Called(ctx, id, ownerID, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (f *fakeNotes) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	return f.Called(ctx, id, ownerID).Error(0)
}

func (f *fakeNotes) List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	args := f.Called(ctx, ownerID)
	return args.Get(0).([]model.Note), args.Error(1)
}

func (f *fakeNotes) FindByTitle(ctx context.Context, ownerID uuid.UUID, title string) ([]model.Note, error) {
	args := f.Called(ctx, ownerID, title)
	return args.Get(0).([]model.Note), args.Error(1)
}

type fakeCredentials struct{ mock.Mock }

func (f *fakeCredentials) Create(ctx context.Context, ownerID uuid.UUID, params model.CredentialParams) (model.Credential, error) {
	args := f.Called(ctx, ownerID, params)
	return args.Get(0).(model.Credential), args.Error(1)
}

func (f *fakeCredentials) Update(ctx context.Context, id int64, ownerID uuid.UUID, params model.CredentialParams) (model.Credential, error) {
	args := f.Called(ctx, id, ownerID, params)
	return args.Get(0).(model.Credential), args.Error(1)
}

func (f *fakeCredentials) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	return f.Called(ctx, id, ownerID).Error(0)
}

func (f *fakeCredentials) List(ctx context.Context, ownerID uuid.UUID) ([]model.Credential, error) {
	args := f.Called(ctx, ownerID)
	return args.Get(0).([]model.Credential), args.Error(1)
}

func (f *fakeCredentials) Reveal(ctx context.Context, id int64, ownerID uuid.UUID) (model.Credential, error) {
	args := f.Called(ctx, id, ownerID)
	return args.Get(0).(model.Credential), args.Error(1)
}

type fakeFiles struct{ mock.Mock }

func (f *fakeFiles) Upload(ctx context.Context, ownerID uuid.UUID, params model.UploadFileParams) (model.File, error) {
	args := f.Called(ctx, ownerID, params)
	return args.Get(0).(model.File), args.Error(1)
}

func (f *fakeFiles) Download(ctx context.Context, id int64, ownerID uuid.UUID) (model.FileContent, error) {
	args := f.Called(ctx, id, ownerID)
	return args.Get(0).(model.FileContent), args.Error(1)
}

func (f *fakeFiles) Rename(ctx context.Context, id int64, ownerID uuid.UUID, name string) (model.File, error) {
	args := f.Called(ctx, id, ownerID, name)
	return args.Get(0).(model.File), args.Error(1)
}

func (f *fakeFiles) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	return f.Called(ctx, id, ownerID).Error(0)
}

func (f *fakeFiles) List(ctx context.Context, ownerID uuid.UUID) ([]model.File, error) {
	args := f.Called(ctx, ownerID)
	return args.Get(0).([]model.File), args.Error(1)
}

type fakeChat struct{ mock.Mock }

func (f *fakeChat) Post(ctx context.Context, username, text string, msgType model.MessageType) (model.ChatMessage, error) {
	args := f.Called(ctx, username, text, msgType)
	return args.Get(0).(model.ChatMessage), args.Error(1)
}

func (f *fakeChat) List(ctx context.Context) ([]model.ChatMessage, error) {
	args := f.Called(ctx)
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (f *fakeChat) ListByUsername(ctx context.Context, username string) ([]model.ChatMessage, error) {
	args := f.Called(ctx, username)
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

type pingerStub struct{ err error }

func (p pingerStub) Ping(context.Context) error { return p.err }

var ctxMgr = httpctx.NewManager()

// newTestEngine returns an engine with sessions enabled. When principal is
// non-empty every request is treated as authenticated by it.
func newTestEngine(principal model.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(sessions.Sessions(session.CookieName, cookie.NewStore([]byte("test-secret"))))
	if principal.Username != "" {
		r.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(ctxMgr.SetPrincipalToContext(c.Request.Context(), principal))
		})
	}
	return r
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Msg {
	t.Helper()

	var m response.Msg
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func testPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Username: "alice"}
}
