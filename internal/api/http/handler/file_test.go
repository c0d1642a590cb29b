package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/atlas-server/internal/model"
	"github.com/dtroode/atlas-server/internal/testutil"
)

func newFileEngine(p model.Principal, files *fakeFiles, maxBytes int64) *gin.Engine {
	h := NewFile(files, maxBytes, ctxMgr, testutil.MakeNoopLogger())
	r := newTestEngine(p)
	r.GET("/files", h.List)
	r.POST("/files/upload", h.Upload)
	r.GET("/files/download/:id", h.Download)
	r.POST("/files/:id/rename", h.Rename)
	r.GET("/files/delete/:id", h.Delete)
	r.DELETE("/files/:id", h.Delete)
	return r
}

func uploadRequest(t *testing.T, field, name string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/files/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req
}

func TestFile_Upload(t *testing.T) {
	t.Parallel()

	p := testPrincipal()
	files := &fakeFiles{}
	files.On("Upload", mock.Anything, p.UserID, mock.MatchedBy(func(params model.UploadFileParams) bool {
		return params.Name == "a.txt" && string(params.Data) == "hello"
	})).Return(model.File{ID: 1, Name: "a.txt", Size: 5}, nil).Once()
	files.On("Upload", mock.Anything, p.UserID, mock.MatchedBy(func(params model.UploadFileParams) bool {
		return params.Name == "dup.txt"
	})).Return(model.File{}, model.ErrFileNameTaken).Once()

	r := newFileEngine(p, files, 1024)

	w := serve(r, uploadRequest(t, UploadField, "a.txt", []byte("hello")))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "a.txt", decode(t, w).Obj.(map[string]any)["fileName"])

	w = serve(r, uploadRequest(t, UploadField, "dup.txt", []byte("x")))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, msgFileNameTaken, decode(t, w).Msg)

	w = serve(r, uploadRequest(t, "", "", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	files.AssertExpectations(t)
}

func TestFile_Upload_TooLarge(t *testing.T) {
	t.Parallel()

	r := newFileEngine(testPrincipal(), &fakeFiles{}, 1)

	w := serve(r, uploadRequest(t, UploadField, "big.bin", make([]byte, multipartOverhead+10)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Msg, "exceeds")
}

func TestFile_Download(t *testing.T) {
	t.Parallel()

	p := testPrincipal()
	files := &fakeFiles{}
	files.On("Download", mock.Anything, int64(1), p.UserID).Return(model.FileContent{
		File: model.File{ID: 1, Name: "a.txt", ContentType: "text/plain"},
		Data: []byte("hello"),
	}, nil).Once()
	files.On("Download", mock.Anything, int64(2), p.UserID).Return(model.FileContent{}, model.ErrNotFound).Once()

	r := newFileEngine(p, files, 0)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/files/download/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=a.txt`, w.Header().Get("Content-Disposition"))

	w = serve(r, jsonRequest(http.MethodGet, "/files/download/2", ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFile_RenameDeleteList(t *testing.T) {
	t.Parallel()

	p := testPrincipal()
	files := &fakeFiles{}
	files.On("Rename", mock.Anything, int64(1), p.UserID, "b.txt").Return(model.File{ID: 1, Name: "b.txt"}, nil).Once()
	files.On("Delete", mock.Anything, int64(1), p.UserID).Return(nil).Once()
	files.On("Delete", mock.Anything, int64(3), p.UserID).Return(model.ErrNotFound).Once()
	files.On("List", mock.Anything, p.UserID).Return([]model.File{{ID: 2}}, nil).Once()

	r := newFileEngine(p, files, 0)

	w := serve(r, jsonRequest(http.MethodPost, "/files/1/rename", `{"fileName":"b.txt"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, jsonRequest(http.MethodDelete, "/files/1", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, jsonRequest(http.MethodGet, "/files/delete/3", ""))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, jsonRequest(http.MethodGet, "/files", ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w).Obj, 1)

	files.AssertExpectations(t)
}
