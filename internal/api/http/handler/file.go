package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// UploadField is the multipart form field carrying the uploaded file.
const UploadField = "fileUpload"

// multipart framing allowance on top of the payload limit
const multipartOverhead = 1 << 20

// FileService defines owner-scoped file operations.
type FileService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, params model.UploadFileParams) (model.File, error)
	Download(ctx context.Context, id int64, ownerID uuid.UUID) (model.FileContent, error)
	Rename(ctx context.Context, id int64, ownerID uuid.UUID, name string) (model.File, error)
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]model.File, error)
}

type renameRequest struct {
	Name string `json:"fileName" form:"fileName"`
}

// File handles the files endpoints.
type File struct {
	files          FileService
	maxBytes       int64
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewFile creates a new File handler. maxBytes <= 0 disables the body limit.
func NewFile(files FileService, maxBytes int64, contextManager model.ContextManager, logger *logger.Logger) *File {
	return &File{files: files, maxBytes: maxBytes, contextManager: contextManager, logger: logger}
}

func (h *File) List(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	files, err := h.files.List(c.Request.Context(), p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", files)
}

func (h *File) Upload(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	params, err := h.readUpload(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	file, err := h.files.Upload(c.Request.Context(), p.UserID, params)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusCreated, "file uploaded", file)
}

func (h *File) readUpload(c *gin.Context) (model.UploadFileParams, error) {
	fh, err := c.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.UploadFileParams{}, model.NewValidationError(UploadField, fmt.Sprintf("file exceeds %d bytes", h.maxBytes))
		}
		return model.UploadFileParams{}, model.NewValidationError(UploadField, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return model.UploadFileParams{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.UploadFileParams{}, fmt.Errorf("failed to read upload: %w", err)
	}

	return model.UploadFileParams{
		Name:        filepath.Base(fh.Filename),
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *File) Download(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	content, err := h.files.Download(c.Request.Context(), id, p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": content.File.Name}))
	c.Data(http.StatusOK, content.File.ContentType, content.Data)
}

func (h *File) Rename(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req renameRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	file, err := h.files.Rename(c.Request.Context(), id, p.UserID, req.Name)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "file renamed", file)
}

func (h *File) Delete(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.files.Delete(c.Request.Context(), id, p.UserID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	deleted(c, "file deleted")
}
