package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/service"
	"github.com/visahub/visahub/internal/types"
)

// maxDocumentSize bounds a single uploaded document.
const maxDocumentSize = 10 << 20

type ApplicationHandler struct {
	service service.ApplicationService
	log     *logger.Logger
}

func NewApplicationHandler(service service.ApplicationService, log *logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{service: service, log: log}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateApplication(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create application", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("application ID is required").
			WithHint("Please provide a valid application ID").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var filter types.ApplicationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListApplications(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateApplicationStatus(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteApplication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "application deleted successfully"})
}

// UploadDocument accepts one multipart file under the "document" field
// and records the stored reference against the application.
func (h *ApplicationHandler) UploadDocument(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("A document file is required").
			Mark(ierr.ErrValidation))
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.Error(ierr.NewError("document too large").
			WithHint("Documents must be 10MB or smaller").
			Mark(ierr.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded document").
			Mark(ierr.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded document").
			Mark(ierr.ErrValidation))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	resp, err := h.service.AddDocument(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		h.log.Errorw("failed to store document", "application_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
