package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/service"
	"github.com/visahub/visahub/internal/types"
)

type VisaTypeHandler struct {
	service service.VisaTypeService
	log     *logger.Logger
}

func NewVisaTypeHandler(service service.VisaTypeService, log *logger.Logger) *VisaTypeHandler {
	return &VisaTypeHandler{service: service, log: log}
}

// ListPublicVisaTypes serves the public site; active rows only
func (h *VisaTypeHandler) ListPublicVisaTypes(c *gin.Context) {
	var qf types.QueryFilter
	if err := c.ShouldBindQuery(&qf); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPublicVisaTypes(c.Request.Context(), c.Query("country_id"), c.Query("category"), &qf)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPublicVisaType hides inactive visa types behind NotFound
func (h *VisaTypeHandler) GetPublicVisaType(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetPublicVisaType(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VisaTypeHandler) CreateVisaType(c *gin.Context) {
	var req dto.CreateVisaTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateVisaType(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create visa type", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *VisaTypeHandler) GetVisaType(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetVisaType(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VisaTypeHandler) ListVisaTypes(c *gin.Context) {
	var filter types.VisaTypeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListVisaTypes(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VisaTypeHandler) UpdateVisaType(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateVisaTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateVisaType(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteVisaType soft-deletes; the id drops out of listings
func (h *VisaTypeHandler) DeleteVisaType(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteVisaType(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "visa type deleted successfully"})
}
