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

type ConsultationHandler struct {
	service service.ConsultationService
	log     *logger.Logger
}

func NewConsultationHandler(service service.ConsultationService, log *logger.Logger) *ConsultationHandler {
	return &ConsultationHandler{service: service, log: log}
}

func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateConsultation(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create consultation", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ConsultationHandler) GetConsultation(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetConsultation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	var filter types.ConsultationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListConsultations(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ConsultationHandler) UpdateConsultationStatus(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateConsultationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateConsultationStatus(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteConsultation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "consultation deleted successfully"})
}
