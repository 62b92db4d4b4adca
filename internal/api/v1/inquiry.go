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

type InquiryHandler struct {
	service service.InquiryService
	log     *logger.Logger
}

func NewInquiryHandler(service service.InquiryService, log *logger.Logger) *InquiryHandler {
	return &InquiryHandler{service: service, log: log}
}

func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create inquiry", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetInquiry(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	var filter types.InquiryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListInquiries(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateInquiryStatus(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InquiryHandler) ReplyInquiry(c *gin.Context) {
	id := c.Param("id")
	var req dto.ReplyInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ReplyInquiry(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteInquiry(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "inquiry deleted successfully"})
}
