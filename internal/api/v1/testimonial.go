package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/service"
	"github.com/visahub/visahub/internal/types"
)

type TestimonialHandler struct {
	service service.TestimonialService
	log     *logger.Logger
}

func NewTestimonialHandler(service service.TestimonialService, log *logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{service: service, log: log}
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create testimonial", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListPublicTestimonials serves the public site; approved records only.
func (h *TestimonialHandler) ListPublicTestimonials(c *gin.Context) {
	var qf types.QueryFilter
	if err := c.ShouldBindQuery(&qf); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("featured must be true or false").
				Mark(ierr.ErrValidation))
			return
		}
		featured = lo.ToPtr(v)
	}

	resp, err := h.service.ListPublicTestimonials(c.Request.Context(), featured, &qf)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetTestimonial(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	var filter types.TestimonialFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListTestimonials(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateTestimonial(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteTestimonial(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted successfully"})
}
