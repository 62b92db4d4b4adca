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

type CountryHandler struct {
	service service.CountryService
	log     *logger.Logger
}

func NewCountryHandler(service service.CountryService, log *logger.Logger) *CountryHandler {
	return &CountryHandler{service: service, log: log}
}

// ListPublicCountries serves the public site; active rows only
func (h *CountryHandler) ListPublicCountries(c *gin.Context) {
	var qf types.QueryFilter
	if err := c.ShouldBindQuery(&qf); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	var popular *bool
	if raw := c.Query("popular"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("popular must be true or false").
				Mark(ierr.ErrValidation))
			return
		}
		popular = lo.ToPtr(v)
	}

	resp, err := h.service.ListPublicCountries(c.Request.Context(), popular, &qf)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPublicCountry hides inactive countries behind NotFound
func (h *CountryHandler) GetPublicCountry(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetPublicCountry(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CountryHandler) CreateCountry(c *gin.Context) {
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCountry(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create country", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CountryHandler) GetCountry(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetCountry(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CountryHandler) ListCountries(c *gin.Context) {
	var filter types.CountryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCountries(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CountryHandler) UpdateCountry(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCountry(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCountry soft-deletes; the id drops out of listings
func (h *CountryHandler) DeleteCountry(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteCountry(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "country deleted successfully"})
}
