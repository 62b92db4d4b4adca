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

type BlogPostHandler struct {
	service service.BlogPostService
	log     *logger.Logger
}

func NewBlogPostHandler(service service.BlogPostService, log *logger.Logger) *BlogPostHandler {
	return &BlogPostHandler{service: service, log: log}
}

// ListPublishedPosts serves the public blog index
func (h *BlogPostHandler) ListPublishedPosts(c *gin.Context) {
	var qf types.QueryFilter
	if err := c.ShouldBindQuery(&qf); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPublishedPosts(c.Request.Context(), c.Query("tag"), &qf)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPublishedBySlug serves the public article page
func (h *BlogPostHandler) GetPublishedBySlug(c *gin.Context) {
	slug := c.Param("slug")
	resp, err := h.service.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BlogPostHandler) CreateBlogPost(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateBlogPost(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("failed to create blog post", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *BlogPostHandler) GetBlogPost(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.GetBlogPost(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BlogPostHandler) ListBlogPosts(c *gin.Context) {
	var filter types.BlogPostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListBlogPosts(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BlogPostHandler) UpdateBlogPost(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateBlogPost(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BlogPostHandler) UpdateBlogPostStatus(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateBlogPostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateBlogPostStatus(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteBlogPost archives the post; the row survives for admin tooling
func (h *BlogPostHandler) DeleteBlogPost(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.ArchiveBlogPost(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "blog post archived successfully"})
}

// GenerateBlogPost creates a canned draft from a topic
func (h *BlogPostHandler) GenerateBlogPost(c *gin.Context) {
	var req dto.GenerateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GenerateDraft(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
