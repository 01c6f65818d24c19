package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/service"
)

// UploadHandler serves progress-photo uploads.
type UploadHandler struct {
	images service.IImageService
	logger *zap.Logger
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(images service.IImageService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{images: images, logger: logger}
}

// Upload handles POST /upload.
func (h *UploadHandler) Upload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	url, err := h.images.UploadBase64(c.Request.Context(), req.Image)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
