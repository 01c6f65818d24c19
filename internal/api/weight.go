package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/middleware"
	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/service"
)

// WeightHandler serves the weight-entry CRUD endpoints. Entries are always
// scoped to the authenticated user.
type WeightHandler struct {
	weights service.IWeightService
	logger  *zap.Logger
}

// NewWeightHandler creates a new WeightHandler instance.
func NewWeightHandler(weights service.IWeightService, logger *zap.Logger) *WeightHandler {
	return &WeightHandler{weights: weights, logger: logger}
}

// List handles GET /weights.
func (h *WeightHandler) List(c *gin.Context) {
	weights, err := h.weights.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weights": weights})
}

// Create handles POST /weights.
func (h *WeightHandler) Create(c *gin.Context) {
	var dto models.CreateWeightDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	// The owner is always the authenticated user, whatever the body says.
	dto.UserID = middleware.UserID(c)

	weight, err := h.weights.Create(c.Request.Context(), dto)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Weight entry created successfully",
		"weight":  weight,
	})
}

// Update handles PUT /weights/:id.
func (h *WeightHandler) Update(c *gin.Context) {
	var dto models.UpdateWeightDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	weight, err := h.weights.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Weight entry updated successfully",
		"weight":  weight,
	})
}

// Delete handles DELETE /weights/:id.
func (h *WeightHandler) Delete(c *gin.Context) {
	if err := h.weights.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weight entry deleted successfully"})
}
