package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/service"
)

// NutritionHandler serves the BMR/TDEE/macro calculator.
type NutritionHandler struct {
	nutrition *service.NutritionService
	logger    *zap.Logger
}

// NewNutritionHandler creates a new NutritionHandler instance.
func NewNutritionHandler(nutrition *service.NutritionService, logger *zap.Logger) *NutritionHandler {
	return &NutritionHandler{nutrition: nutrition, logger: logger}
}

// Calculate handles POST /nutrition/calculate.
func (h *NutritionHandler) Calculate(c *gin.Context) {
	var in service.CalculateNutritionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.nutrition.Calculate(in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
