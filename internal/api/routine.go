package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/middleware"
	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/service"
)

// RoutineHandler serves the workout-routine CRUD endpoints.
type RoutineHandler struct {
	routines service.IRoutineService
	logger   *zap.Logger
}

// NewRoutineHandler creates a new RoutineHandler instance.
func NewRoutineHandler(routines service.IRoutineService, logger *zap.Logger) *RoutineHandler {
	return &RoutineHandler{routines: routines, logger: logger}
}

// List handles GET /routines.
func (h *RoutineHandler) List(c *gin.Context) {
	routines, err := h.routines.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routines": routines})
}

// Get handles GET /routines/:id.
func (h *RoutineHandler) Get(c *gin.Context) {
	routine, err := h.routines.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routine": routine})
}

// Create handles POST /routines.
func (h *RoutineHandler) Create(c *gin.Context) {
	var dto models.CreateRoutineDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	dto.UserID = middleware.UserID(c)

	routine, err := h.routines.Create(c.Request.Context(), dto)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Routine created successfully",
		"routine": routine,
	})
}

// Update handles PUT /routines/:id.
func (h *RoutineHandler) Update(c *gin.Context) {
	var dto models.UpdateRoutineDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	routine, err := h.routines.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Routine updated successfully",
		"routine": routine,
	})
}

// Delete handles DELETE /routines/:id.
func (h *RoutineHandler) Delete(c *gin.Context) {
	if err := h.routines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Routine deleted successfully"})
}
