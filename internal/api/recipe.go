package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodyai/backend/internal/middleware"
	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/service"
)

// RecipeHandler serves the meal-plan CRUD endpoints.
type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipes service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger}
}

// List handles GET /recipes.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Get handles GET /recipes/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// Create handles POST /recipes.
func (h *RecipeHandler) Create(c *gin.Context) {
	var dto models.CreateRecipeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	dto.UserID = middleware.UserID(c)

	recipe, err := h.recipes.Create(c.Request.Context(), dto)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"recipe":  recipe,
	})
}

// Update handles PUT /recipes/:id.
func (h *RecipeHandler) Update(c *gin.Context) {
	var dto models.UpdateRecipeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"recipe":  recipe,
	})
}

// Delete handles DELETE /recipes/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
