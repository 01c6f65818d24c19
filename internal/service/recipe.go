package service

import (
	"context"
	"strings"

	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/repository"
)

// RecipeService applies validation atop the meal-plan repository.
type RecipeService struct {
	recipes RecipeRepository
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(recipes RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// Create validates and stores a new meal plan.
func (s *RecipeService) Create(ctx context.Context, dto models.CreateRecipeDTO) (*models.Recipe, error) {
	if strings.TrimSpace(dto.UserID) == "" {
		return nil, validationErrorf("user id is required")
	}
	if strings.TrimSpace(dto.Name) == "" {
		return nil, validationErrorf("name is required")
	}
	if strings.TrimSpace(dto.CaloriasDiariasObjetivo) == "" {
		return nil, validationErrorf("calorias_diarias_objetivo is required")
	}
	if strings.TrimSpace(dto.ProteinaDiariaObjetivo) == "" {
		return nil, validationErrorf("proteina_diaria_objetivo is required")
	}
	if dto.ComidasPorDia < 1 || dto.ComidasPorDia > models.MaxMealsPerDay {
		return nil, validationErrorf("comidas_por_dia must be between 1 and %d", models.MaxMealsPerDay)
	}
	if dto.FrutasPorDia < 0 {
		return nil, validationErrorf("frutas_por_dia cannot be negative")
	}
	if dto.Semana == nil {
		return nil, validationErrorf("semana is required")
	}
	if err := dto.Semana.Validate(); err != nil {
		return nil, validationErrorf("invalid semana: %v", err)
	}

	return s.recipes.Create(ctx, &models.Recipe{
		UserID:                  dto.UserID,
		Name:                    strings.TrimSpace(dto.Name),
		CaloriasDiariasObjetivo: dto.CaloriasDiariasObjetivo,
		ProteinaDiariaObjetivo:  dto.ProteinaDiariaObjetivo,
		ComidasPorDia:           dto.ComidasPorDia,
		FrutasPorDia:            dto.FrutasPorDia,
		Semana:                  dto.Semana,
		Notes:                   strings.TrimSpace(dto.Notes),
	})
}

// Get returns one meal plan by id, or repository.ErrNotFound.
func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationErrorf("recipe id is required")
	}
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, repository.ErrNotFound
	}
	return recipe, nil
}

// ListByUser returns the user's meal plans, newest first.
func (s *RecipeService) ListByUser(ctx context.Context, userID string) ([]*models.Recipe, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, validationErrorf("user id is required")
	}
	return s.recipes.FindByUserID(ctx, userID)
}

// Update applies a partial update after validating any fields present.
func (s *RecipeService) Update(ctx context.Context, id string, dto models.UpdateRecipeDTO) (*models.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationErrorf("recipe id is required")
	}
	if dto.ComidasPorDia != nil && (*dto.ComidasPorDia < 1 || *dto.ComidasPorDia > models.MaxMealsPerDay) {
		return nil, validationErrorf("comidas_por_dia must be between 1 and %d", models.MaxMealsPerDay)
	}
	if dto.Semana != nil {
		if err := dto.Semana.Validate(); err != nil {
			return nil, validationErrorf("invalid semana: %v", err)
		}
	}
	return s.recipes.Update(ctx, id, dto)
}

// Delete removes a meal plan, propagating the repository's not-found error.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationErrorf("recipe id is required")
	}
	return s.recipes.Delete(ctx, id)
}
