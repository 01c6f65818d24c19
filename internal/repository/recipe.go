package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bodyai/backend/internal/database"
	"github.com/bodyai/backend/internal/models"
)

// RecipeRepository persists meal plans in the "recipes" collection. Listings
// are ordered by creation time, newest first.
type RecipeRepository struct {
	*Repository[models.Recipe, *models.Recipe]
}

// NewRecipeRepository creates a RecipeRepository backed by db.
func NewRecipeRepository(db *database.Database) *RecipeRepository {
	return &RecipeRepository{
		Repository: newRepository[models.Recipe, *models.Recipe](
			db.Collection("recipes"),
			bson.D{{Key: "createdAt", Value: -1}},
		),
	}
}

// FindByUserID returns all meal plans owned by userID.
func (r *RecipeRepository) FindByUserID(ctx context.Context, userID string) ([]*models.Recipe, error) {
	return r.findAll(ctx, bson.M{"userId": userID})
}

// Update applies a partial meal-plan update.
func (r *RecipeRepository) Update(ctx context.Context, id string, dto models.UpdateRecipeDTO) (*models.Recipe, error) {
	return r.Repository.Update(ctx, id, dto.Fields())
}
