package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bodyai/backend/internal/database"
	"github.com/bodyai/backend/internal/models"
)

// WeightRepository persists weight entries in the "weights" collection.
// Listings are ordered by measurement date, newest first.
type WeightRepository struct {
	*Repository[models.Weight, *models.Weight]
}

// NewWeightRepository creates a WeightRepository backed by db.
func NewWeightRepository(db *database.Database) *WeightRepository {
	return &WeightRepository{
		Repository: newRepository[models.Weight, *models.Weight](
			db.Collection("weights"),
			bson.D{{Key: "date", Value: -1}},
		),
	}
}

// FindByUserID returns all weight entries owned by userID.
func (r *WeightRepository) FindByUserID(ctx context.Context, userID string) ([]*models.Weight, error) {
	return r.findAll(ctx, bson.M{"userId": userID})
}

// Update applies a partial weight update.
func (r *WeightRepository) Update(ctx context.Context, id string, dto models.UpdateWeightDTO) (*models.Weight, error) {
	return r.Repository.Update(ctx, id, dto.Fields())
}
