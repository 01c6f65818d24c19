package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bodyai/backend/internal/database"
	"github.com/bodyai/backend/internal/models"
)

// RoutineRepository persists workout routines in the "routines" collection.
// Listings are ordered by creation time, newest first.
type RoutineRepository struct {
	*Repository[models.Routine, *models.Routine]
}

// NewRoutineRepository creates a RoutineRepository backed by db.
func NewRoutineRepository(db *database.Database) *RoutineRepository {
	return &RoutineRepository{
		Repository: newRepository[models.Routine, *models.Routine](
			db.Collection("routines"),
			bson.D{{Key: "createdAt", Value: -1}},
		),
	}
}

// FindByUserID returns all routines owned by userID.
func (r *RoutineRepository) FindByUserID(ctx context.Context, userID string) ([]*models.Routine, error) {
	return r.findAll(ctx, bson.M{"userId": userID})
}

// Update applies a partial routine update.
func (r *RoutineRepository) Update(ctx context.Context, id string, dto models.UpdateRoutineDTO) (*models.Routine, error) {
	return r.Repository.Update(ctx, id, dto.Fields())
}
