package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bodyai/backend/internal/database"
	"github.com/bodyai/backend/internal/models"
)

// UserRepository persists users in the "users" collection.
type UserRepository struct {
	*Repository[models.User, *models.User]
}

// NewUserRepository creates a UserRepository backed by db.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{
		Repository: newRepository[models.User, *models.User](
			db.Collection("users"),
			bson.D{{Key: "createdAt", Value: -1}},
		),
	}
}

// FindByEmail looks a user up by exact email match. Callers are responsible
// for normalizing case and whitespace first. Absence yields (nil, nil).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find in users: %w", err)
	}
	return &user, nil
}

// Update applies a partial user update.
func (r *UserRepository) Update(ctx context.Context, id string, dto models.UpdateUserDTO) (*models.User, error) {
	return r.Repository.Update(ctx, id, dto.Fields())
}
