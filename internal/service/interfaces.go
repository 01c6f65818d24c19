package service

import (
	"context"

	"github.com/bodyai/backend/internal/models"
)

// Repository interfaces consumed by the services. The concrete
// implementations live in internal/repository; tests substitute in-memory
// fakes.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type WeightRepository interface {
	Create(ctx context.Context, weight *models.Weight) (*models.Weight, error)
	FindByID(ctx context.Context, id string) (*models.Weight, error)
	FindByUserID(ctx context.Context, userID string) ([]*models.Weight, error)
	Update(ctx context.Context, id string, dto models.UpdateWeightDTO) (*models.Weight, error)
	Delete(ctx context.Context, id string) error
}

type RoutineRepository interface {
	Create(ctx context.Context, routine *models.Routine) (*models.Routine, error)
	FindByID(ctx context.Context, id string) (*models.Routine, error)
	FindByUserID(ctx context.Context, userID string) ([]*models.Routine, error)
	Update(ctx context.Context, id string, dto models.UpdateRoutineDTO) (*models.Routine, error)
	Delete(ctx context.Context, id string) error
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	FindByID(ctx context.Context, id string) (*models.Recipe, error)
	FindByUserID(ctx context.Context, userID string) ([]*models.Recipe, error)
	Update(ctx context.Context, id string, dto models.UpdateRecipeDTO) (*models.Recipe, error)
	Delete(ctx context.Context, id string) error
}

// Service interfaces consumed by the HTTP handlers.

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, dto models.CreateUserDTO) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (string, error)
}

// IWeightService defines the interface for weight-entry operations.
type IWeightService interface {
	Create(ctx context.Context, dto models.CreateWeightDTO) (*models.Weight, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Weight, error)
	Update(ctx context.Context, id string, dto models.UpdateWeightDTO) (*models.Weight, error)
	Delete(ctx context.Context, id string) error
}

// IRoutineService defines the interface for workout-routine operations.
type IRoutineService interface {
	Create(ctx context.Context, dto models.CreateRoutineDTO) (*models.Routine, error)
	Get(ctx context.Context, id string) (*models.Routine, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Routine, error)
	Update(ctx context.Context, id string, dto models.UpdateRoutineDTO) (*models.Routine, error)
	Delete(ctx context.Context, id string) error
}

// IRecipeService defines the interface for meal-plan operations.
type IRecipeService interface {
	Create(ctx context.Context, dto models.CreateRecipeDTO) (*models.Recipe, error)
	Get(ctx context.Context, id string) (*models.Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Recipe, error)
	Update(ctx context.Context, id string, dto models.UpdateRecipeDTO) (*models.Recipe, error)
	Delete(ctx context.Context, id string) error
}

// IChatService defines the interface for the LLM-backed assistant.
type IChatService interface {
	Respond(ctx context.Context, userID string, messages []ChatMessage) (string, error)
}

// IImageService defines the interface for progress-photo uploads.
type IImageService interface {
	UploadBase64(ctx context.Context, data string) (string, error)
}
