// Package mocks provides testify mocks for the service interfaces consumed
// by the HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/service"
)

// MockAuthService is a mock implementation of service.IAuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, dto models.CreateUserDTO) (*models.User, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// MockWeightService is a mock implementation of service.IWeightService.
type MockWeightService struct {
	mock.Mock
}

func (m *MockWeightService) Create(ctx context.Context, dto models.CreateWeightDTO) (*models.Weight, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Weight), args.Error(1)
}

func (m *MockWeightService) ListByUser(ctx context.Context, userID string) ([]*models.Weight, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Weight), args.Error(1)
}

func (m *MockWeightService) Update(ctx context.Context, id string, dto models.UpdateWeightDTO) (*models.Weight, error) {
	args := m.Called(ctx, id, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Weight), args.Error(1)
}

func (m *MockWeightService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoutineService is a mock implementation of service.IRoutineService.
type MockRoutineService struct {
	mock.Mock
}

func (m *MockRoutineService) Create(ctx context.Context, dto models.CreateRoutineDTO) (*models.Routine, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineService) Get(ctx context.Context, id string) (*models.Routine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineService) ListByUser(ctx context.Context, userID string) ([]*models.Routine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Routine), args.Error(1)
}

func (m *MockRoutineService) Update(ctx context.Context, id string, dto models.UpdateRoutineDTO) (*models.Routine, error) {
	args := m.Called(ctx, id, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecipeService is a mock implementation of service.IRecipeService.
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, dto models.CreateRecipeDTO) (*models.Recipe, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListByUser(ctx context.Context, userID string) ([]*models.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, id string, dto models.UpdateRecipeDTO) (*models.Recipe, error) {
	args := m.Called(ctx, id, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChatService is a mock implementation of service.IChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Respond(ctx context.Context, userID string, messages []service.ChatMessage) (string, error) {
	args := m.Called(ctx, userID, messages)
	return args.String(0), args.Error(1)
}

// MockImageService is a mock implementation of service.IImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadBase64(ctx context.Context, data string) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}
