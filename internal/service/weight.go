package service

import (
	"context"
	"strings"

	"github.com/bodyai/backend/internal/models"
)

// WeightService applies validation atop the weight repository.
type WeightService struct {
	weights WeightRepository
}

// NewWeightService creates a new WeightService instance.
func NewWeightService(weights WeightRepository) *WeightService {
	return &WeightService{weights: weights}
}

func validateWeightValue(kg float64) error {
	if kg <= 0 {
		return validationErrorf("weight must be greater than 0")
	}
	if kg > 1000 {
		return validationErrorf("weight must be less than 1000 kg")
	}
	return nil
}

// Create validates and stores a new weight entry.
func (s *WeightService) Create(ctx context.Context, dto models.CreateWeightDTO) (*models.Weight, error) {
	if err := validateWeightValue(dto.Weight); err != nil {
		return nil, err
	}
	if dto.Date.IsZero() {
		return nil, validationErrorf("a valid date is required")
	}
	if strings.TrimSpace(dto.UserID) == "" {
		return nil, validationErrorf("user id is required")
	}

	return s.weights.Create(ctx, &models.Weight{
		UserID:    dto.UserID,
		Weight:    dto.Weight,
		Height:    dto.Height,
		BodyPhoto: dto.BodyPhoto,
		Date:      models.NewFlexTime(dto.Date),
		Notes:     dto.Notes,
	})
}

// ListByUser returns the user's entries, newest measurement first.
func (s *WeightService) ListByUser(ctx context.Context, userID string) ([]*models.Weight, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, validationErrorf("user id is required")
	}
	return s.weights.FindByUserID(ctx, userID)
}

// Update applies a partial update after validating any fields present.
func (s *WeightService) Update(ctx context.Context, id string, dto models.UpdateWeightDTO) (*models.Weight, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationErrorf("weight entry id is required")
	}
	if dto.Weight != nil {
		if err := validateWeightValue(*dto.Weight); err != nil {
			return nil, err
		}
	}
	if dto.Date != nil && dto.Date.IsZero() {
		return nil, validationErrorf("a valid date is required")
	}
	return s.weights.Update(ctx, id, dto)
}

// Delete removes an entry, propagating the repository's not-found error.
func (s *WeightService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationErrorf("weight entry id is required")
	}
	return s.weights.Delete(ctx, id)
}
