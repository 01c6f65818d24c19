package service

import (
	"context"
	"strings"

	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/repository"
)

// RoutineService applies validation atop the routine repository. Every
// create/update/delete path for routines goes through here, matching the
// other entities.
type RoutineService struct {
	routines RoutineRepository
}

// NewRoutineService creates a new RoutineService instance.
func NewRoutineService(routines RoutineRepository) *RoutineService {
	return &RoutineService{routines: routines}
}

// Create validates and stores a new routine.
func (s *RoutineService) Create(ctx context.Context, dto models.CreateRoutineDTO) (*models.Routine, error) {
	if strings.TrimSpace(dto.UserID) == "" {
		return nil, validationErrorf("user id is required")
	}
	if strings.TrimSpace(dto.Name) == "" {
		return nil, validationErrorf("name is required")
	}
	if strings.TrimSpace(dto.Nivel) == "" {
		return nil, validationErrorf("nivel is required")
	}
	if dto.DiasPorSemana < 1 || dto.DiasPorSemana > 7 {
		return nil, validationErrorf("dias_por_semana must be between 1 and 7")
	}
	if strings.TrimSpace(dto.Objetivo) == "" {
		return nil, validationErrorf("objetivo is required")
	}
	if dto.Rutina == nil {
		return nil, validationErrorf("rutina is required")
	}
	if err := dto.Rutina.Validate(); err != nil {
		return nil, validationErrorf("invalid rutina: %v", err)
	}

	return s.routines.Create(ctx, &models.Routine{
		UserID:        dto.UserID,
		Name:          strings.TrimSpace(dto.Name),
		Nivel:         dto.Nivel,
		DiasPorSemana: dto.DiasPorSemana,
		Objetivo:      dto.Objetivo,
		Rutina:        dto.Rutina,
		Nutrition:     dto.Nutrition,
		Supplements:   strings.TrimSpace(dto.Supplements),
		Motivation:    strings.TrimSpace(dto.Motivation),
	})
}

// Get returns one routine by id, or repository.ErrNotFound.
func (s *RoutineService) Get(ctx context.Context, id string) (*models.Routine, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationErrorf("routine id is required")
	}
	routine, err := s.routines.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if routine == nil {
		return nil, repository.ErrNotFound
	}
	return routine, nil
}

// ListByUser returns the user's routines, newest first.
func (s *RoutineService) ListByUser(ctx context.Context, userID string) ([]*models.Routine, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, validationErrorf("user id is required")
	}
	return s.routines.FindByUserID(ctx, userID)
}

// Update applies a partial update after validating any fields present.
func (s *RoutineService) Update(ctx context.Context, id string, dto models.UpdateRoutineDTO) (*models.Routine, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validationErrorf("routine id is required")
	}
	if dto.DiasPorSemana != nil && (*dto.DiasPorSemana < 1 || *dto.DiasPorSemana > 7) {
		return nil, validationErrorf("dias_por_semana must be between 1 and 7")
	}
	if dto.Rutina != nil {
		if err := dto.Rutina.Validate(); err != nil {
			return nil, validationErrorf("invalid rutina: %v", err)
		}
	}
	return s.routines.Update(ctx, id, dto)
}

// Delete removes a routine, propagating the repository's not-found error.
func (s *RoutineService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationErrorf("routine id is required")
	}
	return s.routines.Delete(ctx, id)
}
