package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bodyai/backend/internal/models"
	"github.com/bodyai/backend/internal/repository"
)

// fakeRoutineRepo is an in-memory RoutineRepository.
type fakeRoutineRepo struct {
	routines []*models.Routine
}

func (f *fakeRoutineRepo) Create(_ context.Context, routine *models.Routine) (*models.Routine, error) {
	stored := *routine
	stored.SetID(primitive.NewObjectID())
	stored.StampNew(time.Now().UTC())
	f.routines = append(f.routines, &stored)
	out := stored
	return &out, nil
}

func (f *fakeRoutineRepo) FindByID(_ context.Context, id string) (*models.Routine, error) {
	for _, r := range f.routines {
		if r.ID.Hex() == id {
			out := *r
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeRoutineRepo) FindByUserID(_ context.Context, userID string) ([]*models.Routine, error) {
	result := []*models.Routine{}
	for _, r := range f.routines {
		if r.UserID == userID {
			out := *r
			result = append(result, &out)
		}
	}
	return result, nil
}

func (f *fakeRoutineRepo) Update(_ context.Context, id string, dto models.UpdateRoutineDTO) (*models.Routine, error) {
	for _, r := range f.routines {
		if r.ID.Hex() == id {
			if dto.Name != nil {
				r.Name = *dto.Name
			}
			if dto.Nivel != nil {
				r.Nivel = *dto.Nivel
			}
			if dto.DiasPorSemana != nil {
				r.DiasPorSemana = *dto.DiasPorSemana
			}
			if dto.Objetivo != nil {
				r.Objetivo = *dto.Objetivo
			}
			if dto.Rutina != nil {
				r.Rutina = dto.Rutina
			}
			if dto.Nutrition != nil {
				r.Nutrition = dto.Nutrition
			}
			out := *r
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoutineRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.routines {
		if r.ID.Hex() == id {
			f.routines = append(f.routines[:i], f.routines[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func validRoutineDTO() models.CreateRoutineDTO {
	return models.CreateRoutineDTO{
		UserID:        "u1",
		Name:          "Hipertrofia 4 dias",
		Nivel:         "intermedio",
		DiasPorSemana: 4,
		Objetivo:      "ganar masa muscular",
		Rutina: models.WeeklyRoutine{
			models.Lunes: {
				Enfoque: "Espalda",
				Ejercicios: []models.Exercise{
					{NombreES: "Remo con barra", NombreEN: "Barbell Row", Series: 4, Repeticiones: "8-12"},
					{NombreES: "Dominadas", NombreEN: "Pull-ups", Series: 3, Repeticiones: "al fallo"},
				},
				Cardio: "15 min cinta",
			},
			models.Jueves: {
				Enfoque: "Pierna",
				Ejercicios: []models.Exercise{
					{NombreES: "Sentadilla", NombreEN: "Squat", Series: 5, Repeticiones: "5"},
				},
			},
		},
		Nutrition: &models.NutritionTargets{
			Calories: "2800-3000",
			Protein:  "160-180g",
			Fats:     "70-80g",
			Carbs:    "320-350g",
		},
	}
}

func TestRoutineService_CreateAndGetRoundTrip(t *testing.T) {
	svc := NewRoutineService(&fakeRoutineRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validRoutineDTO())
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	got, err := svc.Get(ctx, created.ID.Hex())
	require.NoError(t, err)

	lunes := got.Rutina[models.Lunes]
	require.NotNil(t, lunes)
	assert.Equal(t, "Espalda", lunes.Enfoque)
	require.Len(t, lunes.Ejercicios, 2)
	assert.Equal(t, "Remo con barra", lunes.Ejercicios[0].NombreES)
	assert.Equal(t, "Barbell Row", lunes.Ejercicios[0].NombreEN)
	assert.Equal(t, 4, lunes.Ejercicios[0].Series)
	assert.Equal(t, "8-12", lunes.Ejercicios[0].Repeticiones)

	assert.Nil(t, got.Rutina[models.Martes], "a missing day is a rest day")
	require.NotNil(t, got.Nutrition)
	assert.Equal(t, "160-180g", got.Nutrition.Protein)
}

func TestRoutineService_CreateValidation(t *testing.T) {
	svc := NewRoutineService(&fakeRoutineRepo{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreateRoutineDTO)
	}{
		{"missing user", func(d *models.CreateRoutineDTO) { d.UserID = "" }},
		{"blank name", func(d *models.CreateRoutineDTO) { d.Name = "  " }},
		{"missing nivel", func(d *models.CreateRoutineDTO) { d.Nivel = "" }},
		{"zero days", func(d *models.CreateRoutineDTO) { d.DiasPorSemana = 0 }},
		{"eight days", func(d *models.CreateRoutineDTO) { d.DiasPorSemana = 8 }},
		{"missing objetivo", func(d *models.CreateRoutineDTO) { d.Objetivo = "" }},
		{"nil rutina", func(d *models.CreateRoutineDTO) { d.Rutina = nil }},
		{"unknown weekday", func(d *models.CreateRoutineDTO) {
			d.Rutina = models.WeeklyRoutine{"funday": {Enfoque: "Pecho"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := validRoutineDTO()
			tt.mutate(&dto)
			_, err := svc.Create(ctx, dto)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestRoutineService_GetMissing(t *testing.T) {
	svc := NewRoutineService(&fakeRoutineRepo{})

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRoutineService_UpdateValidation(t *testing.T) {
	svc := NewRoutineService(&fakeRoutineRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validRoutineDTO())
	require.NoError(t, err)

	tooMany := 9
	_, err = svc.Update(ctx, created.ID.Hex(), models.UpdateRoutineDTO{DiasPorSemana: &tooMany})
	assert.True(t, IsValidation(err))

	newName := "Hipertrofia v2"
	five := 5
	updated, err := svc.Update(ctx, created.ID.Hex(), models.UpdateRoutineDTO{Name: &newName, DiasPorSemana: &five})
	require.NoError(t, err)
	assert.Equal(t, "Hipertrofia v2", updated.Name)
	assert.Equal(t, 5, updated.DiasPorSemana)
	assert.Equal(t, "intermedio", updated.Nivel, "untouched fields survive a partial update")
}

func TestRoutineService_Delete(t *testing.T) {
	svc := NewRoutineService(&fakeRoutineRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validRoutineDTO())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.Hex()))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID.Hex()), repository.ErrNotFound)
}
